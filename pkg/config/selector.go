package config

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/signalframe/signalframe/pkg/errors"
)

// Selector references a column to keep, either by 1-based position or by
// header label. The two kinds cannot be mixed within one column list; the
// distinction is resolved once before processing begins, never per row.
type Selector struct {
	index   int
	label   string
	isIndex bool
}

// Index returns a selector for the given 1-based column position.
func Index(i int) Selector {
	return Selector{index: i, isIndex: true}
}

// Label returns a selector for the given header label.
func Label(s string) Selector {
	return Selector{label: s}
}

// IsIndex reports whether the selector is positional.
func (s Selector) IsIndex() bool { return s.isIndex }

// Index returns the 1-based column position of a positional selector.
func (s Selector) Index() int { return s.index }

// Label returns the header label of a label selector.
func (s Selector) Label() string { return s.label }

// String returns the selector as written in the configuration.
func (s Selector) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.label
}

// UnmarshalYAML decodes a selector from a YAML scalar. Integers become
// positional selectors, strings become label selectors. A quoted number is
// a label, same as any other string.
func (s *Selector) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf(errors.ErrorTypeConfig, "column selector must be an integer or a string, got %s", value.Tag)
	}
	if value.Tag == "!!int" {
		i, err := strconv.Atoi(value.Value)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "invalid column index")
		}
		*s = Index(i)
		return nil
	}
	*s = Label(value.Value)
	return nil
}

// MarshalYAML encodes the selector back to the scalar it was read from.
func (s Selector) MarshalYAML() (interface{}, error) {
	if s.isIndex {
		return s.index, nil
	}
	return s.label, nil
}

// UnmarshalJSON decodes a selector from a JSON number or string.
func (s *Selector) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		return errors.New(errors.ErrorTypeConfig, "column selector must not be empty")
	}
	if text[0] == '"' {
		label, err := strconv.Unquote(text)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "invalid column label")
		}
		*s = Label(label)
		return nil
	}
	i, err := strconv.Atoi(text)
	if err != nil {
		return errors.Newf(errors.ErrorTypeConfig, "column selector must be an integer or a string, got %s", text)
	}
	*s = Index(i)
	return nil
}

// MarshalJSON encodes the selector back to the value it was read from.
func (s Selector) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return []byte(strconv.Quote(s.label)), nil
}

// RowLimit caps the number of output rows built in one run. The zero value
// is unbounded.
type RowLimit struct {
	n int
}

// Unbounded returns a row limit that never stops the run.
func Unbounded() RowLimit { return RowLimit{} }

// Limit returns a row limit of n output rows.
func Limit(n int) RowLimit { return RowLimit{n: n} }

// Bounded reports whether the limit is finite.
func (r RowLimit) Bounded() bool { return r.n > 0 }

// Value returns the limit for a bounded RowLimit.
func (r RowLimit) Value() int { return r.n }

// Reached reports whether built output rows have hit the limit.
func (r RowLimit) Reached(built int) bool {
	return r.n > 0 && built >= r.n
}

// String returns the limit as written in the configuration.
func (r RowLimit) String() string {
	if !r.Bounded() {
		return "all"
	}
	return strconv.Itoa(r.n)
}

func rowLimitFromString(text string) (RowLimit, error) {
	switch strings.ToLower(text) {
	case "all", "unbounded":
		return Unbounded(), nil
	}
	return RowLimit{}, errors.Newf(errors.ErrorTypeConfig, "row_limit must be a positive integer or %q, got %q", "all", text)
}

func rowLimitFromInt(n int) (RowLimit, error) {
	if n < 1 {
		return RowLimit{}, errors.Newf(errors.ErrorTypeConfig, "row_limit must be positive, got %d", n)
	}
	return Limit(n), nil
}

// UnmarshalYAML decodes a row limit from a YAML integer or the strings
// "all" / "unbounded".
func (r *RowLimit) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf(errors.ErrorTypeConfig, "row_limit must be an integer or a string, got %s", value.Tag)
	}
	if value.Tag == "!!int" {
		n, err := strconv.Atoi(value.Value)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "invalid row_limit")
		}
		limit, err := rowLimitFromInt(n)
		if err != nil {
			return err
		}
		*r = limit
		return nil
	}
	limit, err := rowLimitFromString(value.Value)
	if err != nil {
		return err
	}
	*r = limit
	return nil
}

// MarshalYAML encodes the row limit back to the scalar it was read from.
func (r RowLimit) MarshalYAML() (interface{}, error) {
	if !r.Bounded() {
		return "all", nil
	}
	return r.n, nil
}

// UnmarshalJSON decodes a row limit from a JSON number or string.
func (r *RowLimit) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		return errors.New(errors.ErrorTypeConfig, "row_limit must not be empty")
	}
	if text[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeConfig, "invalid row_limit")
		}
		limit, err := rowLimitFromString(unquoted)
		if err != nil {
			return err
		}
		*r = limit
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return errors.Newf(errors.ErrorTypeConfig, "row_limit must be an integer or a string, got %s", text)
	}
	limit, err := rowLimitFromInt(n)
	if err != nil {
		return err
	}
	*r = limit
	return nil
}

// MarshalJSON encodes the row limit back to the value it was read from.
func (r RowLimit) MarshalJSON() ([]byte, error) {
	if !r.Bounded() {
		return []byte(`"all"`), nil
	}
	return []byte(strconv.Itoa(r.n)), nil
}
