package window

import (
	"github.com/signalframe/signalframe/pkg/config"
	"github.com/signalframe/signalframe/pkg/errors"
)

// ResolveColumns maps the configured selectors to zero-based column indexes,
// preserving order (duplicates allowed). Integer selectors resolve by
// position; label selectors resolve against the header row. Mixing the two
// kinds in one list is rejected rather than guessed at.
func ResolveColumns(selectors []config.Selector, headers []string) ([]int, error) {
	if len(selectors) == 0 {
		return nil, errors.New(errors.ErrorTypeConfig, "no columns configured; set window.columns")
	}

	allIndexes := true
	allLabels := true
	for _, sel := range selectors {
		if sel.IsIndex() {
			allLabels = false
		} else {
			allIndexes = false
		}
	}

	switch {
	case allIndexes:
		indexes := make([]int, 0, len(selectors))
		for _, sel := range selectors {
			if sel.Index() < 1 {
				return nil, errors.Newf(errors.ErrorTypeConfig,
					"column indexes are 1-based, got %d", sel.Index())
			}
			indexes = append(indexes, sel.Index()-1)
		}
		return indexes, nil

	case allLabels:
		if headers == nil {
			return nil, errors.New(errors.ErrorTypeConfig,
				"window.columns contains labels but the input has no headers (input.has_headers is false)")
		}
		indexes := make([]int, 0, len(selectors))
		for _, sel := range selectors {
			position := -1
			for i, header := range headers {
				if header == sel.Label() {
					position = i
					break
				}
			}
			if position < 0 {
				return nil, errors.Newf(errors.ErrorTypeLookup,
					"column label %q cannot be found in the input file headers", sel.Label()).
					WithDetail("label", sel.Label())
			}
			indexes = append(indexes, position)
		}
		return indexes, nil

	default:
		return nil, errors.New(errors.ErrorTypeConfig,
			"window.columns mixes integer indexes and labels; use one kind only")
	}
}
