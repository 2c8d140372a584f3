// Package window implements the core windowing engine: it streams rows from
// a delimited data log, accumulates selected columns column-major into a
// fixed-size buffer, and emits one output row per completed buffer.
package window

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/signalframe/signalframe/pkg/errors"
)

// LineReader streams delimited rows from a data log. It tracks the absolute
// 1-based line index, counting any consumed header line, which the
// downsampling policy depends on.
type LineReader struct {
	scanner          *bufio.Scanner
	valueDelimiter   string
	decimalDelimiter string
	line             int
}

// NewLineReader creates a reader splitting lines on valueDelimiter.
func NewLineReader(r io.Reader, valueDelimiter, decimalDelimiter string) *LineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	return &LineReader{
		scanner:          scanner,
		valueDelimiter:   valueDelimiter,
		decimalDelimiter: decimalDelimiter,
	}
}

// Next returns the fields of the next line. It reports ok=false once the
// stream is exhausted. The delimiter collision check lives on the read path
// so that it fires on the first line read, header or data alike.
func (lr *LineReader) Next() ([]string, bool, error) {
	if lr.valueDelimiter == lr.decimalDelimiter {
		return nil, false, errors.New(errors.ErrorTypeConfig,
			"value delimiter and decimal delimiter are equal; set input.value_delimiter and input.decimal_delimiter")
	}

	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return nil, false, errors.Wrap(err, errors.ErrorTypeData, "failed to read input")
		}
		return nil, false, nil
	}

	lr.line++
	line := strings.TrimRight(lr.scanner.Text(), "\r\n")
	return strings.Split(line, lr.valueDelimiter), true, nil
}

// Line returns the absolute 1-based index of the last line read.
func (lr *LineReader) Line() int {
	return lr.line
}

// ReadHeaders consumes the first line as header labels when hasHeaders is
// set. When the last header field parses as a float the header flag is
// probably misconfigured; that is worth a warning but not a failure.
func ReadHeaders(lr *LineReader, hasHeaders bool, log *zap.Logger) ([]string, error) {
	if !hasHeaders {
		return nil, nil
	}

	headers, ok, err := lr.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if _, _, err := parseFloat(headers[len(headers)-1], lr.decimalDelimiter); err == nil {
		log.Warn("input file headers contain a float value; if the file has no headers, set input.has_headers to false")
	}

	return headers, nil
}

// parseFloat parses a field after substituting the configured decimal
// delimiter with the canonical '.'. The transformed text is returned for
// diagnostics.
func parseFloat(field, decimalDelimiter string) (float64, string, error) {
	canonical := field
	if decimalDelimiter != "." {
		canonical = strings.ReplaceAll(field, decimalDelimiter, ".")
	}
	v, err := strconv.ParseFloat(canonical, 64)
	return v, canonical, err
}

// formatFields renders fields as a 1-based "position: value" listing for
// diagnostics.
func formatFields(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(field)
	}
	return b.String()
}
