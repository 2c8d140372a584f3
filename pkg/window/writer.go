package window

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/signalframe/signalframe/pkg/errors"
)

// RowWriter writes completed windows as comma-joined lines. Every row after
// the first is prefixed with a newline instead of terminated with one, so
// the output carries no trailing newline.
type RowWriter struct {
	w       *bufio.Writer
	closer  io.Closer
	rows    int
	closed  bool
	scratch []byte
}

// NewRowWriter wraps an arbitrary writer, mainly for tests.
func NewRowWriter(w io.Writer) *RowWriter {
	return &RowWriter{
		w:       bufio.NewWriter(w),
		scratch: make([]byte, 0, 32),
	}
}

// Create creates the output file, refusing to overwrite an existing one.
func Create(path string) (*RowWriter, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644) //nolint:gosec // G304: path comes from the CLI flag
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.Newf(errors.ErrorTypePrecondition, "output file %s already exists", path)
		}
		return nil, errors.Wrap(err, errors.ErrorTypePrecondition, "failed to create output file")
	}

	rw := NewRowWriter(file)
	rw.closer = file
	return rw, nil
}

// WriteRow serializes one window. Values are rendered with Go's shortest
// round-trip float formatting.
func (rw *RowWriter) WriteRow(values []float64) error {
	if rw.rows > 0 {
		if err := rw.w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "failed to write output row")
		}
	}

	for i, value := range values {
		if i > 0 {
			if err := rw.w.WriteByte(','); err != nil {
				return errors.Wrap(err, errors.ErrorTypeData, "failed to write output row")
			}
		}
		rw.scratch = strconv.AppendFloat(rw.scratch[:0], value, 'g', -1, 64)
		if _, err := rw.w.Write(rw.scratch); err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "failed to write output row")
		}
	}

	rw.rows++
	return nil
}

// Rows returns the number of rows written.
func (rw *RowWriter) Rows() int {
	return rw.rows
}

// Flush flushes buffered output.
func (rw *RowWriter) Flush() error {
	return rw.w.Flush()
}

// Close flushes and closes the underlying file, when there is one.
// Closing twice is a no-op.
func (rw *RowWriter) Close() error {
	if rw.closed {
		return nil
	}
	rw.closed = true
	if err := rw.w.Flush(); err != nil {
		return err
	}
	if rw.closer != nil {
		return rw.closer.Close()
	}
	return nil
}
