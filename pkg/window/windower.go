package window

import (
	"go.uber.org/zap"

	"github.com/signalframe/signalframe/pkg/config"
	"github.com/signalframe/signalframe/pkg/errors"
)

// progressInterval is the flush count between progress reports.
const progressInterval = 50

// Windower accumulates selected column values from consecutive rows into a
// flat buffer and flushes one output row each time the buffer reaches
// columns × buffer_size values. The buffer is column-major per window: for
// each participating row the selected columns are appended in order, so a
// completed window holds all buffered values of the first column, then the
// second, and so on.
type Windower struct {
	columns          []int
	bufferSize       int
	downsampleFactor int
	rowLimit         config.RowLimit
	decimalDelimiter string
	hasHeaders       bool

	buffer []float64
	built  int

	log *zap.Logger
}

// New creates a Windower over the resolved column indexes.
func New(cfg config.Config, columns []int, log *zap.Logger) *Windower {
	window := cfg.Window
	return &Windower{
		columns:          columns,
		bufferSize:       window.BufferSize,
		downsampleFactor: window.DownsampleFactor,
		rowLimit:         window.RowLimit,
		decimalDelimiter: cfg.Input.DecimalDelimiter,
		hasHeaders:       cfg.Input.HasHeaders,
		buffer:           make([]float64, 0, len(columns)*window.BufferSize),
		log:              log,
	}
}

// RowsBuilt returns the number of output rows flushed so far.
func (w *Windower) RowsBuilt() int {
	return w.built
}

// ValuesPerRow returns the length of every completed output row.
func (w *Windower) ValuesPerRow() int {
	return len(w.columns) * w.bufferSize
}

// Run streams rows from the reader until exhaustion or the row limit,
// writing completed windows to out. The reader must already be advanced
// past any header line. Any validation or parse failure aborts the run;
// partial recovery would leave the output unrepresentative of a valid run.
func (w *Windower) Run(reader *LineReader, out *RowWriter) error {
	for {
		if w.rowLimit.Reached(w.built) {
			break
		}

		fields, ok, err := reader.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		// Downsampling counts absolute line indexes, header line included.
		line := reader.Line()
		if line%w.downsampleFactor != 0 {
			continue
		}

		for _, index := range w.columns {
			if len(fields) <= index {
				return w.shortLineError(line, index, fields)
			}
			value, canonical, err := parseFloat(fields[index], w.decimalDelimiter)
			if err != nil {
				return w.parseError(line, fields[index], canonical)
			}
			w.buffer = append(w.buffer, value)
		}

		if len(w.buffer) == w.ValuesPerRow() {
			if err := out.WriteRow(w.buffer); err != nil {
				return err
			}
			w.buffer = w.buffer[:0]
			w.built++

			if w.built%progressInterval == 0 {
				w.log.Info("samples written", zap.Int("count", w.built))
			}
		}
	}

	w.log.Info("output created",
		zap.Int("samples", w.built),
		zap.Int("values_per_sample", w.ValuesPerRow()))
	return nil
}

// shortLineError reports a row with fewer fields than the requested column.
// On the first lines this is usually a delimiter misconfiguration rather
// than bad data, so the message says so.
func (w *Windower) shortLineError(line, index int, fields []string) error {
	err := errors.Newf(errors.ErrorTypeData,
		"line %d does not contain enough values: looking for column %d and only %d columns / %s",
		line, index+1, len(fields), formatFields(fields))
	if line <= 2 {
		err = errors.Newf(errors.ErrorTypeData,
			"line %d does not contain enough values: looking for column %d and only %d columns / %s; check input.value_delimiter and input.decimal_delimiter",
			line, index+1, len(fields), formatFields(fields))
	}
	return err.WithDetail("line", line).WithDetail("column", index+1)
}

// parseError reports a field that does not parse as a float. Failures on
// the first data line point at the two most common misconfigurations.
func (w *Windower) parseError(line int, original, canonical string) error {
	switch {
	case line == 1 && !w.hasHeaders:
		return errors.Newf(errors.ErrorTypeData,
			"cannot convert %q to float (original value %q at line %d); the input file may have headers, in that case set input.has_headers to true, or check input.value_delimiter and input.decimal_delimiter",
			canonical, original, line).WithDetail("line", line)
	case line == 2 && w.hasHeaders:
		return errors.Newf(errors.ErrorTypeData,
			"cannot convert %q to float (original value %q at line %d); check input.value_delimiter and input.decimal_delimiter",
			canonical, original, line).WithDetail("line", line)
	default:
		return errors.Newf(errors.ErrorTypeData,
			"cannot convert %q to float (original value %q at line %d)",
			canonical, original, line).WithDetail("line", line)
	}
}
