// Package run orchestrates one windowing run from input file to output
// file: precondition checks, header resolution, column resolution, the
// windowing loop, and the optional run summary.
package run

import (
	"os"
	"time"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/signalframe/signalframe/pkg/compress"
	"github.com/signalframe/signalframe/pkg/config"
	"github.com/signalframe/signalframe/pkg/errors"
	"github.com/signalframe/signalframe/pkg/window"
)

// Options carries the per-invocation file paths.
type Options struct {
	InputPath   string
	OutputPath  string
	SummaryPath string
}

// Summary reports what a completed run produced.
type Summary struct {
	Input        string `json:"input"`
	Output       string `json:"output"`
	Compression  string `json:"compression"`
	RowsWritten  int    `json:"rows_written"`
	ValuesPerRow int    `json:"values_per_row"`
	DurationMS   int64  `json:"duration_ms"`
}

// Run executes one windowing run. The input file must exist and the output
// file must not; both are checked before any data is read. Processing is
// single-pass and strictly sequential; the first failure aborts the run.
func Run(cfg config.Config, opts Options, log *zap.Logger) (*Summary, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.InputPath)
	if err != nil || info.IsDir() {
		return nil, errors.Newf(errors.ErrorTypePrecondition, "input file %s does not exist", opts.InputPath)
	}
	if _, err := os.Stat(opts.OutputPath); err == nil {
		return nil, errors.Newf(errors.ErrorTypePrecondition, "output file %s already exists", opts.OutputPath)
	}

	out, err := window.Create(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	in, err := compress.OpenFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	algorithm := compress.ForPath(opts.InputPath)
	if algorithm != compress.None {
		log.Info("decompressing input", zap.String("algorithm", string(algorithm)))
	}

	reader := window.NewLineReader(in, cfg.Input.ValueDelimiter, cfg.Input.DecimalDelimiter)

	headers, err := window.ReadHeaders(reader, cfg.Input.HasHeaders, log)
	if err != nil {
		return nil, err
	}
	if headers != nil {
		log.Info("input file has headers", zap.Strings("headers", headers))
	}

	columns, err := window.ResolveColumns(cfg.Window.Columns, headers)
	if err != nil {
		return nil, err
	}

	windower := window.New(cfg, columns, log)
	if err := windower.Run(reader, out); err != nil {
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to finalize output file")
	}

	summary := &Summary{
		Input:        opts.InputPath,
		Output:       opts.OutputPath,
		Compression:  string(algorithm),
		RowsWritten:  windower.RowsBuilt(),
		ValuesPerRow: windower.ValuesPerRow(),
		DurationMS:   time.Since(start).Milliseconds(),
	}

	if opts.SummaryPath != "" {
		if err := writeSummary(opts.SummaryPath, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

// writeSummary writes the run summary as indented JSON.
func writeSummary(path string, summary *Summary) error {
	data, err := gojson.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to marshal run summary")
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to write run summary")
	}
	return nil
}
