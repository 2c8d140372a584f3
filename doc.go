// Package signalframe reshapes tabular data logs into fixed-width signal
// windows for machine-learning feature pipelines.
//
// A run reads a delimited text log, keeps a configured subset of columns,
// accumulates their values column-major into a fixed-size buffer, and emits
// one comma-joined output row per completed buffer. Downsampling, row
// limits, label-based column selection, and compressed input logs (gzip,
// zstd, lz4) are supported.
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.Window.Columns = []config.Selector{config.Index(2), config.Index(3)}
//	cfg.Window.BufferSize = 128
//
//	summary, err := run.Run(cfg, run.Options{
//	    InputPath:  "datalog.csv",
//	    OutputPath: "signals.csv",
//	}, logger.Get())
//
// Or from the command line:
//
//	signalframe run -i datalog.csv -o signals.csv --config windowing.yaml
//
// Processing is single-threaded and single-pass: the input is read once
// from start to end (or until the row limit is hit), and any validation or
// parse failure aborts the run. The output file must not already exist.
package signalframe
