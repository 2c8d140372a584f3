package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/signalframe/signalframe/internal/run"
	"github.com/signalframe/signalframe/pkg/config"
	"github.com/signalframe/signalframe/pkg/logger"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "signalframe",
		Short: "signalframe - reshape data logs into fixed-width signal windows",
		Long: `signalframe converts tabular data logs into fixed-width signal windows
suitable for machine-learning feature pipelines. It selects configured
columns from each input row, buffers values column-major, and emits one
output row per completed window.`,
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("signalframe v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Main run command
	var inputPath, outputPath, configFile, summaryPath, logLevel string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a windowing conversion",
		Long: `Run one windowing conversion from an input data log to an output file.
The window shape (columns, buffer size, downsampling, row limit) comes from
the configuration file, not from runtime flags.

Example:
  signalframe run -i datalog.csv -o signals.csv --config windowing.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindowing(inputPath, outputPath, configFile, summaryPath, logLevel)
		},
	}

	// Required flags
	runCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the input data log (required)")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the output file; must not already exist (required)")
	_ = runCmd.MarkFlagRequired("input")
	_ = runCmd.MarkFlagRequired("output")

	// Optional flags
	runCmd.Flags().StringVar(&configFile, "config", os.Getenv("SIGNALFRAME_CONFIG"), "Path to a YAML or JSON run configuration file")
	runCmd.Flags().StringVar(&summaryPath, "summary", "", "Write a JSON run summary to this path")
	runCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runWindowing loads the configuration and executes one run.
func runWindowing(inputPath, outputPath, configFile, summaryPath, logLevel string) error {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := logger.Init(logger.Config{
		Level:    cfg.Logging.Level,
		Encoding: cfg.Logging.Encoding,
	}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log := logger.With(
		zap.String("component", "signalframe-cli"),
		zap.String("input", inputPath),
		zap.String("output", outputPath),
	)

	log.Info("starting run",
		zap.String("config", configFile),
		zap.Int("buffer_size", cfg.Window.BufferSize),
		zap.Int("downsample_factor", cfg.Window.DownsampleFactor),
		zap.Stringer("row_limit", cfg.Window.RowLimit))

	startTime := time.Now()

	summary, err := run.Run(cfg, run.Options{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		SummaryPath: summaryPath,
	}, log)
	if err != nil {
		return err
	}

	log.Info("run completed",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("rows_written", summary.RowsWritten),
		zap.Int("values_per_row", summary.ValuesPerRow))

	return nil
}
