package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehsandastani/textscan/internal/config"
	"github.com/ehsandastani/textscan/internal/log"
	"github.com/ehsandastani/textscan/internal/model"
	"github.com/ehsandastani/textscan/internal/pipeline"
	"github.com/ehsandastani/textscan/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze text files and report their statistics",
		Long: `Analyze runs each input file through the processing pipeline:

1. Load the file into lines
2. Normalize every line (lowercase, strip punctuation, trim whitespace)
3. Compute statistics (line count, average words per line, unique words)

The report is printed to the terminal and written to a report file with
identical content. With no arguments, ` + config.DefaultInputFile + ` is analyzed.

Examples:
  # Analyze the default sample file
  textscan analyze

  # Analyze a single file
  textscan analyze notes.txt

  # Analyze several files, four at a time
  textscan analyze -b 4 a.txt b.txt c.txt d.txt

  # Emit JSON instead of the text report
  textscan analyze --json notes.txt

  # Write the report to a custom path
  textscan analyze -o out/stats.txt notes.txt

Configuration file (.textscan) example:
  defaults:
    output: report.txt
  files:
    notes.txt:
      output: notes-report.txt
      format: markdown`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Report flags
	cmd.Flags().StringP("output", "o", config.DefaultReportFile,
		"Report file path (overwritten each run, directories created if needed)")
	cmd.Flags().Bool("no-file", false,
		"Skip the report file and only print to the terminal")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses when multiple files are given")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .textscan in current, XDG config, or home directory)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.NoFile, err = cmd.Flags().GetBool("no-file")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-input configurations from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.FileConfigs = &config.File{
			Files: make(map[string]config.InputConfig),
		}
	}

	// Positional arguments are the input files; fall back to the default
	// sample file when none are given.
	if len(args) == 0 {
		args = []string{config.DefaultInputFile}
	}
	cfg.Inputs = args

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"inputs", cfg.Inputs,
		"batchSize", cfg.BatchSize,
	)

	// Use batch processing for parallel analysis if multiple inputs
	if len(cfg.Inputs) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalyze(ctx, cfg, logger)
	}

	// Single input or sequential analysis
	return runSequentialAnalyze(ctx, cfg, logger)
}

// runSequentialAnalyze analyzes inputs one at a time.
// It keeps going after a failed input so the remaining files still get
// their reports; the collected errors drive the non-zero exit status.
func runSequentialAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var errs []error
	for _, input := range cfg.Inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := pipeline.DefaultPipeline(pipeline.WithLogger(logger))
		textReport := model.NewTextReport(input)

		startTime := time.Now()

		// Execute the pipeline. On failure nothing is reported for this
		// input: the run aborts before any report output is produced.
		if err := p.Execute(ctx, textReport); err != nil {
			logger.Error("analysis failed", "input", input, "error", err)
			errs = append(errs, err)
			continue
		}

		logger.Debug("analysis completed",
			"input", input,
			"elapsed", time.Since(startTime).Round(time.Millisecond),
		)

		// Generate and output the report
		if err := outputReport(cfg, textReport); err != nil {
			logger.Error("report output failed", "input", input, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// runBatchAnalyze analyzes multiple inputs concurrently using BatchProcessor.
func runBatchAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	fmt.Fprintf(os.Stderr, "Analyzing %d files (concurrency: %d)...\n",
		len(cfg.Inputs), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(pipeline.WithLogger(logger))
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	var errs []error
	err := bp.ProcessBatchWithCallback(ctx, cfg.Inputs, func(textReport *model.TextReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		if textReport.Error != nil {
			logger.Error("analysis failed",
				"input", textReport.Source,
				"error", textReport.Error,
			)
			errs = append(errs, textReport.Error)
			return
		}

		fmt.Fprintf(os.Stderr, "[%d/%d] Analysis completed: %s\n",
			index+1, len(cfg.Inputs), textReport.Source)

		if err := outputReport(cfg, textReport); err != nil {
			logger.Error("report output failed", "input", textReport.Source, "error", err)
			errs = append(errs, err)
		}
	})
	if err != nil {
		errs = append(errs, err)
	}

	fmt.Fprintf(os.Stderr, "Batch analysis completed in %s\n",
		time.Since(startTime).Round(time.Millisecond))

	return errors.Join(errs...)
}

// outputReport renders the report to the terminal and, unless disabled,
// to the report file.
//
// The two destinations are independent side effects: a file that cannot
// be opened never suppresses the terminal output, and every failure is
// reported individually in the joined error.
func outputReport(cfg *config.Config, textReport *model.TextReport) error {
	inputCfg := cfg.FileConfigs.GetInputConfig(textReport.Source)
	format := reportFormat(cfg, inputCfg)

	writers := []report.Writer{newFormatWriter(format, os.Stdout)}

	var errs []error
	var f *os.File
	if !cfg.NoFile {
		outputPath := cfg.OutputFile
		if inputCfg.Output != "" {
			outputPath = inputCfg.Output
		}

		var err error
		f, err = openReportFile(outputPath)
		if err != nil {
			errs = append(errs, err)
		} else {
			writers = append(writers, newFormatWriter(format, f))
		}
	}

	if _, err := report.NewMultiWriter(writers...).Write(textReport); err != nil {
		errs = append(errs, err)
	}

	if f != nil {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%w: failed to close report file: %v", report.ErrOutput, err))
		}
	}

	return errors.Join(errs...)
}

// reportFormat resolves the output format from flags and the per-input
// config. Flags win over the config file.
func reportFormat(cfg *config.Config, inputCfg config.InputConfig) string {
	switch {
	case cfg.JSONReport:
		return "json"
	case cfg.MarkdownReport:
		return "markdown"
	case inputCfg.Format != "":
		return inputCfg.Format
	default:
		return "text"
	}
}

// newFormatWriter creates the report writer for the given format name.
// Unknown format names fall back to the text writer.
func newFormatWriter(format string, w io.Writer) report.Writer {
	switch format {
	case "json":
		return report.NewJSONWriter(w)
	case "markdown":
		return report.NewMarkdownWriter(w)
	default:
		return report.NewTextWriter(w)
	}
}

// openReportFile creates or truncates the report file at path, creating
// parent directories if needed. Prior content at the path is always
// replaced, never appended to.
func openReportFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("%w: failed to create output directory: %v", report.ErrOutput, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create report file: %v", report.ErrOutput, err)
	}
	return f, nil
}
