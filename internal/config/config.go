package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The file name defaults match the original tool so existing workflows
// keep working without flags.
const (
	// DefaultInputFile is the input path used when no arguments are given.
	DefaultInputFile = "sample_data.txt"

	// DefaultReportFile is the output path the report is persisted to.
	// It is overwritten on every run; reports never append.
	DefaultReportFile = "report.txt"

	// DefaultBatchSize of 4 concurrent analyses balances throughput with
	// file-handle and memory usage when many inputs are given. A single
	// input is always processed without any concurrency.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "textscan"
)

// Config holds all configuration options for textscan.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Inputs is the list of input file paths to analyze.
	// Must contain at least one path; the CLI falls back to
	// DefaultInputFile when no arguments are given.
	Inputs []string

	// OutputFile is the path the report is written to, in addition to
	// standard output. Overwritten each run.
	OutputFile string

	// NoFile disables the file destination entirely, leaving only the
	// console output.
	NoFile bool

	// JSONReport enables JSON report output instead of the plain text
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the plain
	// text format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// BatchSize is the number of concurrent analyses when processing
	// multiple input files. Each individual analysis is sequential.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .textscan in the current directory,
	// the XDG config directory, and the user's home directory.
	ConfigFilePath string

	// FileConfigs holds per-input configurations loaded from the config
	// file. This is populated by LoadConfigFile.
	FileConfigs *File
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (output path, batch
// size). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		OutputFile: DefaultReportFile,
		BatchSize:  DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for textscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/textscan
// On macOS: ~/Library/Application Support/textscan
// On Windows: %APPDATA%\textscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate once after CLI parsing, before any
// analysis begins, to fail fast with a clear message. The first error
// found is returned because fixing one error often makes others
// irrelevant.
func (c *Config) Validate() error {
	// We must have at least one input to analyze
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	// BatchSize must be positive; zero would mean no processing
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
