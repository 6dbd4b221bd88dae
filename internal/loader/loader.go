package loader

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ehsandastani/textscan/internal/model"
)

// maxLineSize is the maximum length of a single input line in bytes.
// bufio.Scanner's default of 64KB is too small for minified or
// machine-generated text files.
const maxLineSize = 4 * 1024 * 1024

// Loader reads text files into RawDocuments.
type Loader struct {
	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// Load reads the file at path and returns its lines in order, newline
// characters stripped. Both "\n" and "\r\n" line endings are accepted,
// and a leading UTF-8 byte order mark is removed.
//
// A missing or unopenable file is reported as ErrNotFound; the returned
// error wraps the sentinel so callers can use errors.Is().
func (l *Loader) Load(path string) (model.RawDocument, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	// BOMOverride consumes a UTF-8 BOM if present so it does not leak
	// into the first line as text.
	decoder := unicode.UTF8.NewDecoder()
	scanner := bufio.NewScanner(transform.NewReader(f, unicode.BOMOverride(decoder)))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := make(model.RawDocument, 0, 64)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	l.logger.Debug("input file loaded",
		"path", path,
		"lines", len(lines),
	)

	return lines, nil
}
