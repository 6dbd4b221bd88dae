// Package analyzer computes descriptive statistics from normalized
// documents: total line count, average words per line, and the number
// of distinct words.
package analyzer

import (
	"log/slog"
	"strings"

	"github.com/ehsandastani/textscan/internal/model"
)

// Analyzer computes a Statistics record from a CleanDocument.
// It is a pure aggregation with no side effects and no failure modes.
type Analyzer struct {
	// logger for structured logging.
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger for the analyzer.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates a new Analyzer with the given options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Analyze computes statistics for the document in a single pass.
//
// A word is a maximal run of non-whitespace characters within a line.
// Word identity is exact string equality; the input is expected to be
// normalized already, so no further case folding happens here.
//
// An empty document yields the zero record rather than dividing by zero.
func (a *Analyzer) Analyze(doc model.CleanDocument) model.Statistics {
	if len(doc) == 0 {
		return model.Statistics{}
	}

	unique := make(map[string]struct{})
	totalWords := 0

	for _, line := range doc {
		words := strings.Fields(line)
		totalWords += len(words)
		for _, w := range words {
			unique[w] = struct{}{}
		}
	}

	stats := model.Statistics{
		TotalLines:      len(doc),
		AvgWordsPerLine: float64(totalWords) / float64(len(doc)),
		UniqueWordCount: len(unique),
	}

	a.logger.Debug("document analyzed",
		"total_lines", stats.TotalLines,
		"total_words", totalWords,
		"unique_words", stats.UniqueWordCount,
	)

	return stats
}
