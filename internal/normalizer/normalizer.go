package normalizer

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ehsandastani/textscan/internal/model"
)

// Normalizer transforms raw lines into their normalized form.
//
// Design decision: We lowercase with x/text cases rather than
// strings.ToLower because the caser applies full Unicode case mapping
// (e.g. final sigma handling) under a locale-independent ruleset.
type Normalizer struct {
	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets a custom logger for the normalizer.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New creates a new Normalizer with the given options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}

	for _, opt := range opts {
		opt(n)
	}

	if n.logger == nil {
		n.logger = slog.Default()
	}

	return n
}

// Normalize cleans every line of the document and returns the result.
// The output always has exactly as many lines as the input; empty lines
// stay as empty strings.
func (n *Normalizer) Normalize(doc model.RawDocument) model.CleanDocument {
	// A Caser is stateful, so create one per document rather than
	// sharing it across concurrent pipeline runs.
	caser := cases.Lower(language.Und)

	clean := make(model.CleanDocument, len(doc))
	for i, line := range doc {
		clean[i] = normalizeLine(caser, line)
	}

	n.logger.Debug("document normalized", "lines", len(clean))

	return clean
}

// normalizeLine lowercases the line, drops punctuation (any rune that is
// neither alphanumeric nor whitespace), collapses whitespace runs into
// single spaces, and trims the ends.
func normalizeLine(caser cases.Caser, line string) string {
	lowered := caser.String(line)

	var sb strings.Builder
	sb.Grow(len(lowered))

	// Start as if a space was just written so leading whitespace is
	// trimmed for free.
	lastWasSpace := true
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace {
				sb.WriteRune(' ')
				lastWasSpace = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastWasSpace = false
		default:
			// Punctuation is removed entirely, not replaced with a
			// space: "don't" normalizes to "dont".
		}
	}

	return strings.TrimSuffix(sb.String(), " ")
}
