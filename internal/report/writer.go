package report

import (
	"errors"
	"io"

	"github.com/ehsandastani/textscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations render an analysis report to their configured
// destination in a specific format.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.TextReport) (int, error)
}

// MultiWriter writes to multiple Writers in sequence.
// This is used to emit the same report to both the terminal and a file.
//
// Design decision: Unlike io.MultiWriter, a failing destination does not
// stop the remaining ones. Console and file output are independent side
// effects: either may succeed while the other fails, and every failure
// must be reported. Errors from all destinations are joined.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to every configured Writer, even if some fail.
// Returns the total bytes written and the joined errors of all failed
// destinations (nil if every destination succeeded).
func (m *MultiWriter) Write(report *model.TextReport) (int, error) {
	var total int
	var errs []error
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	return total, errors.Join(errs...)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// statsOrZero returns the report's statistics, or the zero record when
// the analyze stage never ran. Writers never emit a partial report, but
// rendering a zero record keeps them total functions.
func statsOrZero(report *model.TextReport) model.Statistics {
	if report.Stats == nil {
		return model.Statistics{}
	}
	return *report.Stats
}
