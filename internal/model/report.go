package model

import "time"

// TextReport accumulates the state of one analysis run. Pipeline steps
// receive the report and fill in their stage's output: the loader attaches
// RawLines, the normalizer replaces them with CleanLines, and the analyzer
// records Stats.
//
// Design decision: We pass a single mutable accumulator through the
// pipeline rather than threading per-stage return values because it keeps
// the Step interface uniform and makes partial state visible for logging
// and error reporting.
type TextReport struct {
	// Source is the path of the analyzed input file.
	Source string `json:"source"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// RawLines holds the loaded document until normalization consumes it.
	// It is cleared by the normalize step; only the normalized form is
	// kept after that point.
	RawLines RawDocument `json:"-"`

	// CleanLines holds the normalized document.
	CleanLines CleanDocument `json:"-"`

	// Stats is the computed statistics record. Nil until the analyze
	// step has run.
	Stats *Statistics `json:"stats,omitempty"`

	// PerformedSteps lists the pipeline steps executed for this run,
	// in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error holds the error that aborted the run, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewTextReport creates a report for the given source path with the
// analysis date set to now.
func NewTextReport(source string) *TextReport {
	return &TextReport{
		Source:         source,
		DateAnalyzed:   time.Now(),
		PerformedSteps: []string{},
	}
}

// HasStatistics reports whether the analyze stage completed.
func (r *TextReport) HasStatistics() bool {
	return r.Stats != nil
}
