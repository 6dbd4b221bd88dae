package model

import "math"

// Statistics holds the descriptive statistics computed from a CleanDocument.
//
// Invariant: when TotalLines is zero, AvgWordsPerLine is zero as well.
// The analyzer guards the division instead of propagating an error.
//
// Design decision: AvgWordsPerLine keeps full float64 precision here.
// Rounding to one decimal place is a presentation concern and happens in
// the report writers, so downstream consumers of the record are free to
// use the exact value.
type Statistics struct {
	// TotalLines is the number of lines in the analyzed document,
	// including empty lines.
	TotalLines int `json:"total_lines"`

	// AvgWordsPerLine is the total word count divided by TotalLines.
	// Zero when the document has no lines.
	AvgWordsPerLine float64 `json:"avg_length"`

	// UniqueWordCount is the number of distinct words across the whole
	// document. Word identity is exact string equality after
	// normalization.
	UniqueWordCount int `json:"unique_words"`
}

// Rounded returns a copy of the statistics with AvgWordsPerLine rounded
// to one decimal place. Writers that serialize the record use this so
// that all output formats agree on the reported average.
func (s Statistics) Rounded() Statistics {
	s.AvgWordsPerLine = math.Round(s.AvgWordsPerLine*10) / 10
	return s
}
