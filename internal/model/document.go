package model

// RawDocument is an ordered sequence of input lines exactly as read from
// the source file, with newline characters stripped. It is produced by the
// loader and consumed once by the normalizer.
type RawDocument []string

// CleanDocument is an ordered sequence of normalized lines: lowercase,
// punctuation removed, whitespace collapsed and trimmed.
//
// Invariant: a CleanDocument always has the same number of lines as the
// RawDocument it was derived from. Empty lines are preserved as empty
// strings rather than dropped so that line counts stay comparable.
type CleanDocument []string

// Len returns the number of lines in the document.
func (d RawDocument) Len() int {
	return len(d)
}

// Len returns the number of lines in the document.
func (d CleanDocument) Len() int {
	return len(d)
}
