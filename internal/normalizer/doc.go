// Package normalizer cleans raw document lines for analysis.
//
// Normalization applies three transformations to every line, each line
// independently: lowercasing, punctuation removal, and whitespace
// collapsing with leading/trailing trim. The operation is pure, total,
// and idempotent; it preserves line count so raw and clean documents
// stay comparable.
package normalizer
