// Package model defines the data structures shared across the analysis
// pipeline: documents in their raw and normalized forms, the statistics
// record computed from them, and the report accumulator that pipeline
// steps fill in.
//
// Design decision: All types in this package are plain data with no I/O.
// Loading, normalization, and report rendering live in their own packages
// so that the data model stays trivially testable and serializable.
package model
