// Package report renders analysis results for output.
//
// This package contains writers for different output formats:
//   - TextWriter: the canonical human-readable report for terminal and file
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//
// Design decision: We separate report rendering from the data structures
// (which live in the model package) so new output formats can be added
// without touching the pipeline. Writers implement the Writer interface
// and can be composed with MultiWriter to hit several destinations in
// one call.
package report
