package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/ehsandastani/textscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation: it provides type-safe tables and headings without
// hand-assembled format strings.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.TextReport) (int, error) {
	stats := statsOrZero(report)

	md := markdown.NewMarkdown(w.output)

	md.H1("Analysis Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")

	md.H2("Statistics")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"total_lines", strconv.Itoa(stats.TotalLines)},
			{"avg_length", strconv.FormatFloat(stats.AvgWordsPerLine, 'f', 1, 64)},
			{"unique_words", strconv.Itoa(stats.UniqueWordCount)},
		},
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// statusText returns the status cell based on report state.
func (w *MarkdownWriter) statusText(report *model.TextReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}
