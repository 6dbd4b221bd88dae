package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ehsandastani/textscan/internal/model"
)

// ReportTitle is the header line of the canonical text report.
const ReportTitle = "=== 🔎 Analysis Report 🔍 ==="

// TextWriter outputs the canonical human-readable report: a title line
// followed by one "key: value" line per statistic. This is the format
// shown on the terminal and persisted to the report file; both
// destinations receive identical content.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in text format.
// The average is rendered with exactly one digit after the decimal point;
// the underlying record keeps full precision.
func (w *TextWriter) Write(report *model.TextReport) (int, error) {
	stats := statsOrZero(report)

	var sb strings.Builder
	sb.WriteString(ReportTitle)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("total_lines: %d\n", stats.TotalLines))
	sb.WriteString("avg_length: " + strconv.FormatFloat(stats.AvgWordsPerLine, 'f', 1, 64) + "\n")
	sb.WriteString(fmt.Sprintf("unique_words: %d\n", stats.UniqueWordCount))

	return w.output.Write([]byte(sb.String()))
}
