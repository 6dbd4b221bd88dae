package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ehsandastani/textscan/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for machine consumption and tool integration.
type JSONWriter struct {
	baseWriter

	// indent controls pretty-printing. Empty string means compact output.
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent sets the indentation string for pretty-printed output.
func WithIndent(indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = indent
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is pretty-printed with two-space indentation by default.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
		indent:     "  ",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report as JSON.
// The statistics are serialized with the average rounded to one decimal
// place so all output formats agree on the reported value.
func (w *JSONWriter) Write(report *model.TextReport) (int, error) {
	// Shallow copy so rounding and error stringification never mutate
	// the caller's report.
	out := *report
	if out.Stats != nil {
		rounded := out.Stats.Rounded()
		out.Stats = &rounded
	}
	if out.Error != nil && out.ErrorMessage == "" {
		out.ErrorMessage = out.Error.Error()
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", w.indent)
	if err := encoder.Encode(&out); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
