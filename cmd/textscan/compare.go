package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ehsandastani/textscan/internal/log"
	"github.com/ehsandastani/textscan/internal/model"
	"github.com/ehsandastani/textscan/internal/pipeline"
)

// NewCompareCmd creates the compare command.
// This command analyzes two files and shows their statistics side by side.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Compare the statistics of two text files",
		Long: `Compare runs the analysis pipeline on two files and displays their
statistics side by side with the difference for each metric.

Both files go through the same normalization, so the comparison reflects
content differences rather than formatting or casing.

Examples:
  # Compare two drafts of a document
  textscan compare draft-v1.txt draft-v2.txt

  # Output the comparison in JSON format
  textscan compare --json draft-v1.txt draft-v2.txt`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// comparison is the serializable result of comparing two analyses.
type comparison struct {
	// A is the statistics of the first file.
	A fileStats `json:"a"`

	// B is the statistics of the second file.
	B fileStats `json:"b"`

	// Delta is B minus A for each metric.
	Delta model.Statistics `json:"delta"`
}

// fileStats pairs a source path with its statistics.
type fileStats struct {
	Source string           `json:"source"`
	Stats  model.Statistics `json:"stats"`
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reports := make([]*model.TextReport, 2)
	for i, path := range args {
		p := pipeline.DefaultPipeline(pipeline.WithLogger(logger))
		reports[i] = model.NewTextReport(path)
		if err := p.Execute(ctx, reports[i]); err != nil {
			return fmt.Errorf("failed to analyze %s: %w", path, err)
		}
	}

	aStats := reports[0].Stats.Rounded()
	bStats := reports[1].Stats.Rounded()

	result := comparison{
		A: fileStats{Source: reports[0].Source, Stats: aStats},
		B: fileStats{Source: reports[1].Source, Stats: bStats},
		Delta: model.Statistics{
			TotalLines:      bStats.TotalLines - aStats.TotalLines,
			AvgWordsPerLine: bStats.AvgWordsPerLine - aStats.AvgWordsPerLine,
			UniqueWordCount: bStats.UniqueWordCount - aStats.UniqueWordCount,
		}.Rounded(),
	}

	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	writeComparison(cmd.OutOrStdout(), result)
	return nil
}

// writeComparison renders the side-by-side text view of the comparison.
func writeComparison(w io.Writer, c comparison) {
	fmt.Fprintf(w, "=== 🔎 Comparison Report 🔍 ===\n")
	fmt.Fprintf(w, "%-14s %-20s %-20s %s\n", "metric", c.A.Source, c.B.Source, "delta")
	fmt.Fprintf(w, "%-14s %-20d %-20d %s\n", "total_lines",
		c.A.Stats.TotalLines, c.B.Stats.TotalLines, signedInt(c.Delta.TotalLines))
	fmt.Fprintf(w, "%-14s %-20s %-20s %s\n", "avg_length",
		formatAvg(c.A.Stats.AvgWordsPerLine), formatAvg(c.B.Stats.AvgWordsPerLine),
		signedFloat(c.Delta.AvgWordsPerLine))
	fmt.Fprintf(w, "%-14s %-20d %-20d %s\n", "unique_words",
		c.A.Stats.UniqueWordCount, c.B.Stats.UniqueWordCount, signedInt(c.Delta.UniqueWordCount))
}

// formatAvg renders an average with exactly one fractional digit.
func formatAvg(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// signedInt renders an integer delta with an explicit sign.
func signedInt(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// signedFloat renders a float delta with an explicit sign and one
// fractional digit.
func signedFloat(v float64) string {
	if v > 0 {
		return "+" + formatAvg(v)
	}
	return formatAvg(v)
}
