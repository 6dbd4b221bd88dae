// Package main provides the entry point for the textscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for textscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textscan",
		Short: "Compute descriptive statistics for text files",
		Long: `textscan reads text files, normalizes their contents (lowercasing,
punctuation removal, whitespace trimming), and reports line, word, and
vocabulary statistics.

The report is shown on the terminal and written to a report file in the
same rendering. JSON and Markdown output formats are available for tool
integration and documentation.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
