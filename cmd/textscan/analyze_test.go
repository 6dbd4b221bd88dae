package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ehsandastani/textscan/internal/config"
	"github.com/ehsandastani/textscan/internal/report"
)

// TestNewAnalyzeCmd tests the analyze command creation.
func TestNewAnalyzeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "analyze [files...]" {
			t.Errorf("expected use 'analyze [files...]', got %q", cmd.Use)
		}
	})

	t.Run("has output flag with default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultReportFile {
			t.Errorf("expected default %q, got %q", config.DefaultReportFile, flag.DefValue)
		}
	})

	t.Run("has json flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("expected json flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})

	t.Run("has markdown flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("markdown")
		if flag == nil {
			t.Fatal("expected markdown flag")
		}
		if flag.Shorthand != "m" {
			t.Errorf("expected shorthand 'm', got %q", flag.Shorthand)
		}
	})

	t.Run("has batch flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.Shorthand != "b" {
			t.Errorf("expected shorthand 'b', got %q", flag.Shorthand)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has no-file flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("no-file") == nil {
			t.Fatal("expected no-file flag")
		}
	})
}

// TestBuildConfig tests flag-to-config translation.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults to sample input when no args", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Inputs) != 1 || cfg.Inputs[0] != config.DefaultInputFile {
			t.Errorf("expected default input, got %v", cfg.Inputs)
		}
	})

	t.Run("uses positional args as inputs", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.txt", "b.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cfg.Inputs) != 2 {
			t.Errorf("expected 2 inputs, got %v", cfg.Inputs)
		}
	})

	t.Run("rejects missing explicit config file", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags([]string{"-c", "/nonexistent/config.yaml"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		if _, err := buildConfig(cmd, nil); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("rejects conflicting formats at validation", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.ParseFlags([]string{"-j", "-m"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.txt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cfg.Validate(); err == nil {
			t.Error("expected validation error for conflicting formats")
		}
	})
}

// TestNewFormatWriter tests writer selection by format name.
func TestNewFormatWriter(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "json", "markdown", "unknown"} {
		if w := newFormatWriter(format, io.Discard); w == nil {
			t.Errorf("expected writer for format %q", format)
		}
	}
}

// TestAnalyzeEndToEnd tests the analyze command through the root command.
func TestAnalyzeEndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("writes the report file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "input.txt")
		output := filepath.Join(dir, "report.txt")
		content := "Hello, World!\nhello world\n\n"
		if err := os.WriteFile(input, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write input file: %v", err)
		}

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"analyze", input, "-o", output})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("expected report file to exist: %v", err)
		}

		got := string(data)
		for _, want := range []string{
			"total_lines: 3",
			"avg_length: 1.3",
			"unique_words: 2",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected report to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("returns error for missing input and writes no report", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		output := filepath.Join(dir, "report.txt")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"analyze", filepath.Join(dir, "missing.txt"), "-o", output})
		if err := cmd.Execute(); err == nil {
			t.Fatal("expected error for missing input file")
		}

		if _, err := os.Stat(output); !os.IsNotExist(err) {
			t.Error("expected no report file for a failed analysis")
		}
	})

	t.Run("overwrites a previous report", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		output := filepath.Join(dir, "report.txt")

		first := filepath.Join(dir, "first.txt")
		if err := os.WriteFile(first, []byte("one two three\n"), 0600); err != nil {
			t.Fatalf("failed to write input file: %v", err)
		}
		second := filepath.Join(dir, "second.txt")
		if err := os.WriteFile(second, []byte("only\n"), 0600); err != nil {
			t.Fatalf("failed to write input file: %v", err)
		}

		for _, input := range []string{first, second} {
			cmd := NewRootCmd()
			cmd.SetArgs([]string{"analyze", input, "-o", output})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("expected report file to exist: %v", err)
		}

		got := string(data)
		if !strings.Contains(got, "total_lines: 1") {
			t.Errorf("expected report for the second file, got:\n%s", got)
		}
		if strings.Count(got, report.ReportTitle) != 1 {
			t.Errorf("expected prior content to be replaced, got:\n%s", got)
		}
	})

	t.Run("unwritable output path is an output error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "input.txt")
		if err := os.WriteFile(input, []byte("a b\n"), 0600); err != nil {
			t.Fatalf("failed to write input file: %v", err)
		}

		// Using an existing file as a directory component makes the
		// output path impossible to create.
		cmd := NewRootCmd()
		cmd.SetArgs([]string{"analyze", input, "-o", filepath.Join(input, "report.txt")})
		err := cmd.Execute()
		if !errors.Is(err, report.ErrOutput) {
			t.Errorf("expected output error, got %v", err)
		}
	})

	t.Run("creates nested output directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "input.txt")
		if err := os.WriteFile(input, []byte("a b\n"), 0600); err != nil {
			t.Fatalf("failed to write input file: %v", err)
		}
		output := filepath.Join(dir, "out", "nested", "report.txt")

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"analyze", input, "-o", output})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(output); err != nil {
			t.Errorf("expected report file in nested directory: %v", err)
		}
	})
}
