// Package main provides the entry point for the textscan CLI.
//
// textscan reads text files, normalizes their contents, computes basic
// descriptive statistics, and emits a formatted report to the terminal
// and a report file.
//
// Usage:
//
//	textscan analyze <file>
//	textscan compare <file-a> <file-b>
//
// See --help for all available options.
package main

// main is the entry point for textscan.
func main() {
	Execute()
}
