// Package loader reads input text files into ordered line sequences.
//
// The loader is the only pipeline stage that touches the input file.
// It splits on the universal newline convention, strips a UTF-8 byte
// order mark if present, and never modifies the source file.
package loader
