// Package config provides configuration structures and utilities for
// textscan. It defines the options for input and output paths, report
// format selection, and batch processing, plus the optional YAML
// configuration file with per-file overrides.
package config
