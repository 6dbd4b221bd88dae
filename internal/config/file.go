package config

// InputConfig holds per-input configuration for a single file path.
// This allows customizing report behavior per input without flags.
type InputConfig struct {
	// Output overrides the report file path for this input.
	// If empty, the global output path is used.
	Output string `yaml:"output,omitempty"`

	// Format overrides the report format for this input.
	// One of "text", "json", or "markdown". If empty, the format
	// selected by flags is used.
	Format string `yaml:"format,omitempty"`
}

// File represents the structure of the .textscan configuration file.
type File struct {
	// Files maps input paths to their per-input configurations.
	Files map[string]InputConfig `yaml:"files,omitempty"`

	// Defaults contains default input configuration applied to all
	// inputs unless overridden in the per-input configuration.
	Defaults InputConfig `yaml:"defaults,omitempty"`
}

// GetInputConfig returns the configuration for a specific input path.
// It merges the per-input configuration with defaults.
func (cf *File) GetInputConfig(path string) InputConfig {
	// Start with defaults
	result := cf.Defaults

	// Override with per-input configuration if present
	if inputConfig, ok := cf.Files[path]; ok {
		if inputConfig.Output != "" {
			result.Output = inputConfig.Output
		}
		if inputConfig.Format != "" {
			result.Format = inputConfig.Format
		}
	}

	return result
}
