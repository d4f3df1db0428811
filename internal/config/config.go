// Package config handles .testlens.yaml configuration files.
package config

// Config represents the contents of a .testlens.yaml file.
type Config struct {
	// OutputFormat selects the default formatter ("csv", "csv-grouped",
	// "json", "markdown").
	OutputFormat string `yaml:"output_format,omitempty"`

	// Model overrides the default LLM model for summaries.
	Model string `yaml:"model,omitempty"`

	// MaxTokens caps the summary response length.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// NoLLM disables summary generation even when an API key is present.
	NoLLM bool `yaml:"no_llm,omitempty"`

	// PlannedTotals maps platform name to the planned case count for
	// report formats that omit not-executed cases. Applied only when set.
	PlannedTotals map[string]int `yaml:"planned_totals,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".testlens.yaml"
