package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level glrecon.yaml configuration.
type Config struct {
	GL   GLConfig   `yaml:"gl"`
	Bank BankConfig `yaml:"bank"`
}

// GLConfig controls GL classification.
type GLConfig struct {
	// TaxSources are the source-system keywords that trigger the TAX
	// category. Extracts disagree on whether a literal TAX source code
	// counts as a tax journal, so the set is configurable; narrow it to
	// ["H11"] for extracts where it does not.
	TaxSources []string `yaml:"tax_sources"`
}

// BankConfig controls bank statement ingestion.
type BankConfig struct {
	// HeaderSkip is the number of preamble rows before the header row.
	HeaderSkip int `yaml:"header_skip"`
	// Sheet selects a workbook sheet by name; empty means the first sheet.
	Sheet string `yaml:"sheet,omitempty"`
}

// Load reads a glrecon.yaml file from disk. Settings the file omits keep
// their defaults, so a config that only narrows the TAX trigger set does
// not lose the statement header offset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the stock rule set and statement layout.
func Default() *Config {
	return &Config{
		GL: GLConfig{
			TaxSources: []string{"H11", "TAX"},
		},
		Bank: BankConfig{
			HeaderSkip: 5,
		},
	}
}
