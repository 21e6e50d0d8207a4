package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for the classification pipeline. All of these are overridable
// through the config file.
const (
	DefaultModel               = "phi4-mini:latest"
	DefaultConfidenceThreshold = 0.60
	DefaultMaxRetries          = 2
	DefaultBatchLimit          = 10
)

// Config represents the flat secondbrain configuration stored in
// ~/.secondbrain/config.json.
type Config struct {
	Model               string  `json:"model"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	MaxRetries          int     `json:"max_retries"`
	BatchLimit          int     `json:"batch_limit"`
	DBPath              string  `json:"db_path,omitempty"`
	AliasesPath         string  `json:"aliases_path,omitempty"`
}

// Dir returns the secondbrain dot-directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".secondbrain"), nil
}

// Default returns a config populated with defaults, with the db and alias
// paths resolved under dir.
func Default(dir string) *Config {
	return &Config{
		Model:               DefaultModel,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		MaxRetries:          DefaultMaxRetries,
		BatchLimit:          DefaultBatchLimit,
		DBPath:              filepath.Join(dir, "brain.db"),
		AliasesPath:         filepath.Join(dir, "aliases.json"),
	}
}

// Load reads config.json from the given directory. A missing file yields
// the defaults; a malformed file is an error. Fields omitted from the file
// keep their default values.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes config.json to the given directory, creating it if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
