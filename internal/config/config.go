package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for PrepScope.
type Config struct {
	Storage  StorageConfig
	Taxonomy TaxonomyConfig
	Analyze  AnalyzeConfig
}

// StorageConfig locates the local SQLite database backing all persisted state.
type StorageConfig struct {
	Path string // database file path
}

// TaxonomyConfig optionally replaces the built-in skill table.
type TaxonomyConfig struct {
	Path string // YAML taxonomy file; empty means built-in table
}

// AnalyzeConfig tunes analyze-time behavior.
type AnalyzeConfig struct {
	ShortJDWarning int // warn when the JD is shorter than this many characters
}

const defaultShortJDWarning = 200

// rawConfig is used for YAML unmarshaling (snake_case fields).
type rawConfig struct {
	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Taxonomy struct {
		Path string `yaml:"path"`
	} `yaml:"taxonomy"`
	Analyze struct {
		ShortJDWarning int `yaml:"short_jd_warning"`
	} `yaml:"analyze"`
}

// Default returns the configuration used when no config file exists: the
// database lives under the user's home directory and the built-in taxonomy
// is used.
func Default() *Config {
	dir := filepath.Join(os.Getenv("HOME"), ".prepscope")
	return &Config{
		Storage: StorageConfig{Path: filepath.Join(dir, "prepscope.db")},
		Analyze: AnalyzeConfig{ShortJDWarning: defaultShortJDWarning},
	}
}

// Load reads and parses the YAML config file at path, applies defaults for
// absent fields, validates, and returns Config. Environment variables in the
// file are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}
	if raw.Taxonomy.Path != "" {
		cfg.Taxonomy.Path = raw.Taxonomy.Path
	}
	if raw.Analyze.ShortJDWarning != 0 {
		cfg.Analyze.ShortJDWarning = raw.Analyze.ShortJDWarning
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path must not be empty")
	}
	if cfg.Analyze.ShortJDWarning < 0 {
		return fmt.Errorf("analyze.short_jd_warning must not be negative, got %d", cfg.Analyze.ShortJDWarning)
	}
	return nil
}
