package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level kasku.yaml configuration. It holds
// application-level preferences; per-user financial settings live in the
// record store so they travel with export bundles.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Report  ReportConfig  `yaml:"report"`
	Git     GitConfig     `yaml:"git"`
}

// ProfileConfig identifies the tracked person or household.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// ReportConfig controls the default report shape.
type ReportConfig struct {
	WindowMonths  int `yaml:"window_months"`
	TopCategories int `yaml:"top_categories"`
}

// GitConfig controls data-directory snapshots.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a kasku.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new data directory.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: profileName,
		},
		Report: ReportConfig{
			WindowMonths:  6,
			TopCategories: 5,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Kasku",
			AuthorEmail: "kasku@localhost",
		},
	}
}
