package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// MaxAnalyzeSeconds caps how much audio is decoded per file so long
	// samples don't dominate an analysis run.
	MaxAnalyzeSeconds = 30

	DefaultParallelism = 4
	DefaultOutputCSV   = "sample_database.csv"
)

// Configuration structure
type Config struct {
	SourceDir       string `json:"SourceDir"`
	DestinationDir  string `json:"DestinationDir"`
	OutputCSV       string `json:"OutputCSV"`
	Parallelism     int    `json:"Parallelism"`
	FFmpegPath      string `json:"FFmpegPath"`
	WarningBehavior string `json:"WarningBehavior"` // "immediate", "summary", or "silent"
}

// GetDefaultConfig returns a configuration with defaults applied
func GetDefaultConfig() *Config {
	return &Config{
		SourceDir:       "./All_My_Samples",
		DestinationDir:  "./Organized_Library",
		OutputCSV:       DefaultOutputCSV,
		Parallelism:     DefaultParallelism,
		FFmpegPath:      "ffmpeg",
		WarningBehavior: "summary",
	}
}

// ApplyDefaults fills empty fields with default values
func (cfg *Config) ApplyDefaults() {
	defaults := GetDefaultConfig()

	if cfg.OutputCSV == "" {
		cfg.OutputCSV = defaults.OutputCSV
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = defaults.Parallelism
	}
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = defaults.FFmpegPath
	}
	if cfg.WarningBehavior == "" {
		cfg.WarningBehavior = defaults.WarningBehavior
	}
}

// Validate checks configuration values that have a closed set of options
func (cfg *Config) Validate() error {
	switch cfg.WarningBehavior {
	case "immediate", "summary", "silent":
	default:
		return fmt.Errorf("invalid WarningBehavior %q (want immediate, summary, or silent)", cfg.WarningBehavior)
	}
	if cfg.Parallelism <= 0 {
		return fmt.Errorf("Parallelism must be positive, got %d", cfg.Parallelism)
	}
	return nil
}

// DefaultConfigPath returns the per-user config file location
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".config", "sample-organizer", "config.json")
}

// CreateDirIfNotExists creates a directory if it does not exist
func CreateDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func SaveConfig(filePath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	dir := filepath.Dir(filePath)
	if err := CreateDirIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EnsureConfigExists writes a default config file if none is present
func EnsureConfigExists(filePath string) (*Config, error) {
	cfg := GetDefaultConfig()
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := SaveConfig(filePath, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := LoadConfig(filePath, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
