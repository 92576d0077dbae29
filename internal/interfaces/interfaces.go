package interfaces

import (
	"context"

	"sample-organizer/internal/config"
	"sample-organizer/internal/shared"
)

// FileMover defines the interface for relocating files on disk
type FileMover interface {
	// Move relocates a file. Callers create intervening directories;
	// Move must fail when the source no longer exists.
	Move(sourcePath, destPath string) error
}

// FeatureExtractor defines the interface for the audio analysis collaborator
type FeatureExtractor interface {
	// DecodeAndAnalyze decodes at most maxSeconds of audio from filePath
	// and returns scalar acoustic descriptors
	DecodeAndAnalyze(ctx context.Context, filePath string, maxSeconds int) (*shared.FeatureValues, error)
}

// ConfigService defines the interface for configuration management
type ConfigService interface {
	// LoadConfig loads configuration from file
	LoadConfig(configFile string) (*config.Config, error)

	// SaveConfig saves configuration to file
	SaveConfig(configFile string, cfg *config.Config) error

	// EnsureConfigExists creates a default config file if it doesn't exist
	EnsureConfigExists(configFile string) (*config.Config, error)
}
