package services

import (
	"sample-organizer/internal/audio"
	"sample-organizer/internal/config"
	"sample-organizer/internal/core/analyzer"
	"sample-organizer/internal/core/organizer"
	"sample-organizer/internal/interfaces"
	"sample-organizer/internal/shared"
)

// ServiceContainer holds all application services
type ServiceContainer struct {
	Config           interfaces.ConfigService
	Mover            interfaces.FileMover
	Extractor        interfaces.FeatureExtractor
	WarningCollector *shared.WarningCollector
	Organizer        *organizer.Organizer
	Analyzer         *analyzer.Analyzer
}

// Options are the per-invocation switches the CLI layer passes down.
type Options struct {
	Debug  bool
	DryRun bool
}

// NewServiceContainer creates a new service container with all services initialized
func NewServiceContainer(cfg *config.Config, opts Options) *ServiceContainer {
	// The collector stays enabled for "immediate" too so the final summary
	// can still report totals; "silent" suppresses everything.
	warningCollector := shared.NewWarningCollector(cfg.WarningBehavior != "silent")

	mover := organizer.OSMover{}
	extractor := audio.NewExtractor(cfg.FFmpegPath)

	return &ServiceContainer{
		Config:           NewConfigService(),
		Mover:            mover,
		Extractor:        extractor,
		WarningCollector: warningCollector,
		Organizer:        organizer.NewOrganizer(mover, warningCollector, cfg.WarningBehavior, opts.Debug, opts.DryRun),
		Analyzer:         analyzer.NewAnalyzer(extractor, warningCollector, cfg.WarningBehavior, cfg.Parallelism, opts.Debug),
	}
}

// ConfigService implementation
type ConfigService struct{}

func NewConfigService() *ConfigService {
	return &ConfigService{}
}

func (cs *ConfigService) LoadConfig(configFile string) (*config.Config, error) {
	cfg := &config.Config{}
	if err := config.LoadConfig(configFile, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func (cs *ConfigService) SaveConfig(configFile string, cfg *config.Config) error {
	return config.SaveConfig(configFile, cfg)
}

func (cs *ConfigService) EnsureConfigExists(configFile string) (*config.Config, error) {
	return config.EnsureConfigExists(configFile)
}
