package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	want := &Config{
		SourceDir:       "/samples/in",
		DestinationDir:  "/samples/out",
		OutputCSV:       "db.csv",
		Parallelism:     2,
		FFmpegPath:      "/usr/local/bin/ffmpeg",
		WarningBehavior: "immediate",
	}
	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	got := &Config{}
	if err := LoadConfig(path, got); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestEnsureConfigExistsCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := EnsureConfigExists(path)
	if err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}
	if cfg.WarningBehavior != "summary" || cfg.Parallelism != DefaultParallelism {
		t.Errorf("default config = %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestEnsureConfigExistsBackfillsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"SourceDir": "/mine"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := EnsureConfigExists(path)
	if err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}
	if cfg.SourceDir != "/mine" {
		t.Errorf("SourceDir = %q, want /mine", cfg.SourceDir)
	}
	if cfg.OutputCSV != DefaultOutputCSV || cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("defaults not backfilled: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "immediate behavior", mutate: func(c *Config) { c.WarningBehavior = "immediate" }},
		{name: "silent behavior", mutate: func(c *Config) { c.WarningBehavior = "silent" }},
		{name: "unknown behavior", mutate: func(c *Config) { c.WarningBehavior = "loud" }, wantErr: true},
		{name: "zero parallelism", mutate: func(c *Config) { c.Parallelism = 0 }, wantErr: true},
		{name: "negative parallelism", mutate: func(c *Config) { c.Parallelism = -1 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
