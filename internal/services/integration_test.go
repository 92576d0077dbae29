package services

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sample-organizer/internal/config"
	"sample-organizer/internal/core/analyzer"
	"sample-organizer/internal/shared"
)

type fixedExtractor struct{}

func (fixedExtractor) DecodeAndAnalyze(ctx context.Context, filePath string, maxSeconds int) (*shared.FeatureValues, error) {
	if maxSeconds != config.MaxAnalyzeSeconds {
		return nil, errors.New("unexpected duration cap")
	}
	return &shared.FeatureValues{ComputedBPM: 95, Brightness: 1200, LoudnessRMS: 0.2, ZeroCrossingRate: 0.05, SpectralBandwidth: 900}, nil
}

// Organize a messy source tree, then analyze the organized output: the
// CSV must describe exactly the files the organizer produced.
func TestOrganizeThenAnalyze(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "All_My_Samples")
	library := filepath.Join(root, "Organized_Library")
	output := filepath.Join(root, "sample_database.csv")

	files := map[string]string{
		"Ghosthack_AC2024/Kicks/Kick_Base_95bpm_Cmaj.wav": "kick",
		"Ghosthack_AC2024/FX/big_riser.wav":               "riser",
		"LoFi Melodics 19/keys_warm_Fmaj.wav":             "keys",
		"Misc/readme.txt":                                 "not audio",
	}
	for rel, contents := range files {
		path := filepath.Join(source, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.GetDefaultConfig()
	cfg.WarningBehavior = "silent"
	container := NewServiceContainer(cfg, Options{})

	orgStats, err := container.Organizer.Run(source, library)
	if err != nil {
		t.Fatalf("organize failed: %v", err)
	}
	if orgStats.MovedCount != 3 || orgStats.FailedCount != 0 {
		t.Fatalf("organize stats = %+v, want 3 moved", orgStats)
	}

	// Analysis uses a deterministic extractor so the test runs without ffmpeg.
	a := analyzer.NewAnalyzer(fixedExtractor{}, container.WarningCollector, cfg.WarningBehavior, cfg.Parallelism, false)
	anStats, err := a.Run(context.Background(), library, output)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if anStats.ProcessedCount != 3 || anStats.FailedCount != 0 {
		t.Fatalf("analyze stats = %+v, want 3 processed", anStats)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d CSV rows, want header + 3 records", len(rows))
	}

	categories := map[string]string{}
	for _, row := range rows[1:] {
		categories[row[0]] = row[1]
	}
	want := map[string]string{
		"Ghosthack_AC2024_Kick_Base_95bpm_Cmaj.wav": "Drum Loops",
		"Ghosthack_AC2024_big_riser.wav":            "Sound Effects (FX)",
		"LoFi_Melodics_19_keys_warm_Fmaj.wav":       "Melodic One-Shots",
	}
	for filename, category := range want {
		if categories[filename] != category {
			t.Errorf("%s categorized as %q, want %q", filename, categories[filename], category)
		}
	}
}
