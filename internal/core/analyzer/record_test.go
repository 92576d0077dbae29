package analyzer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sample-organizer/internal/shared"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []SampleRecord{
		{
			Filename:    "Pack_Kick_95bpm_Cmaj.wav",
			Category:    "Drum Loops",
			Pack:        "Pack",
			SampleName:  "Kick",
			BPMFromName: "95bpm",
			KeyFromName: "Cmaj",
			Features: shared.FeatureValues{
				ComputedBPM:       120.126,
				Brightness:        1534.561,
				SpectralBandwidth: 800.004,
				ZeroCrossingRate:  0.04321,
				LoudnessRMS:       0.12341,
			},
		},
	}

	if err := WriteCSV(path, records); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 record", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header = %v, want %v", rows[0], csvHeader)
	}
	want := []string{
		"Pack_Kick_95bpm_Cmaj.wav", "Drum Loops", "Pack", "Kick",
		"95bpm", "Cmaj",
		"120.13", "1534.56", "0.1234", "0.0432", "800",
	}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("record = %v, want %v", rows[1], want)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("empty CSV rows = %v, want header only", rows)
	}
}
