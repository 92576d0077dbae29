package analyzer

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"sample-organizer/internal/shared"
)

// csvHeader is the exact column contract of the analysis CSV. Downstream
// notebooks key on these names; do not rename or reorder.
var csvHeader = []string{
	"filename", "category", "pack", "sample_name",
	"bpm_from_name", "key_from_name",
	"computed_bpm", "brightness", "loudness_rms",
	"zero_crossing_rate", "spectral_bandwidth",
}

// SampleRecord is one row of the analysis CSV.
type SampleRecord struct {
	Filename    string
	Category    string
	Pack        string
	SampleName  string
	BPMFromName string
	KeyFromName string
	Features    shared.FeatureValues
}

func (r *SampleRecord) row() []string {
	return []string{
		r.Filename,
		r.Category,
		r.Pack,
		r.SampleName,
		r.BPMFromName,
		r.KeyFromName,
		formatRounded(r.Features.ComputedBPM, 2),
		formatRounded(r.Features.Brightness, 2),
		formatRounded(r.Features.LoudnessRMS, 4),
		formatRounded(r.Features.ZeroCrossingRate, 4),
		formatRounded(r.Features.SpectralBandwidth, 2),
	}
}

func formatRounded(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', -1, 64)
}

// WriteCSV writes all records to path, header included, replacing any
// existing file.
func WriteCSV(path string, records []SampleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range records {
		if err := w.Write(records[i].row()); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
