package shared

// SampleMetadata holds everything inferred about one source file. It is
// computed once per file, consumed by the synthesizer/resolver, and
// discarded — nothing here is persisted across files.
type SampleMetadata struct {
	PackName   string // first path segment under the source root, cleaned; "UnknownPack" if absent
	SampleName string // cleaned base filename with matched BPM/key tokens removed
	BPM        string // canonical "<2-3 digits>bpm"; "" when no pattern matched
	Key        string // "<note><accidental?><mode?>", mode in {"", "min", "maj"}; "" when unmatched
	Category   string // exactly one taxonomy label, never empty ("Uncategorized" fallback)
	Extension  string // original extension, case preserved, with leading dot
}

// FeatureValues are the acoustic descriptors computed for one decoded file.
type FeatureValues struct {
	ComputedBPM       float64
	Brightness        float64 // mean spectral centroid, Hz
	SpectralBandwidth float64 // Hz
	ZeroCrossingRate  float64
	LoudnessRMS       float64
}

// OrganizeStats tracks aggregate counters for one organize run.
type OrganizeStats struct {
	MovedCount   int
	RenamedCount int // subset of MovedCount that needed a collision suffix
	SkippedCount int
	FailedCount  int
}

// AnalysisStats tracks aggregate counters for one analyze run.
type AnalysisStats struct {
	ProcessedCount int
	FailedCount    int
}
