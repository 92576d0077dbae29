package metadata

import "strings"

// The closed category taxonomy. Classify never returns anything outside
// this set.
const (
	CategoryMIDI            = "MIDI"
	CategoryStems           = "Stems"
	CategoryFX              = "Sound Effects (FX)"
	CategoryAmbience        = "Ambience"
	CategoryDrums           = "Drums"
	CategoryDrumLoops       = "Drum Loops"
	CategoryPercussion      = "Percussion"
	CategoryPercussionLoops = "Percussion Loops"
	CategoryMelodicOneShots = "Melodic One-Shots"
	CategoryMelodicLoops    = "Melodic Loops"
	CategoryLoops           = "Loops"
	CategoryUncategorized   = "Uncategorized"
)

// Keyword sets per instrument family. Membership is a case-insensitive
// substring test against the full path, so a keyword anywhere in an
// ancestor folder qualifies a file.
var (
	drumKeywords       = []string{"kick", "bd", "snare", "sd", "hat", "hh", "clap", "808", "tom", "cymbal", "cym", "ride", "crash"}
	percussionKeywords = []string{"perc", "shaker", "tamb", "conga", "bongo", "clave", "rim", "block", "timbale"}
	fxKeywords         = []string{"fx", "sfx", "riser", "fall", "downer", "whoosh", "impact", "hit", "transition", "sweep", "braam", "zap"}
	melodicKeywords    = []string{"bass", "synth", "pad", "lead", "pluck", "keys", "piano", "guitar", "strings", "vox", "vocal", "chord", "arp"}
	ambienceKeywords   = []string{"ambience", "amb", "drone", "texture"}
)

// CategoryRule maps a keyword set to a category label, with an alternate
// label for loop material when LoopLabel is set.
type CategoryRule struct {
	Name      string
	Keywords  []string
	Label     string
	LoopLabel string
}

// categoryRules is evaluated in order; the first matching rule wins. The
// ordering is a deliberate precedence: FX and Ambience outrank the
// instrument families because sound-design keywords are a more specific
// signal than an incidental instrument word. Do not reorder.
var categoryRules = []CategoryRule{
	{Name: "midi", Keywords: []string{"midi"}, Label: CategoryMIDI},
	{Name: "stems", Keywords: []string{"stem", "!stems"}, Label: CategoryStems},
	{Name: "fx", Keywords: fxKeywords, Label: CategoryFX},
	{Name: "ambience", Keywords: ambienceKeywords, Label: CategoryAmbience},
	{Name: "drums", Keywords: drumKeywords, Label: CategoryDrums, LoopLabel: CategoryDrumLoops},
	{Name: "percussion", Keywords: percussionKeywords, Label: CategoryPercussion, LoopLabel: CategoryPercussionLoops},
	{Name: "melodic", Keywords: melodicKeywords, Label: CategoryMelodicOneShots, LoopLabel: CategoryMelodicLoops},
}

// Classify maps a full file path to exactly one category label. It is
// pure and deterministic; unknown material falls back to Uncategorized.
func Classify(path string) string {
	pathLower := strings.ToLower(path)
	isLoop := strings.Contains(pathLower, "loop") || strings.Contains(pathLower, "bpm")

	for _, rule := range categoryRules {
		if !containsAny(pathLower, rule.Keywords) {
			continue
		}
		if isLoop && rule.LoopLabel != "" {
			return rule.LoopLabel
		}
		return rule.Label
	}

	if isLoop {
		return CategoryLoops
	}
	return CategoryUncategorized
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
