package metadata

import (
	"regexp"
	"strings"
)

// BPM patterns, in priority order: an explicit "bpm" suffix beats the
// positional underscore form. First match wins, no further pattern is tried.
var (
	reBPMSuffix     = regexp.MustCompile(`(?i)(\d{2,3})\s?bpm`)
	reBPMUnderscore = regexp.MustCompile(`_(\d{2,3})_`)
)

// Key pattern: note letter, optional accidental, optional mode word, as a
// whole word. Sample packs join tokens with underscores, so '_' counts as
// a word separator here (a plain \b treats it as a word character and
// would never fire on "..._Cmaj.wav"). The bare single-letter match is
// deliberately over-eager — a stray "A" in a path can read as a key — and
// callers rely on first-match-wins, so do not tighten it.
var reKey = regexp.MustCompile(`(?i)(?:^|[^0-9A-Za-z])([A-G][#b]?)\s?(min|maj|minor|major)?(?:[^0-9A-Za-z]|$)`)

// Parse extracts BPM and musical key candidates from a free-text path or
// filename. Empty strings mean "not found"; Parse never fails.
func Parse(text string) (bpm, key string) {
	if m := reBPMSuffix.FindStringSubmatch(text); m != nil {
		bpm = m[1] + "bpm"
	} else if m := reBPMUnderscore.FindStringSubmatch(text); m != nil {
		bpm = m[1] + "bpm"
	}

	if m := reKey.FindStringSubmatch(text); m != nil {
		key = m[1] + normalizeMode(m[2])
	}

	return bpm, key
}

// ParseWithFallback parses the filename first and fills any field still
// missing from the containing folder name. The fallback is field-by-field:
// a BPM missing from the filename is taken from the folder even when the
// key already resolved from the filename.
func ParseWithFallback(filename, folder string) (bpm, key string) {
	bpm, key = Parse(filename)
	folderBPM, folderKey := Parse(folder)
	if bpm == "" {
		bpm = folderBPM
	}
	if key == "" {
		key = folderKey
	}
	return bpm, key
}

func normalizeMode(mode string) string {
	switch strings.ToLower(mode) {
	case "minor", "min", "m":
		return "min"
	case "major", "maj":
		return "maj"
	default:
		return ""
	}
}

// Token-stripping patterns for sample names. The key pattern keeps its
// boundary characters in capture groups so the replacement can preserve
// the surrounding separators. The underscore forms rarely survive
// CleanName but are kept for callers that strip raw names.
var (
	reStripBPM           = regexp.MustCompile(`(?i)\d{2,3}\s?bpm`)
	reStripKey           = regexp.MustCompile(`(?i)(^|[^0-9A-Za-z])[A-G][#b]?\s?(?:min|maj|minor|major)?([^0-9A-Za-z]|$)`)
	reStripKeyUnderscore = regexp.MustCompile(`_\s?[A-G][#b]?\s?_`)
	reStripBPMUnderscore = regexp.MustCompile(`_\s?\d{2,3}\s?_`)
)

// StripTokens removes extracted metadata tokens from a sample name so the
// synthesized filename never repeats them. Only fields that were actually
// extracted are stripped.
func StripTokens(sampleName, bpm, key string) string {
	if bpm != "" {
		sampleName = strings.TrimSpace(reStripBPM.ReplaceAllString(sampleName, ""))
	}
	if key != "" {
		sampleName = strings.TrimSpace(reStripKey.ReplaceAllString(sampleName, "$1$2"))
	}
	sampleName = strings.TrimSpace(reStripKeyUnderscore.ReplaceAllString(sampleName, ""))
	sampleName = strings.TrimSpace(reStripBPMUnderscore.ReplaceAllString(sampleName, ""))
	return strings.TrimSpace(reSpaceRuns.ReplaceAllString(sampleName, " "))
}
