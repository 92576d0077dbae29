package analyzer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Canonical metadata tokens as they appear in organized filenames. The
// synthesizer writes sharps as "s", so both accidental spellings match.
var (
	reBPMToken = regexp.MustCompile(`(?i)^\d{2,3}bpm$`)
	reKeyToken = regexp.MustCompile(`(?i)^[a-g][#sb]?(?:maj|min)?$`)
)

// Generic lead segments some libraries carry that name no pack.
var genericLeadSegments = map[string]bool{
	"SAMPLES":   true,
	"ONE-SHOTS": true,
}

// ParseStructuredName splits a canonical organized filename back into its
// pack and sample name: the stem is split on "_", metadata tokens are
// dropped, a generic lead segment is skipped, the first remaining segment
// is the pack and the rest join into the sample name. Fields that cannot
// be recovered come back as "Unknown".
func ParseStructuredName(filename string) (pack, sampleName string) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	var kept []string
	for _, part := range strings.Split(stem, "_") {
		if part == "" || reBPMToken.MatchString(part) || reKeyToken.MatchString(part) {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) > 1 && genericLeadSegments[strings.ToUpper(kept[0])] {
		kept = kept[1:]
	}

	if len(kept) == 0 {
		return "Unknown", "Unknown"
	}
	if len(kept) == 1 {
		return kept[0], "Unknown"
	}
	return kept[0], strings.Join(kept[1:], " ")
}
