package metadata

import "strings"

// Synthesize composes the canonical destination filename from the
// extracted fields: non-empty parts joined by underscores, the original
// extension appended, spaces flattened to underscores and '#' replaced by
// 's' for filesystem safety. Inputs are assumed to already have their
// metadata tokens stripped; no duplication check happens here.
func Synthesize(packName, sampleName, bpm, key, extension string) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{packName, sampleName, bpm, key} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	filename := strings.Join(parts, "_") + extension
	filename = strings.ReplaceAll(filename, " ", "_")
	return strings.ReplaceAll(filename, "#", "s")
}
