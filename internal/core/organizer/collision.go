package organizer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveCollision returns candidatePath unchanged when nothing occupies it,
// otherwise the first free "<stem>_<n><ext>" with n counting up from 1
// against the original stem. Probing is not atomic against concurrent
// writers; the organizer is the only writer of its destination subtree.
func ResolveCollision(candidatePath string, exists func(string) bool) string {
	if !exists(candidatePath) {
		return candidatePath
	}

	ext := filepath.Ext(candidatePath)
	stem := strings.TrimSuffix(candidatePath, ext)
	for n := 1; ; n++ {
		probe := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if !exists(probe) {
			return probe
		}
	}
}
