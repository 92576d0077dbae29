package metadata

import (
	"regexp"
	"strings"
)

var (
	reNoiseChars = regexp.MustCompile(`[@!()]`)
	reSpaceRuns  = regexp.MustCompile(`\s+`)
	sepToSpace   = strings.NewReplacer("_", " ", "-", " ")
)

// CleanName removes structural noise from a free-text name: the literal
// characters @ ! ( ) are dropped, underscores and hyphens become spaces,
// whitespace runs collapse to one space. Idempotent.
func CleanName(name string) string {
	name = reNoiseChars.ReplaceAllString(name, "")
	name = sepToSpace.Replace(name)
	name = reSpaceRuns.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
