// Package slug derives URL-safe identifiers from event titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
	edgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Make lowercases the input, strips everything that is not a word
// character, whitespace or hyphen, collapses runs of whitespace,
// underscores and hyphens into a single hyphen and trims hyphens from both
// ends. It is idempotent.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}
