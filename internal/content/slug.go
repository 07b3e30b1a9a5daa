package content

import (
	"regexp"
	"strings"
)

var (
	slugInvalid   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[\s_-]+`)
)

// Slugify lowercases s and joins its words with single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
