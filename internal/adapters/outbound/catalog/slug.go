package catalog

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Slug derives a guideline ID from a brand name by splitting camel case and
// separators: "GitHub" -> "git-hub", "Acme Corp" -> "acme-corp".
func Slug(name string) string {
	var words []string
	for _, w := range camelcase.Split(strings.TrimSpace(name)) {
		w = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, w)
		if w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, "-")
}
