package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var hyphenRuns = regexp.MustCompile(`-+`)

// Slugify derives a URL-safe slug from a title. Diacritics are stripped,
// letters lowercased, and any run of other characters collapses to a single
// hyphen. Uniqueness remains the CMS's responsibility.
func Slugify(title string) string {
	s, _, err := transform.String(diacriticStripper, title)
	if err != nil {
		s = title
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune('-')
		}
	}

	return strings.Trim(hyphenRuns.ReplaceAllString(b.String(), "-"), "-")
}
