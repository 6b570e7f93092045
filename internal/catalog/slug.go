package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify derives a stable quest id from a human-readable title.
//
// The transformation, in order: NFC normalization, lowercasing, apostrophe
// removal ("Raider's Toolkit" and "Raiders Toolkit" collide), removal of
// every character that is neither alphanumeric nor whitespace, trimming,
// and collapsing internal whitespace runs to a single underscore.
//
// Distinct titles can map to the same slug; the tier sorter logs such
// collisions and lets the later entry win.
func Slugify(title string) string {
	s := strings.ToLower(norm.NFC.String(title))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\'' || r == '’':
			// Apostrophes vanish without leaving a separator.
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "_")
}
