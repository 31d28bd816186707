package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// stripMarks removes combining diacritical marks after NFD decomposition,
// so "Sirinhaém" becomes "Sirinhaem".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize turns a free-text place name into a canonical lookup slug:
// lowercase, diacritics stripped, whitespace runs replaced by a hyphen.
// It is total and idempotent.
func Normalize(s string) string {
	return whitespaceRun.ReplaceAllString(stripMarks(strings.ToLower(s)), "-")
}

// NormalizeBeachForTides is the tide-domain variant of Normalize: the
// literal "praia-de-"/"praia-do-" prefixes are dropped before hyphenation,
// so an already-slugged "praia-de-boa-viagem" maps straight to "boa-viagem".
func NormalizeBeachForTides(s string) string {
	out := stripMarks(strings.ToLower(s))
	out = strings.ReplaceAll(out, "praia-de-", "")
	out = strings.ReplaceAll(out, "praia-do-", "")
	return whitespaceRun.ReplaceAllString(out, "-")
}
