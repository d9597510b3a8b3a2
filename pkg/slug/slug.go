package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and drops combining marks, so "café" becomes "cafe".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts arbitrary text into a URL-safe slug: diacritics stripped,
// lowercased, whitespace runs collapsed to single hyphens, anything outside
// [a-z0-9_-] dropped, repeated hyphens collapsed, no leading/trailing hyphen.
// Total over all inputs; the empty string maps to itself.
func Make(text string) string {
	flat, _, err := transform.String(deaccent, text)
	if err != nil {
		// transform only fails on malformed UTF-8; slugify the raw input instead
		flat = text
	}
	flat = strings.ToLower(strings.TrimSpace(flat))

	var b strings.Builder
	b.Grow(len(flat))
	pendingHyphen := false
	for _, r := range flat {
		switch {
		case unicode.IsSpace(r) || r == '-':
			if b.Len() > 0 {
				pendingHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
