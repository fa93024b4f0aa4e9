package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes diacritics by decomposing to NFKD and dropping
// every combining mark, so "marché" becomes "marche" and "Achète"
// becomes "Achete". The transformer chain carries per-call state, so a
// fresh one is built on each invocation; the function stays safe for
// concurrent use.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeKeyword reduces a raw token to its canonical vocabulary
// form: accents stripped, lowercased, and every character outside
// [a-z0-9] removed. It is total (empty in, empty out) and idempotent.
func NormalizeKeyword(token string) string {
	stripped := strings.ToLower(StripAccents(token))
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cleanSymbolToken strips accents and keeps only ASCII letters and
// digits, preserving case. "btc/usdt" → "btcusdt".
func cleanSymbolToken(token string) string {
	stripped := StripAccents(token)
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
