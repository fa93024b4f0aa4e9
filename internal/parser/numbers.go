package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// numericToken pairs a parsed decimal with the index of the source
// token it came from. The position is what lets keyword-anchored
// attributes (callback rate, activation price) claim the first number
// appearing at or after their marker token.
type numericToken struct {
	pos   int
	value decimal.Decimal
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// numberLiterals finds integer and decimal literals inside one token.
// A literal may carry a sign and use '.' or ',' as the decimal
// separator, and must not touch an alphanumeric neighbour on either
// side: the "2" in "btc2usdt" is part of a symbol, not a quantity.
// When only the fractional part is glued to a letter ("2,5x"), the
// integer part still counts, the way a backtracking matcher would
// degrade the match.
func numberLiterals(s string) []string {
	var out []string
	i := 0
	for i < len(s) {
		c := s[i]
		signed := (c == '+' || c == '-') && i+1 < len(s) && isDigit(s[i+1])
		if !isDigit(c) && !signed {
			i++
			continue
		}
		start := i
		if start > 0 && isAlnumByte(s[start-1]) {
			// Glued to a preceding letter or digit. A signed start may
			// still yield a bare-digit match one position later.
			i++
			continue
		}
		j := start
		if signed {
			j++
		}
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		intEnd := j
		if j < len(s) && (s[j] == '.' || s[j] == ',') && j+1 < len(s) && isDigit(s[j+1]) {
			k := j + 1
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k == len(s) || !isAlnumByte(s[k]) {
				out = append(out, s[start:k])
				i = k
				continue
			}
			// Fraction runs into a letter or digit; fall back to the
			// integer part alone.
		}
		if intEnd < len(s) && isAlnumByte(s[intEnd]) {
			i = intEnd
			continue
		}
		out = append(out, s[start:intEnd])
		i = intEnd
	}
	return out
}

// extractNumbers scans every token in order and returns each numeric
// literal it finds, with commas normalized to dots, preserving source
// token positions. Malformed literals are skipped silently.
func extractNumbers(tokens []string) []numericToken {
	var out []numericToken
	for pos, tok := range tokens {
		for _, lit := range numberLiterals(tok) {
			value, err := decimal.NewFromString(strings.ReplaceAll(lit, ",", "."))
			if err != nil {
				continue
			}
			out = append(out, numericToken{pos: pos, value: value})
		}
	}
	return out
}
