package parser

import (
	"sort"
	"strings"
)

// knownQuoteAssets is the closed set of quote currencies a symbol may
// end with. A candidate that does not end with one of these is not an
// instrument pair.
var knownQuoteAssets = []string{
	"USDT", "USDC", "BUSD", "TUSD", "FDUSD", "DAI", "BTC", "ETH",
	"BNB", "BIDR", "EUR", "GBP", "TRY", "BRL", "AUD", "PAXG",
}

// quoteAssetsByLength holds the same set sorted longest first, so that
// suffix detection prefers "USDT" over any shorter colliding suffix.
var quoteAssetsByLength = func() []string {
	out := append([]string(nil), knownQuoteAssets...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}()

// isValidSymbolCandidate accepts an uppercase cleaned token (or token
// pair) as an instrument symbol when it is long enough to hold a base
// asset plus a known quote-asset suffix.
func isValidSymbolCandidate(candidate string) bool {
	if len(candidate) < 5 {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if !isAlnumByte(candidate[i]) {
			return false
		}
	}
	for _, quote := range knownQuoteAssets {
		if strings.HasSuffix(candidate, quote) {
			return true
		}
	}
	return false
}

// DetectQuoteAsset returns the longest known quote-asset suffix of the
// symbol, or "" when none matches.
func DetectQuoteAsset(symbol string) string {
	for _, quote := range quoteAssetsByLength {
		if strings.HasSuffix(symbol, quote) {
			return quote
		}
	}
	return ""
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

func isAlnumByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// extractSymbol finds the traded instrument pair among the raw tokens.
//
// Pass 1 considers each cleaned token on its own; pass 2, reached only
// when pass 1 found nothing, considers adjacent cleaned pairs so that
// "btc usdt" and "btc/usdt" both resolve to BTCUSDT. Both passes skip
// vocabulary keywords and tokens without letters, and the first
// qualifying candidate wins.
func extractSymbol(rawTokens, keywordTokens []string) string {
	cleaned := make([]string, len(rawTokens))
	for i, tok := range rawTokens {
		cleaned[i] = cleanSymbolToken(tok)
	}

	for i, c := range cleaned {
		if c == "" {
			continue
		}
		if _, ok := commandKeywords[keywordTokens[i]]; ok {
			continue
		}
		if !hasLetter(c) {
			continue
		}
		candidate := strings.ToUpper(c)
		if isValidSymbolCandidate(candidate) {
			return candidate
		}
	}

	for i := 0; i+1 < len(cleaned); i++ {
		first, second := cleaned[i], cleaned[i+1]
		if first == "" || second == "" {
			continue
		}
		if _, ok := commandKeywords[keywordTokens[i]]; ok {
			continue
		}
		if _, ok := commandKeywords[keywordTokens[i+1]]; ok {
			continue
		}
		if !hasLetter(first) || !hasLetter(second) {
			continue
		}
		candidate := strings.ToUpper(first + second)
		if isValidSymbolCandidate(candidate) {
			return candidate
		}
	}

	return ""
}
