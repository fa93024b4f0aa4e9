package parser

import "github.com/equinoxial2/vps/internal/domain/models"

// Raw vocabularies are written the way a French or English speaker
// would actually type the words, accents included. buildVocabulary and
// buildSet normalize the keys once at package init, so parse-time
// lookups only ever see canonical forms.

var rawSideKeywords = map[string]models.Side{
	"buy":      models.SideBuy,
	"sell":     models.SideSell,
	"acheter":  models.SideBuy,
	"achete":   models.SideBuy,
	"achète":   models.SideBuy,
	"achetez":  models.SideBuy,
	"achetons": models.SideBuy,
	"vendre":   models.SideSell,
	"vend":     models.SideSell,
	"vends":    models.SideSell,
	"vendez":   models.SideSell,
}

var rawOrderTypeKeywords = map[string]models.OrderType{
	"market": models.OrderTypeMarket,
	"marche": models.OrderTypeMarket,
	"marché": models.OrderTypeMarket,
	"limit":  models.OrderTypeLimit,
	"limite": models.OrderTypeLimit,
}

// Trailing markers double as callback-rate markers: "trailing 0,5"
// reads as a trailing order with a 0.5% callback rate.
var rawTrailingKeywords = []string{"trailing", "suiveur"}

var rawCallbackKeywords = []string{"callback", "taux_callback"}

var rawActivationKeywords = []string{"activation", "trigger", "declenchement", "déclenchement"}

var (
	sideKeywords      = buildVocabulary(rawSideKeywords)
	orderTypeKeywords = buildVocabulary(rawOrderTypeKeywords)

	trailingKeywords   = buildSet(rawTrailingKeywords)
	callbackKeywords   = buildSet(append(append([]string(nil), rawCallbackKeywords...), rawTrailingKeywords...))
	activationKeywords = buildSet(rawActivationKeywords)

	// commandKeywords is the exclusion set: a token whose normalized
	// form appears here is never eligible as part of the instrument
	// symbol.
	commandKeywords = buildExclusionSet()
)

func buildVocabulary[T ~string](raw map[string]T) map[string]T {
	out := make(map[string]T, len(raw))
	for spelling, tag := range raw {
		out[NormalizeKeyword(spelling)] = tag
	}
	return out
}

func buildSet(raw []string) map[string]struct{} {
	out := make(map[string]struct{}, len(raw))
	for _, spelling := range raw {
		out[NormalizeKeyword(spelling)] = struct{}{}
	}
	return out
}

func buildExclusionSet() map[string]struct{} {
	out := make(map[string]struct{})
	for k := range sideKeywords {
		out[k] = struct{}{}
	}
	for k := range orderTypeKeywords {
		out[k] = struct{}{}
	}
	for k := range trailingKeywords {
		out[k] = struct{}{}
	}
	for k := range callbackKeywords {
		out[k] = struct{}{}
	}
	for k := range activationKeywords {
		out[k] = struct{}{}
	}
	return out
}

// detectSide returns the tag of the first side keyword in the command,
// scanning left to right.
func detectSide(keywordTokens []string) (models.Side, bool) {
	for _, tok := range keywordTokens {
		if side, ok := sideKeywords[tok]; ok {
			return side, true
		}
	}
	return "", false
}

// detectOrderType returns TRAILING_STOP_MARKET when any trailing marker
// is present, otherwise the first order-type keyword, otherwise MARKET.
func detectOrderType(keywordTokens []string) models.OrderType {
	for _, tok := range keywordTokens {
		if _, ok := trailingKeywords[tok]; ok {
			return models.OrderTypeTrailingStopMarket
		}
	}
	for _, tok := range keywordTokens {
		if orderType, ok := orderTypeKeywords[tok]; ok {
			return orderType
		}
	}
	return models.OrderTypeMarket
}
