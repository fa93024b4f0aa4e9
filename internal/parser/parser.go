// Package parser converts free-form, accent-and-synonym-tolerant trade
// commands (French or English) into normalized order descriptors ready
// for submission to the exchange API.
//
// Parsing runs as a sequence of independent passes: whitespace
// tokenization, keyword normalization, symbol extraction, positional
// numeric extraction, and keyword-anchored attribute assignment. The
// vocabulary tables are built once at init and never mutated, so
// ParseTradeCommand is safe for unrestricted concurrent use; it does no
// I/O and holds no state between calls.
package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/equinoxial2/vps/internal/domain/models"
)

// CommandParsingError reports a command that could not be understood.
// The message is safe to surface to the end user verbatim.
type CommandParsingError struct {
	Message string
}

func (e *CommandParsingError) Error() string { return e.Message }

func newParseError(msg string) *CommandParsingError {
	return &CommandParsingError{Message: msg}
}

// claimNext claims and returns the first unclaimed number whose source
// token position is at or after minPos. The claimed set is keyed by
// index into the numbers slice, guaranteeing no number ever serves two
// fields within one parse.
func claimNext(numbers []numericToken, claimed map[int]bool, minPos int) (numericToken, bool) {
	for i, n := range numbers {
		if claimed[i] || n.pos < minPos {
			continue
		}
		claimed[i] = true
		return n, true
	}
	return numericToken{}, false
}

// claimAfterKeyword looks for the first token whose normalized form is
// in the marker vocabulary, then claims the first unclaimed number at
// or after that token's position. Absence of either the marker or a
// qualifying number leaves the attribute unset.
func claimAfterKeyword(keywordTokens []string, markers map[string]struct{}, numbers []numericToken, claimed map[int]bool) (decimal.Decimal, bool) {
	for pos, kw := range keywordTokens {
		if _, ok := markers[kw]; !ok {
			continue
		}
		if n, ok := claimNext(numbers, claimed, pos); ok {
			return n.value, true
		}
		return decimal.Decimal{}, false
	}
	return decimal.Decimal{}, false
}

// ParseTradeCommand parses one natural-language trading instruction
// into a ParsedOrder, or returns a *CommandParsingError describing the
// first rule the command violated. It never returns a partially filled
// order.
func ParseTradeCommand(command string) (*models.ParsedOrder, error) {
	rawTokens := strings.Fields(command)
	keywordTokens := make([]string, len(rawTokens))
	for i, tok := range rawTokens {
		keywordTokens[i] = NormalizeKeyword(tok)
	}

	side, ok := detectSide(keywordTokens)
	if !ok {
		return nil, newParseError("cannot tell whether the command is a buy or a sell")
	}

	orderType := detectOrderType(keywordTokens)

	symbol := extractSymbol(rawTokens, keywordTokens)
	if symbol == "" {
		return nil, newParseError("cannot find an instrument symbol in the command")
	}

	numbers := extractNumbers(rawTokens)
	if len(numbers) == 0 {
		return nil, newParseError("cannot find a quantity in the command")
	}
	claimed := make(map[int]bool, len(numbers))

	quantity, _ := claimNext(numbers, claimed, 0)
	if quantity.value.Sign() <= 0 {
		return nil, newParseError("quantity must be greater than zero")
	}

	order := &models.ParsedOrder{
		Side:       side,
		Symbol:     symbol,
		OrderType:  orderType,
		Quantity:   quantity.value.String(),
		QuoteAsset: DetectQuoteAsset(symbol),
	}

	if orderType == models.OrderTypeLimit {
		price, ok := claimNext(numbers, claimed, 0)
		if !ok {
			return nil, newParseError("a limit order needs a price after the quantity")
		}
		if price.value.Sign() <= 0 {
			return nil, newParseError("price must be greater than zero")
		}
		order.Price = price.value.String()
		order.TimeInForce = "GTC"
	}

	if callback, ok := claimAfterKeyword(keywordTokens, callbackKeywords, numbers, claimed); ok {
		if callback.Sign() <= 0 {
			return nil, newParseError("callback rate must be greater than zero")
		}
		order.CallbackRate = callback.String()
	}
	if orderType == models.OrderTypeTrailingStopMarket && order.CallbackRate == "" {
		return nil, newParseError("a trailing stop order needs a callback rate")
	}

	if activation, ok := claimAfterKeyword(keywordTokens, activationKeywords, numbers, claimed); ok {
		if activation.Sign() <= 0 {
			return nil, newParseError("activation price must be greater than zero")
		}
		order.ActivationPrice = activation.String()
	}

	return order, nil
}
