package parser

import (
	"strings"
	"testing"

	"github.com/equinoxial2/vps/internal/domain/models"
)

func TestParseTradeCommand_Success(t *testing.T) {
	cases := []struct {
		name    string
		command string
		want    models.ParsedOrder
	}{
		{
			name:    "french market buy with comma quantity",
			command: "Achète 0,1 BTCUSDT au marché",
			want: models.ParsedOrder{
				Side:       models.SideBuy,
				Symbol:     "BTCUSDT",
				OrderType:  models.OrderTypeMarket,
				Quantity:   "0.1",
				QuoteAsset: "USDT",
			},
		},
		{
			name:    "french limit sell with split symbol",
			command: "Vend 2 eth usdt limit à 2300",
			want: models.ParsedOrder{
				Side:        models.SideSell,
				Symbol:      "ETHUSDT",
				OrderType:   models.OrderTypeLimit,
				Quantity:    "2",
				Price:       "2300",
				TimeInForce: "GTC",
				QuoteAsset:  "USDT",
			},
		},
		{
			name:    "market defaults when no order type keyword",
			command: "achetez 5 sol usdt",
			want: models.ParsedOrder{
				Side:       models.SideBuy,
				Symbol:     "SOLUSDT",
				OrderType:  models.OrderTypeMarket,
				Quantity:   "5",
				QuoteAsset: "USDT",
			},
		},
		{
			name:    "short base asset pair",
			command: "achète 1 op usdt",
			want: models.ParsedOrder{
				Side:       models.SideBuy,
				Symbol:     "OPUSDT",
				OrderType:  models.OrderTypeMarket,
				Quantity:   "1",
				QuoteAsset: "USDT",
			},
		},
		{
			name:    "separator joined pair",
			command: "acheter 1 btc/usdt",
			want: models.ParsedOrder{
				Side:       models.SideBuy,
				Symbol:     "BTCUSDT",
				OrderType:  models.OrderTypeMarket,
				Quantity:   "1",
				QuoteAsset: "USDT",
			},
		},
		{
			name:    "trailing stop with callback and activation",
			command: "achetez 0,25 btcusdt trailing 0,5 activation 20000",
			want: models.ParsedOrder{
				Side:            models.SideBuy,
				Symbol:          "BTCUSDT",
				OrderType:       models.OrderTypeTrailingStopMarket,
				Quantity:        "0.25",
				QuoteAsset:      "USDT",
				CallbackRate:    "0.5",
				ActivationPrice: "20000",
			},
		},
		{
			name:    "french trailing keyword",
			command: "vendre 1 ethusdt suiveur 1,5",
			want: models.ParsedOrder{
				Side:         models.SideSell,
				Symbol:       "ETHUSDT",
				OrderType:    models.OrderTypeTrailingStopMarket,
				Quantity:     "1",
				QuoteAsset:   "USDT",
				CallbackRate: "1.5",
			},
		},
		{
			name:    "callback and activation on a market order",
			command: "vend 3 btcusdt callback 1.5 activation 25000",
			want: models.ParsedOrder{
				Side:            models.SideSell,
				Symbol:          "BTCUSDT",
				OrderType:       models.OrderTypeMarket,
				Quantity:        "3",
				QuoteAsset:      "USDT",
				CallbackRate:    "1.5",
				ActivationPrice: "25000",
			},
		},
		{
			name:    "english command",
			command: "buy 0.5 btcusdt limit 30000",
			want: models.ParsedOrder{
				Side:        models.SideBuy,
				Symbol:      "BTCUSDT",
				OrderType:   models.OrderTypeLimit,
				Quantity:    "0.5",
				Price:       "30000",
				TimeInForce: "GTC",
				QuoteAsset:  "USDT",
			},
		},
		{
			name:    "surrounding whitespace tolerated",
			command: "   achète \t 1  btcusdt \n ",
			want: models.ParsedOrder{
				Side:       models.SideBuy,
				Symbol:     "BTCUSDT",
				OrderType:  models.OrderTypeMarket,
				Quantity:   "1",
				QuoteAsset: "USDT",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTradeCommand(tc.command)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tc.want {
				t.Fatalf("ParseTradeCommand(%q)\n got  %+v\n want %+v", tc.command, *got, tc.want)
			}
		})
	}
}

func TestParseTradeCommand_Errors(t *testing.T) {
	cases := []struct {
		name     string
		command  string
		contains string
	}{
		{name: "no side keyword", command: "1 btcusdt market", contains: "buy or a sell"},
		{name: "no symbol", command: "achète 1 au marché", contains: "symbol"},
		{name: "no quantity", command: "acheter btcusdt", contains: "quantity"},
		{name: "negative quantity", command: "acheter -1 btcusdt", contains: "quantity"},
		{name: "zero quantity", command: "acheter 0 btcusdt", contains: "quantity"},
		{name: "limit without price", command: "vendre 2 eth usdt limit", contains: "price"},
		{name: "limit with negative price", command: "vendre 2 eth usdt limit -5", contains: "price"},
		{name: "negative callback", command: "acheter 1 btcusdt callback -1", contains: "callback"},
		{name: "negative activation", command: "acheter 1 btcusdt activation -100", contains: "activation"},
		{name: "trailing without callback rate", command: "acheter 1 btcusdt trailing", contains: "callback"},
		{name: "empty command", command: "", contains: "buy or a sell"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTradeCommand(tc.command)
			if err == nil {
				t.Fatalf("expected error, got %+v", got)
			}
			var parseErr *CommandParsingError
			if !errorsAs(err, &parseErr) {
				t.Fatalf("expected *CommandParsingError, got %T", err)
			}
			if !strings.Contains(parseErr.Message, tc.contains) {
				t.Fatalf("error %q does not mention %q", parseErr.Message, tc.contains)
			}
		})
	}
}

// errorsAs avoids importing errors just for one assertion helper.
func errorsAs(err error, target **CommandParsingError) bool {
	pe, ok := err.(*CommandParsingError)
	if ok {
		*target = pe
	}
	return ok
}

// A number claimed by one field must never satisfy another.
func TestParseTradeCommand_NoDoubleClaim(t *testing.T) {
	got, err := ParseTradeCommand("vend 2 ethusdt limit 2300 callback 1 activation 2400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := []string{got.Quantity, got.Price, got.CallbackRate, got.ActivationPrice}
	seen := map[string]bool{}
	for _, v := range values {
		if v == "" {
			t.Fatalf("expected all fields populated, got %+v", got)
		}
		if seen[v] {
			t.Fatalf("value %q assigned twice: %+v", v, got)
		}
		seen[v] = true
	}
	if got.Quantity != "2" || got.Price != "2300" || got.CallbackRate != "1" || got.ActivationPrice != "2400" {
		t.Fatalf("unexpected assignment: %+v", got)
	}
}

func TestParseTradeCommand_CallbackMarkerWithoutNumber(t *testing.T) {
	got, err := ParseTradeCommand("acheter 1 btcusdt callback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CallbackRate != "" {
		t.Fatalf("expected absent callback rate, got %q", got.CallbackRate)
	}
}

func TestParseTradeCommand_CanonicalDecimals(t *testing.T) {
	got, err := ParseTradeCommand("buy 0.250 btcusdt limit 2300.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Quantity != "0.25" {
		t.Fatalf("quantity not canonical: %q", got.Quantity)
	}
	if got.Price != "2300" {
		t.Fatalf("price not canonical: %q", got.Price)
	}
}
