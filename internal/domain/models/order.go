package models

import "time"

// Side is the direction of an order, using the values the exchange API
// expects verbatim.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType identifies how an order executes, again using
// exchange-native values.
type OrderType string

const (
	OrderTypeMarket             OrderType = "MARKET"
	OrderTypeLimit              OrderType = "LIMIT"
	OrderTypeTrailingStopMarket OrderType = "TRAILING_STOP_MARKET"
)

// ParsedOrder is the normalized result of parsing one free-form trade
// command. It is built once per successful parse and never mutated.
//
// Every numeric field is a canonical decimal string: no trailing zeros,
// no trailing decimal point, no exponent. Optional fields are empty
// strings when absent.
//
// Invariants:
//   - Side, Symbol, OrderType and Quantity are always set.
//   - Price and TimeInForce ("GTC") are set iff OrderType is LIMIT.
//   - QuoteAsset is the recognized suffix of Symbol, or empty.
//   - CallbackRate is always set on TRAILING_STOP_MARKET orders.
type ParsedOrder struct {
	Side            Side      `json:"side" example:"BUY"`
	Symbol          string    `json:"symbol" example:"BTCUSDT"`
	OrderType       OrderType `json:"order_type" example:"MARKET"`
	Quantity        string    `json:"quantity" example:"0.1"`
	Price           string    `json:"price,omitempty" example:"23000"`
	TimeInForce     string    `json:"time_in_force,omitempty" example:"GTC"`
	QuoteAsset      string    `json:"quote_asset,omitempty" example:"USDT"`
	CallbackRate    string    `json:"callback_rate,omitempty" example:"0.5"`
	ActivationPrice string    `json:"activation_price,omitempty" example:"20000"`
}

// OrderRecord is one row of the submitted-order audit log kept in
// Postgres. It pairs the raw command with the normalized order and the
// identifier the exchange assigned.
type OrderRecord struct {
	ID              int64
	Command         string
	Symbol          string
	Side            string
	OrderType       string
	Quantity        string
	Price           string
	CallbackRate    string
	ActivationPrice string
	Testnet         bool
	ExchangeOrderID string
	CreatedAt       time.Time
}
