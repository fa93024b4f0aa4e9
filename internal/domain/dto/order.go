package dto

import (
	"github.com/equinoxial2/vps/internal/domain/models"
	"github.com/equinoxial2/vps/internal/exchange"
)

// CommandRequest is the body of POST /api/v1/orders and
// POST /api/v1/orders/preview.
//
// Testnet defaults to true when omitted: sending real orders must be an
// explicit choice.
type CommandRequest struct {
	Command string `json:"command" binding:"required" example:"Achète 0,1 BTCUSDT au marché"`
	Testnet *bool  `json:"testnet,omitempty" example:"true"`
}

// UseTestnet resolves the testnet flag with its default.
func (r CommandRequest) UseTestnet() bool {
	if r.Testnet == nil {
		return true
	}
	return *r.Testnet
}

// OrderData carries the normalized order and, when the order was
// actually submitted, the exchange's acknowledgement.
type OrderData struct {
	ParsedOrder      models.ParsedOrder `json:"parsed_order"`
	ExchangeResponse *exchange.OrderAck `json:"exchange_response,omitempty"`
}

// OrderResponse is the success envelope of the order endpoints,
// mirroring the status/message/data shape of every response in this
// API.
type OrderResponse struct {
	Status  string     `json:"status" example:"success"`
	Message string     `json:"message" example:"order submitted"`
	Data    *OrderData `json:"data,omitempty"`
}

// NewOrderResponse builds a success envelope.
func NewOrderResponse(message string, parsed models.ParsedOrder, ack *exchange.OrderAck) OrderResponse {
	return OrderResponse{
		Status:  "success",
		Message: message,
		Data: &OrderData{
			ParsedOrder:      parsed,
			ExchangeResponse: ack,
		},
	}
}

// OrderListResponse is the envelope of GET /api/v1/orders.
type OrderListResponse struct {
	Orders []OrderRecordResponse `json:"orders"`
}

// OrderRecordResponse is one audit-log entry as exposed by the API.
type OrderRecordResponse struct {
	ID              int64  `json:"id"`
	Command         string `json:"command"`
	Symbol          string `json:"symbol"`
	Side            string `json:"side"`
	OrderType       string `json:"order_type"`
	Quantity        string `json:"quantity"`
	Price           string `json:"price,omitempty"`
	CallbackRate    string `json:"callback_rate,omitempty"`
	ActivationPrice string `json:"activation_price,omitempty"`
	Testnet         bool   `json:"testnet"`
	ExchangeOrderID string `json:"exchange_order_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// NewOrderRecordResponse maps a stored audit record onto the API shape.
func NewOrderRecordResponse(rec models.OrderRecord) OrderRecordResponse {
	return OrderRecordResponse{
		ID:              rec.ID,
		Command:         rec.Command,
		Symbol:          rec.Symbol,
		Side:            rec.Side,
		OrderType:       rec.OrderType,
		Quantity:        rec.Quantity,
		Price:           rec.Price,
		CallbackRate:    rec.CallbackRate,
		ActivationPrice: rec.ActivationPrice,
		Testnet:         rec.Testnet,
		ExchangeOrderID: rec.ExchangeOrderID,
		CreatedAt:       rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
