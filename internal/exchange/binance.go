// Package exchange submits normalized orders to the Binance spot API
// (or its testnet) over signed REST requests.
package exchange

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/equinoxial2/vps/config"
	"github.com/equinoxial2/vps/internal/domain/models"
)

// OrderAck is the subset of the exchange's order-placement response the
// rest of the service cares about.
type OrderAck struct {
	Symbol        string `json:"symbol"`
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Status        string `json:"status"`
	ExecutedQty   string `json:"executedQty,omitempty"`
	Price         string `json:"price,omitempty"`
}

// APIError is an error payload returned by the exchange, surfaced as a
// typed error so callers can map it onto a 502.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange error %d: %s", e.Code, e.Message)
}

// ErrMissingCredentials is returned when an order submission is
// attempted without an API key pair configured.
var ErrMissingCredentials = errors.New("exchange credentials are not configured")

// Client is the contract the order service expects from an exchange.
type Client interface {
	CreateOrder(ctx context.Context, order *models.ParsedOrder) (*OrderAck, error)
	Ping(ctx context.Context) error
}

type restClient struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds a Binance REST client from configuration. With
// testnet set, the testnet base URL is used and the testnet key pair is
// preferred, falling back to the main pair when absent.
func NewClient(cfg config.BinanceConfig, testnet bool) Client {
	key, secret, base := cfg.APIKey, cfg.APISecret, cfg.BaseURL
	if testnet {
		base = cfg.TestnetBaseURL
		if cfg.TestnetAPIKey != "" {
			key = cfg.TestnetAPIKey
		}
		if cfg.TestnetAPISecret != "" {
			secret = cfg.TestnetAPISecret
		}
	}
	return &restClient{
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     key,
		apiSecret:  secret,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

// sign computes the HMAC-SHA256 signature over the encoded query, as
// the exchange requires for authenticated endpoints.
func (c *restClient) sign(query string) string {
	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// orderParams maps a ParsedOrder onto the exchange's order parameters.
// Optional fields travel only when present, so a MARKET order never
// carries price or timeInForce.
func orderParams(order *models.ParsedOrder) url.Values {
	params := url.Values{}
	params.Set("symbol", order.Symbol)
	params.Set("side", string(order.Side))
	params.Set("type", string(order.OrderType))
	params.Set("quantity", order.Quantity)
	if order.OrderType == models.OrderTypeLimit {
		params.Set("price", order.Price)
		tif := order.TimeInForce
		if tif == "" {
			tif = "GTC"
		}
		params.Set("timeInForce", tif)
	}
	if order.CallbackRate != "" {
		params.Set("callbackRate", order.CallbackRate)
	}
	if order.ActivationPrice != "" {
		params.Set("activationPrice", order.ActivationPrice)
	}
	return params
}

// CreateOrder submits the order and returns the exchange's
// acknowledgement. Exchange-side rejections come back as *APIError.
func (c *restClient) CreateOrder(ctx context.Context, order *models.ParsedOrder) (*OrderAck, error) {
	if c.apiKey == "" || c.apiSecret == "" {
		return nil, ErrMissingCredentials
	}

	params := orderParams(order)
	params.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	query := params.Encode()
	query += "&signature=" + c.sign(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v3/order", strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-MBX-APIKEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read order response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			return nil, fmt.Errorf("exchange returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, apiErr
	}

	ack := &OrderAck{}
	if err := json.Unmarshal(body, ack); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return ack, nil
}

// Ping checks exchange connectivity through the unauthenticated ping
// endpoint.
func (c *restClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v3/ping", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping exchange: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("exchange ping returned status %d", resp.StatusCode)
	}
	return nil
}
