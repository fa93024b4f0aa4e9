package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/equinoxial2/vps/internal/domain/models"
	"github.com/equinoxial2/vps/internal/exchange"
	"github.com/equinoxial2/vps/internal/parser"
	"github.com/equinoxial2/vps/internal/service"
)

type mockOrderService struct {
	placeRes   *service.PlacementResult
	placeErr   error
	previewRes *models.ParsedOrder
	previewErr error
	records    []models.OrderRecord
	recordsErr error

	gotCommand string
	gotTestnet bool
	gotLimit   int
}

func (m *mockOrderService) PlaceOrder(_ context.Context, command string, testnet bool) (*service.PlacementResult, error) {
	m.gotCommand = command
	m.gotTestnet = testnet
	return m.placeRes, m.placeErr
}

func (m *mockOrderService) PreviewOrder(command string) (*models.ParsedOrder, error) {
	m.gotCommand = command
	return m.previewRes, m.previewErr
}

func (m *mockOrderService) RecentOrders(limit int) ([]models.OrderRecord, error) {
	m.gotLimit = limit
	return m.records, m.recordsErr
}

var _ service.OrderService = (*mockOrderService)(nil)

func setupRouterWithMock(s service.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/orders", h.PlaceOrder)
	v1.POST("/orders/preview", h.PreviewOrder)
	v1.GET("/orders", h.ListOrders)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleResult() *service.PlacementResult {
	return &service.PlacementResult{
		Order: &models.ParsedOrder{
			Symbol:    "BTCUSDT",
			Side:      models.SideBuy,
			OrderType: models.OrderTypeMarket,
			Quantity:  "0.1",
		},
		Exchange: &exchange.OrderAck{Symbol: "BTCUSDT", OrderID: 42, Status: "FILLED"},
	}
}

func TestPlaceOrder_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockOrderService
		body   string
		status int
		assert func(t *testing.T, svc *mockOrderService, body []byte)
	}{
		{
			name:   "invalid json",
			svc:    &mockOrderService{},
			body:   "{not json",
			status: http.StatusBadRequest,
		},
		{
			name:   "empty command",
			svc:    &mockOrderService{},
			body:   `{"command": "   "}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "parse failure",
			svc:    &mockOrderService{placeErr: &parser.CommandParsingError{Message: "cannot find a quantity in the command"}},
			body:   `{"command": "achete btcusdt au marche"}`,
			status: http.StatusBadRequest,
			assert: func(t *testing.T, _ *mockOrderService, body []byte) {
				var resp map[string]any
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("invalid JSON body: %v", err)
				}
				if resp["message"] != "cannot find a quantity in the command" {
					t.Errorf("message = %q", resp["message"])
				}
			},
		},
		{
			name:   "exchange rejection",
			svc:    &mockOrderService{placeErr: &exchange.APIError{Code: -2010, Message: "insufficient balance"}},
			body:   `{"command": "achete 0,1 btcusdt au marche"}`,
			status: http.StatusBadGateway,
		},
		{
			name:   "missing credentials",
			svc:    &mockOrderService{placeErr: exchange.ErrMissingCredentials},
			body:   `{"command": "achete 0,1 btcusdt au marche"}`,
			status: http.StatusInternalServerError,
		},
		{
			name:   "success defaults to testnet",
			svc:    &mockOrderService{placeRes: sampleResult()},
			body:   `{"command": "Achète 0,1 BTCUSDT au marché"}`,
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockOrderService, body []byte) {
				if !svc.gotTestnet {
					t.Error("expected testnet to default to true")
				}
				if svc.gotCommand != "Achète 0,1 BTCUSDT au marché" {
					t.Errorf("command = %q", svc.gotCommand)
				}
				var resp map[string]any
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("invalid JSON body: %v", err)
				}
				if resp["status"] != "success" {
					t.Errorf("status = %v", resp["status"])
				}
			},
		},
		{
			name:   "explicit live trading",
			svc:    &mockOrderService{placeRes: sampleResult()},
			body:   `{"command": "sell 1 ethusdt market", "testnet": false}`,
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockOrderService, _ []byte) {
				if svc.gotTestnet {
					t.Error("expected testnet=false to be honored")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := postJSON(r, "/api/v1/orders", tc.body)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestPreviewOrder(t *testing.T) {
	parsed := &models.ParsedOrder{
		Symbol:      "BTCUSDT",
		Side:        models.SideBuy,
		OrderType:   models.OrderTypeLimit,
		Quantity:    "0.5",
		Price:       "30000",
		TimeInForce: "GTC",
		QuoteAsset:  "USDT",
	}
	svc := &mockOrderService{previewRes: parsed}
	r := setupRouterWithMock(svc)

	w := postJSON(r, "/api/v1/orders/preview", `{"command": "achete 0,5 btcusdt limite 30000"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ParsedOrder models.ParsedOrder `json:"parsed_order"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Data.ParsedOrder != *parsed {
		t.Errorf("order = %+v, want %+v", resp.Data.ParsedOrder, *parsed)
	}
}

func TestPreviewOrder_ParseFailure(t *testing.T) {
	svc := &mockOrderService{previewErr: &parser.CommandParsingError{Message: "cannot tell whether the command is a buy or a sell"}}
	r := setupRouterWithMock(svc)

	w := postJSON(r, "/api/v1/orders/preview", `{"command": "0,1 btcusdt"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListOrders(t *testing.T) {
	cases := []struct {
		name      string
		svc       *mockOrderService
		query     string
		status    int
		wantLimit int
		wantCount int
	}{
		{
			name: "default limit",
			svc: &mockOrderService{records: []models.OrderRecord{
				{ID: 1, Command: "achete 0,1 btcusdt au marche", Symbol: "BTCUSDT"},
				{ID: 2, Command: "sell 1 ethusdt market", Symbol: "ETHUSDT"},
			}},
			query:     "/api/v1/orders",
			status:    http.StatusOK,
			wantLimit: 0,
			wantCount: 2,
		},
		{
			name:      "explicit limit",
			svc:       &mockOrderService{records: nil},
			query:     "/api/v1/orders?limit=5",
			status:    http.StatusOK,
			wantLimit: 5,
			wantCount: 0,
		},
		{
			name:   "invalid limit",
			svc:    &mockOrderService{},
			query:  "/api/v1/orders?limit=abc",
			status: http.StatusBadRequest,
		},
		{
			name:   "repository failure",
			svc:    &mockOrderService{recordsErr: errSQLDown},
			query:  "/api/v1/orders",
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if tc.status != http.StatusOK {
				return
			}
			if tc.svc.gotLimit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", tc.svc.gotLimit, tc.wantLimit)
			}
			var resp struct {
				Orders []json.RawMessage `json:"orders"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if len(resp.Orders) != tc.wantCount {
				t.Errorf("orders = %d, want %d", len(resp.Orders), tc.wantCount)
			}
		})
	}
}

var errSQLDown = &mockError{"connection refused"}

type mockError struct{ msg string }

func (e *mockError) Error() string { return e.msg }
