package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/equinoxial2/vps/internal/domain/models"
	"github.com/equinoxial2/vps/internal/service"
)

// mockOrderServiceRouter implements service.OrderService for testing router wiring
type mockOrderServiceRouter struct {
	res *service.PlacementResult
}

func (m *mockOrderServiceRouter) PlaceOrder(_ context.Context, _ string, _ bool) (*service.PlacementResult, error) {
	return m.res, nil
}

func (m *mockOrderServiceRouter) PreviewOrder(_ string) (*models.ParsedOrder, error) {
	return m.res.Order, nil
}

func (m *mockOrderServiceRouter) RecentOrders(_ int) ([]models.OrderRecord, error) {
	return nil, nil
}

var _ service.OrderService = (*mockOrderServiceRouter)(nil)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockOrderServiceRouter{res: sampleResult()}
	h := NewHandler(svc)
	r := NewRouter(h)

	// Hit the preview route through the router created by NewRouter
	body := bytes.NewBufferString(`{"command": "achete 0,1 btcusdt au marche"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/preview", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", w.Code, w.Body.String())
	}

	// Request ID middleware should have stamped the response
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(NewHandler(&mockOrderServiceRouter{res: sampleResult()}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
