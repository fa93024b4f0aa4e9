package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/equinoxial2/vps/internal/domain/dto"
	"github.com/equinoxial2/vps/internal/exchange"
	"github.com/equinoxial2/vps/internal/parser"
	"github.com/equinoxial2/vps/internal/service"
)

// Handler exposes the order endpoints over HTTP.
//
// Responsibilities:
//   - Validate and bind incoming JSON bodies / query parameters
//   - Delegate to the order service
//   - Map service errors onto HTTP statuses: parse failures become 400,
//     exchange rejections become 502, everything else 500
type Handler struct {
	svc service.OrderService
}

// NewHandler constructs a Handler around the order service.
func NewHandler(svc service.OrderService) *Handler {
	return &Handler{svc: svc}
}

// PlaceOrder handles POST /api/v1/orders.
//
// PlaceOrder godoc
// @Summary      Submit a natural-language trade command
// @Description  Parses a French or English trade command, submits the resulting order to the exchange and records it
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CommandRequest  true  "Command to execute"
// @Success      200      {object}  dto.OrderResponse      "Order submitted"
// @Failure      400      {object}  dto.ErrorResponse      "Unparseable command"
// @Failure      502      {object}  dto.ErrorResponse      "Exchange rejected the order"
// @Failure      500      {object}  dto.ErrorResponse      "Internal error"
// @Router       /api/v1/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	req, ok := bindCommand(c)
	if !ok {
		return
	}

	res, err := h.svc.PlaceOrder(c.Request.Context(), req.Command, req.UseTestnet())
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse("order submitted", *res.Order, res.Exchange))
}

// PreviewOrder handles POST /api/v1/orders/preview. It runs the parser
// only, so it works without exchange credentials and never places an
// order.
//
// PreviewOrder godoc
// @Summary      Parse a trade command without submitting it
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CommandRequest  true  "Command to parse"
// @Success      200      {object}  dto.OrderResponse   "Parsed order"
// @Failure      400      {object}  dto.ErrorResponse   "Unparseable command"
// @Router       /api/v1/orders/preview [post]
func (h *Handler) PreviewOrder(c *gin.Context) {
	req, ok := bindCommand(c)
	if !ok {
		return
	}

	parsed, err := h.svc.PreviewOrder(req.Command)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse("command parsed", *parsed, nil))
}

// ListOrders handles GET /api/v1/orders.
//
// ListOrders godoc
// @Summary      List recently submitted orders
// @Tags         orders
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows to return (default 20, max 100)"
// @Success      200    {object}  dto.OrderListResponse  "Recent orders"
// @Failure      500    {object}  dto.ErrorResponse      "Internal error"
// @Router       /api/v1/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid limit parameter", err))
			return
		}
		limit = v
	}

	records, err := h.svc.RecentOrders(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch orders", err))
		return
	}

	resp := dto.OrderListResponse{Orders: make([]dto.OrderRecordResponse, 0, len(records))}
	for _, rec := range records {
		resp.Orders = append(resp.Orders, dto.NewOrderRecordResponse(rec))
	}
	c.JSON(http.StatusOK, resp)
}

// bindCommand binds and validates the shared command request body.
func bindCommand(c *gin.Context) (dto.CommandRequest, bool) {
	var req dto.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return req, false
	}
	if strings.TrimSpace(req.Command) == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("command text cannot be empty", nil))
		return req, false
	}
	return req, true
}

// writeOrderError maps service errors onto HTTP statuses.
func (h *Handler) writeOrderError(c *gin.Context, err error) {
	var parseErr *parser.CommandParsingError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(parseErr.Message, nil))
		return
	}

	var apiErr *exchange.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("exchange rejected the order", apiErr))
		return
	}

	if errors.Is(err, exchange.ErrMissingCredentials) {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("exchange credentials are not configured", nil))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to submit order", err))
}
