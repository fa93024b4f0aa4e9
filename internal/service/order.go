package service

import (
	"context"
	"strconv"
	"time"

	"github.com/equinoxial2/vps/internal/domain/models"
	"github.com/equinoxial2/vps/internal/exchange"
	"github.com/equinoxial2/vps/internal/logger"
	"github.com/equinoxial2/vps/internal/parser"
	"github.com/equinoxial2/vps/internal/storage"
)

// PlacementResult pairs the normalized order with the exchange's
// acknowledgement.
type PlacementResult struct {
	Order    *models.ParsedOrder
	Exchange *exchange.OrderAck
}

// OrderService turns free-form trade commands into exchange orders.
// This decouples HTTP handlers (and the batch/console front-ends) from
// parsing, submission and persistence.
type OrderService interface {
	// PreviewOrder parses a command without submitting anything.
	PreviewOrder(command string) (*models.ParsedOrder, error)
	// PlaceOrder parses a command, submits the order and records it in
	// the audit log.
	PlaceOrder(ctx context.Context, command string, testnet bool) (*PlacementResult, error)
	// RecentOrders reads back the newest audit-log entries.
	RecentOrders(limit int) ([]models.OrderRecord, error)
}

// ClientFactory builds an exchange client for the requested network.
// Each call may return a fresh client; they are cheap and stateless.
type ClientFactory func(testnet bool) exchange.Client

type orderService struct {
	newClient ClientFactory
	repo      storage.OrderRepository
	now       func() time.Time
}

// NewOrderService wires the exchange client factory and the audit
// repository. The repository may be nil in parse-only setups (console,
// batch dry runs); submissions then simply go unrecorded.
func NewOrderService(newClient ClientFactory, repo storage.OrderRepository) OrderService {
	return &orderService{
		newClient: newClient,
		repo:      repo,
		now:       time.Now,
	}
}

func (s *orderService) PreviewOrder(command string) (*models.ParsedOrder, error) {
	return parser.ParseTradeCommand(command)
}

func (s *orderService) PlaceOrder(ctx context.Context, command string, testnet bool) (*PlacementResult, error) {
	parsed, err := parser.ParseTradeCommand(command)
	if err != nil {
		return nil, err
	}

	ack, err := s.newClient(testnet).CreateOrder(ctx, parsed)
	if err != nil {
		return nil, err
	}

	// The order is already placed at this point: an audit failure is
	// logged, not returned, so the caller still learns the outcome.
	if s.repo != nil {
		rec := &models.OrderRecord{
			Command:         command,
			Symbol:          parsed.Symbol,
			Side:            string(parsed.Side),
			OrderType:       string(parsed.OrderType),
			Quantity:        parsed.Quantity,
			Price:           parsed.Price,
			CallbackRate:    parsed.CallbackRate,
			ActivationPrice: parsed.ActivationPrice,
			Testnet:         testnet,
			ExchangeOrderID: strconv.FormatInt(ack.OrderID, 10),
			CreatedAt:       s.now().UTC(),
		}
		if err := s.repo.InsertOrder(rec); err != nil {
			logger.L().Error().Err(err).Str("symbol", parsed.Symbol).Msg("order audit insert failed")
		}
	}

	return &PlacementResult{Order: parsed, Exchange: ack}, nil
}

func (s *orderService) RecentOrders(limit int) ([]models.OrderRecord, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListRecent(limit)
}
