package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/equinoxial2/vps/config"
	"github.com/equinoxial2/vps/internal/api"
	"github.com/equinoxial2/vps/internal/exchange"
	"github.com/equinoxial2/vps/internal/service"
	"github.com/equinoxial2/vps/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (OrderRepository).
//   - Wires the exchange client factory from the Binance configuration.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	repo := storage.NewOrderRepository(db)

	// Initialize service layer (parsing, submission, audit logging)
	svc := service.NewOrderService(NewExchangeFactory(cfg.Binance), repo)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

// NewExchangeFactory builds the per-request exchange client factory.
// A fresh client per submission keeps the testnet/live choice a
// property of the request rather than of the process.
func NewExchangeFactory(cfg config.BinanceConfig) service.ClientFactory {
	return func(testnet bool) exchange.Client {
		return exchange.NewClient(cfg, testnet)
	}
}
