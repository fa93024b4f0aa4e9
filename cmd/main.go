package main

//
//  @title           vps trading API
//  @version         1.0
//  @description     Natural-language trade command parser and order gateway.
//  @termsOfService  https://github.com/equinoxial2/vps
//  @contact.name    API Support
//  @contact.url     https://github.com/equinoxial2/vps
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        orders
//  @tag.description Submit, preview and list natural-language trade orders
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/equinoxial2/vps/config"
	_ "github.com/equinoxial2/vps/docs" // swagger docs
	"github.com/equinoxial2/vps/internal/app"
	"github.com/equinoxial2/vps/internal/batch"
	"github.com/equinoxial2/vps/internal/logger"
	"github.com/equinoxial2/vps/internal/parser"
	"github.com/equinoxial2/vps/internal/service"
	"github.com/equinoxial2/vps/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runConsole reads trade commands from in, one per line, and writes
// the parsed order (as JSON) or the parse error to out. It never
// touches the exchange, so it is safe to play with.
func runConsole(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Type a trade command (empty line or Ctrl-D to quit):")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}

		order, err := parser.ParseTradeCommand(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		data, err := json.MarshalIndent(order, "", "  ")
		if err != nil {
			return fmt.Errorf("encode order: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}
	return scanner.Err()
}

// main is the entry point of the vps application.
//
// Modes (selected via --mode flag):
//   - api:     Starts the REST API that parses and submits trade commands.
//   - console: Reads commands from stdin and prints the parsed orders.
//   - batch:   Processes a file of commands, one per line.
//
// Flags:
//   - --mode:     Execution mode ("api", "console" or "batch"). Default: "api".
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --file:     Input file for batch mode. Default: "./commands.txt".
//   - --parallel: Concurrent submissions in batch mode (0=auto up to CPU, max 8).
//   - --live:     Send batch orders to the live exchange instead of the testnet.
//   - --dry-run:  Batch mode parses commands without submitting anything.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, console or batch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	file := flag.String("file", "./commands.txt", "Command file for batch mode")
	parallel := flag.Int("parallel", 0, "How many commands to submit concurrently (0=auto up to CPU, max 8)")
	live := flag.Bool("live", false, "Submit batch orders to the live exchange instead of the testnet")
	dryRun := flag.Bool("dry-run", false, "Parse batch commands without submitting them")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "console":
		// Console mode: parse commands interactively, no exchange access
		if err := runConsole(os.Stdin, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("console failed")
		}

	case "batch":
		// Batch mode: submit a file of commands through the service
		logger.L().Info().Str("file", *file).Msg("running batch")

		var svc service.OrderService
		if *dryRun {
			// Parse-only runs need neither the database nor credentials
			svc = service.NewOrderService(app.NewExchangeFactory(config.AppConfig.Binance), nil)
		} else {
			db, err := app.InitPostgres(config.AppConfig)
			if err != nil {
				logger.L().Fatal().Err(err).Msg("db connect error")
			}
			defer func() { _ = db.Close() }()
			svc = service.NewOrderService(app.NewExchangeFactory(config.AppConfig.Binance), storage.NewOrderRepository(db))
		}

		res, err := batch.ProcessFile(ctx, *file, svc, *parallel, !*live, *dryRun)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("batch failed")
		}
		logger.L().Info().
			Int("total", res.Total).
			Int("submitted", res.Submitted).
			Int("rejected", res.Rejected).
			Msg("batch completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
