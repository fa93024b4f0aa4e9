package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=vps
//	POSTGRES_SSLMODE=disable
//	BINANCE_API_KEY=...
//	BINANCE_API_SECRET=...
//	BINANCE_TESTNET_API_KEY=...
//	BINANCE_TESTNET_API_SECRET=...
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Binance  BinanceConfig  // Exchange credentials and endpoints
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL, which holds
// the submitted-order audit log.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql
}

// BinanceConfig holds exchange credentials. The testnet pair is
// optional and falls back to the main pair when empty, so a single set
// of keys is enough for local testing.
type BinanceConfig struct {
	APIKey           string
	APISecret        string
	TestnetAPIKey    string
	TestnetAPISecret string
	BaseURL          string
	TestnetBaseURL   string
}

// AppConfig is the globally accessible configuration instance,
// populated once via LoadConfig() and read-only afterwards.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env
// file or directly from environment variables.
//
// Precedence (lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env (if present).
//  3. Environment variables.
//
// Missing required fields terminate the process through
// validateConfig().
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "vps")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("BINANCE_BASE_URL", "https://api.binance.com")
	viper.SetDefault("BINANCE_TESTNET_BASE_URL", "https://testnet.binance.vision")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Binance: BinanceConfig{
			APIKey:           viper.GetString("BINANCE_API_KEY"),
			APISecret:        viper.GetString("BINANCE_API_SECRET"),
			TestnetAPIKey:    viper.GetString("BINANCE_TESTNET_API_KEY"),
			TestnetAPISecret: viper.GetString("BINANCE_TESTNET_API_SECRET"),
			BaseURL:          viper.GetString("BINANCE_BASE_URL"),
			TestnetBaseURL:   viper.GetString("BINANCE_TESTNET_BASE_URL"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Exchange credentials are deliberately not checked here: parse-only
// modes (console, batch dry runs, the preview endpoint) work without
// them, and the exchange client reports missing keys when an order is
// actually submitted.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
