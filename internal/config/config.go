// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/simaogato/sendmoney-backend/internal/domain"
)

const (
	defaultGRPCAddr      = ":8080"
	defaultHTTPAddr      = ":9090"
	defaultSessionSecret = "dev-secret"
	defaultSessionTTL    = 12 * time.Hour
	defaultWizardIdleTTL = 30 * time.Minute
)

// Config holds every setting the server reads at startup
type Config struct {
	GRPCAddr string
	HTTPAddr string

	// DBConnStr is empty when no database is configured; the server then runs on in-memory stores
	DBConnStr string

	SessionSecret string
	SessionTTL    time.Duration

	// WizardIdleTTL drops wizards untouched for this long; 0 keeps them until discarded
	WizardIdleTTL time.Duration

	HomeCurrency    domain.Currency
	StrictRecipient bool
	LogLevel        slog.Level
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		GRPCAddr:      getEnv("GRPC_ADDR", defaultGRPCAddr),
		HTTPAddr:      getEnv("HTTP_ADDR", defaultHTTPAddr),
		DBConnStr:     dbConnStr(),
		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", defaultSessionTTL.String()))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	idle, err := time.ParseDuration(getEnv("WIZARD_IDLE_TTL", defaultWizardIdleTTL.String()))
	if err != nil || idle < 0 {
		return nil, fmt.Errorf("invalid WIZARD_IDLE_TTL %q", os.Getenv("WIZARD_IDLE_TTL"))
	}
	cfg.WizardIdleTTL = idle

	home, err := domain.ParseCurrency(getEnv("HOME_CURRENCY", string(domain.DefaultCurrency)))
	if err != nil {
		return nil, fmt.Errorf("invalid HOME_CURRENCY: %w", err)
	}
	cfg.HomeCurrency = home

	strict, err := strconv.ParseBool(getEnv("STRICT_RECIPIENT", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_RECIPIENT: %w", err)
	}
	cfg.StrictRecipient = strict

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// UsesDatabase reports whether postgres is configured
func (c *Config) UsesDatabase() bool {
	return c.DBConnStr != ""
}

// dbConnStr prefers DB_CONN_STR and otherwise builds a DSN when DB_HOST is set
func dbConnStr() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "sendmoney"),
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
