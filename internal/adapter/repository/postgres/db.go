package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=sendmoney sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// schema is applied on startup. Balances and rates are NUMERIC and travel as strings.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS funding_accounts (
		id                  UUID PRIMARY KEY,
		position            BIGSERIAL,
		currency            CHAR(3) NOT NULL,
		available_balance   NUMERIC(20, 4) NOT NULL CHECK (available_balance >= 0),
		account_name        TEXT NOT NULL,
		bank_name           TEXT NOT NULL DEFAULT '',
		full_account_number TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS conversion_rates (
		from_currency CHAR(3) NOT NULL,
		to_currency   CHAR(3) NOT NULL,
		rate          NUMERIC(24, 10) NOT NULL CHECK (rate > 0),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (from_currency, to_currency)
	)`,
	`CREATE TABLE IF NOT EXISTS transfer_requests (
		id                TEXT PRIMARY KEY,
		amount            NUMERIC(20, 4) NOT NULL,
		currency          CHAR(3) NOT NULL,
		recipient_name    TEXT NOT NULL,
		source_account_id UUID NOT NULL,
		method            TEXT NOT NULL,
		fee               NUMERIC(20, 4) NOT NULL,
		status            TEXT NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates the tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
