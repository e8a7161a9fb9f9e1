package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new funding account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.FundingAccount, error) {
	var acc domain.FundingAccount
	var currency string
	var balanceStr string

	if err := row.Scan(
		&acc.ID,
		&currency,
		&balanceStr,
		&acc.AccountName,
		&acc.BankName,
		&acc.FullAccountNumber,
	); err != nil {
		return nil, err
	}
	acc.Currency = domain.Currency(currency)

	// Parse available_balance (NUMERIC)
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse available_balance: %w", err)
	}
	acc.AvailableBalance = balance

	return &acc, nil
}

// List returns every account in insertion order
func (r *accountRepository) List(ctx context.Context) ([]domain.FundingAccount, error) {
	query := `
		SELECT id, currency, available_balance, account_name, bank_name, full_account_number
		FROM funding_accounts
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.FundingAccount
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FundingAccount, error) {
	query := `
		SELECT id, currency, available_balance, account_name, bank_name, full_account_number
		FROM funding_accounts
		WHERE id = $1
	`

	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return acc, nil
}

// Create creates a new funding account
func (r *accountRepository) Create(ctx context.Context, account *domain.FundingAccount) error {
	if err := account.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO funding_accounts (id, currency, available_balance, account_name, bank_name, full_account_number)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		string(account.Currency),
		account.AvailableBalance.String(),
		account.AccountName,
		account.BankName,
		account.FullAccountNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}
