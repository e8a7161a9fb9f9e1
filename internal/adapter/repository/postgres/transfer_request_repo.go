package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// transferRequestRepository implements domain.TransferRequestRepository
type transferRequestRepository struct {
	db *DB
}

// NewTransferRequestRepository creates a new transfer request repository
func NewTransferRequestRepository(db *DB) domain.TransferRequestRepository {
	return &transferRequestRepository{db: db}
}

// Save inserts a finalized transfer request
func (r *transferRequestRepository) Save(ctx context.Context, req *domain.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO transfer_requests (id, amount, currency, recipient_name, source_account_id, method, fee, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		req.ID,
		req.Amount.String(),
		string(req.Currency),
		req.RecipientName,
		req.SourceAccountID,
		string(req.Method),
		req.Fee.String(),
		string(req.Status),
		req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transfer request: %w", err)
	}

	return nil
}

// GetByID retrieves a transfer request by its ID
func (r *transferRequestRepository) GetByID(ctx context.Context, id string) (*domain.TransferRequest, error) {
	query := `
		SELECT id, amount, currency, recipient_name, source_account_id, method, fee, status, created_at
		FROM transfer_requests
		WHERE id = $1
	`

	var req domain.TransferRequest
	var amountStr, feeStr, currency, method, status string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID,
		&amountStr,
		&currency,
		&req.RecipientName,
		&req.SourceAccountID,
		&method,
		&feeStr,
		&status,
		&req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTransferNotFound, id)
		}
		return nil, fmt.Errorf("failed to get transfer request by ID: %w", err)
	}

	req.Currency = domain.Currency(currency)
	req.Method = domain.TransferMethod(method)
	req.Status = domain.TransferStatus(status)

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	req.Amount = amount

	fee, err := decimal.NewFromString(feeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fee: %w", err)
	}
	req.Fee = fee
	req.CreatedAt = req.CreatedAt.UTC()

	return &req, nil
}
