package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for the funding accounts directory
type AccountRepository interface {
	// List returns every funding account in the directory's fixed display order
	List(ctx context.Context) ([]FundingAccount, error)

	// GetByID retrieves a funding account by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*FundingAccount, error)

	// Create adds an account at the end of the directory order
	Create(ctx context.Context, account *FundingAccount) error
}

// RateRepository defines the interface for conversion rate persistence operations
type RateRepository interface {
	// List returns every stored directional rate
	List(ctx context.Context) ([]ConversionRate, error)

	// Upsert stores the rate for (From, To), replacing any existing one.
	// The opposite direction is not touched.
	Upsert(ctx context.Context, rate ConversionRate) error
}

// TransferRequestRepository is the result sink for finalized transfers
type TransferRequestRepository interface {
	// Save records a finalized transfer request
	Save(ctx context.Context, req *TransferRequest) error

	// GetByID retrieves a finalized transfer request by its ID
	GetByID(ctx context.Context, id string) (*TransferRequest, error)
}
