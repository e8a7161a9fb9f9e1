package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus is the post-submission state shown on the status page
type TransferStatus string

const (
	TransferStatusProcessing TransferStatus = "PROCESSING"
)

// TransferRequest is the finalized output of the wizard.
// Amount and Currency are exactly the values confirmed on the review step.
type TransferRequest struct {
	ID              string
	Amount          decimal.Decimal
	Currency        Currency
	RecipientName   string
	SourceAccountID uuid.UUID
	Method          TransferMethod
	Fee             decimal.Decimal
	Status          TransferStatus
	CreatedAt       time.Time
}

// Validate ensures the request adheres to domain rules
func (t *TransferRequest) Validate() error {
	if t.ID == "" {
		return errors.New("transfer request id cannot be empty")
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Currency == "" {
		return ErrInvalidCurrency
	}
	if t.RecipientName == "" {
		return ErrMissingRecipientField
	}
	return nil
}

// DisplayRecipientName returns the recipient name formatted for the status page
func (t *TransferRequest) DisplayRecipientName() string {
	return FormatName(t.RecipientName)
}
