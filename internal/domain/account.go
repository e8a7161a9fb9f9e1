package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FundingAccount is one of the sender's own accounts a transfer can be paid from.
// It is reference data: the wizard reads balances but never changes them.
type FundingAccount struct {
	ID                uuid.UUID
	Currency          Currency
	AvailableBalance  decimal.Decimal
	AccountName       string
	BankName          string
	FullAccountNumber string
}

// Validate ensures the account adheres to domain rules
func (a *FundingAccount) Validate() error {
	if a.ID == uuid.Nil {
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidAccount)
	}
	if a.AccountName == "" {
		return fmt.Errorf("%w: account name cannot be empty", ErrInvalidAccount)
	}
	if !a.Currency.IsKnown() {
		return fmt.Errorf("%w: %w", ErrInvalidAccount, ErrInvalidCurrency)
	}
	if a.AvailableBalance.IsNegative() {
		return fmt.Errorf("%w: available balance cannot be negative", ErrInvalidAccount)
	}
	return nil
}

// FindAccount returns the account with the given ID from an ordered directory snapshot
func FindAccount(accounts []FundingAccount, id uuid.UUID) (*FundingAccount, error) {
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// IsNotFound reports whether err is one of the lookup failures
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransferNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}
