package domain

import "errors"

// Validation failures. The wizard returns these instead of advancing; callers are expected to
// keep the user on the current step.
var (
	ErrMissingRecipientField = errors.New("recipient is missing a required field")
	ErrInvalidAmount         = errors.New("amount must be a number greater than zero")
	ErrInvalidPIN            = errors.New("pin must be exactly 4 digits")
	ErrInvalidCurrency       = errors.New("invalid currency code")
	ErrInvalidRate           = errors.New("conversion rate must be positive")
	ErrInvalidAccount        = errors.New("invalid funding account")
)

// Funding failures. Recoverable by switching accounts or reducing the amount.
var (
	ErrNoSourceAccount                = errors.New("no source account selected")
	ErrInsufficientBalance            = errors.New("insufficient balance in source account")
	ErrInsufficientBalanceAllAccounts = errors.New("insufficient balance across all accounts")
	ErrRateUnavailable                = errors.New("conversion rate unavailable")
)

// State machine misuse
var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrFieldNotEditable  = errors.New("field is not editable on the current step")
	ErrAlreadySubmitted  = errors.New("transfer already submitted")
	ErrUnknownField      = errors.New("unknown recipient field")
)

// Lookups
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrSessionNotFound  = errors.New("transfer session not found")
	ErrSessionForbidden = errors.New("transfer session belongs to another user")
)
