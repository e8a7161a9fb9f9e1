package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConversionRate is a one-directional multiplicative rate: 1 unit of From buys Rate units of To.
// The reverse direction is stored separately and is not required to be the reciprocal.
type ConversionRate struct {
	From Currency
	To   Currency
	Rate decimal.Decimal
}

// Validate ensures the rate adheres to domain rules
func (r *ConversionRate) Validate() error {
	if !r.From.IsKnown() || !r.To.IsKnown() {
		return ErrInvalidCurrency
	}
	if r.From == r.To {
		return fmt.Errorf("%w: %s to itself is always 1", ErrInvalidRate, r.From)
	}
	if !r.Rate.IsPositive() {
		return ErrInvalidRate
	}
	return nil
}
