package conversion

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

type pair struct {
	from domain.Currency
	to   domain.Currency
}

// Table is an immutable set of directional conversion rates.
// Rates are looked up per direction exactly as stored; the reverse of a missing
// direction is never derived.
type Table struct {
	rates map[pair]decimal.Decimal
}

// NewTable builds a Table, rejecting invalid or duplicated directions
func NewTable(rates []domain.ConversionRate) (*Table, error) {
	t := &Table{rates: make(map[pair]decimal.Decimal, len(rates))}
	for _, r := range rates {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rate %s->%s: %w", r.From, r.To, err)
		}
		key := pair{from: r.From, to: r.To}
		if _, exists := t.rates[key]; exists {
			return nil, fmt.Errorf("duplicate rate %s->%s", r.From, r.To)
		}
		t.rates[key] = r.Rate
	}
	return t, nil
}

// Rate returns how many units of `to` one unit of `from` buys.
// Equal currencies always return 1.
func (t *Table) Rate(from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := t.rates[pair{from: from, to: to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s->%s", domain.ErrRateUnavailable, from, to)
	}
	return rate, nil
}

// Convert multiplies amount by the from->to rate. Equal currencies return amount unchanged.
func (t *Table) Convert(amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := t.Rate(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// Rates returns the stored rates. Order is unspecified.
func (t *Table) Rates() []domain.ConversionRate {
	out := make([]domain.ConversionRate, 0, len(t.rates))
	for k, v := range t.rates {
		out = append(out, domain.ConversionRate{From: k.from, To: k.to, Rate: v})
	}
	return out
}
