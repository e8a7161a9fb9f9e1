package memory

import (
	"context"
	"sync"

	"github.com/simaogato/sendmoney-backend/internal/domain"
)

type ratePair struct {
	from domain.Currency
	to   domain.Currency
}

// RateRepository stores directional conversion rates
type RateRepository struct {
	mu    sync.RWMutex
	order []ratePair
	rates map[ratePair]domain.ConversionRate
}

// NewRateRepository creates an empty rate store
func NewRateRepository() *RateRepository {
	return &RateRepository{
		rates: make(map[ratePair]domain.ConversionRate),
	}
}

// List returns the stored rates in first-insertion order
func (r *RateRepository) List(ctx context.Context) ([]domain.ConversionRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ConversionRate, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, r.rates[p])
	}
	return out, nil
}

// Upsert stores the rate for one direction
func (r *RateRepository) Upsert(ctx context.Context, rate domain.ConversionRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := ratePair{from: rate.From, to: rate.To}
	if _, exists := r.rates[key]; !exists {
		r.order = append(r.order, key)
	}
	r.rates[key] = rate
	return nil
}
