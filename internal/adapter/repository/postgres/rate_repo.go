package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// rateRepository implements domain.RateRepository
type rateRepository struct {
	db *DB
}

// NewRateRepository creates a new conversion rate repository
func NewRateRepository(db *DB) domain.RateRepository {
	return &rateRepository{db: db}
}

// List returns every stored directional rate
func (r *rateRepository) List(ctx context.Context) ([]domain.ConversionRate, error) {
	query := `
		SELECT from_currency, to_currency, rate
		FROM conversion_rates
		ORDER BY from_currency, to_currency
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ConversionRate
	for rows.Next() {
		var from, to, rateStr string
		if err := rows.Scan(&from, &to, &rateStr); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}

		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate %s->%s: %w", from, to, err)
		}

		rates = append(rates, domain.ConversionRate{
			From: domain.Currency(from),
			To:   domain.Currency(to),
			Rate: rate,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rates: %w", err)
	}

	return rates, nil
}

// Upsert stores the rate for one direction, replacing any previous value
func (r *rateRepository) Upsert(ctx context.Context, rate domain.ConversionRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO conversion_rates (from_currency, to_currency, rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = now()
	`

	_, err := r.db.ExecContext(ctx, query,
		string(rate.From),
		string(rate.To),
		rate.Rate.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rate: %w", err)
	}

	return nil
}
