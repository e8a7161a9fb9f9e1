package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// Fixed UUIDs for the demo funding accounts
var (
	DemoUSDAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	DemoEURAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	DemoGBPAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	DemoNGNAccountID = uuid.MustParse("00000000-0000-0000-0000-000000000004")
)

// DemoAccounts returns the funding accounts a fresh installation starts with
func DemoAccounts() []domain.FundingAccount {
	return []domain.FundingAccount{
		{
			ID:                DemoUSDAccountID,
			Currency:          domain.CurrencyUSD,
			AvailableBalance:  decimal.RequireFromString("12450.00"),
			AccountName:       "USD Main Account",
			BankName:          "Chase Bank",
			FullAccountNumber: "****4521",
		},
		{
			ID:                DemoEURAccountID,
			Currency:          domain.CurrencyEUR,
			AvailableBalance:  decimal.RequireFromString("3200.50"),
			AccountName:       "EUR Savings",
			BankName:          "Deutsche Bank",
			FullAccountNumber: "****7734",
		},
		{
			ID:                DemoGBPAccountID,
			Currency:          domain.CurrencyGBP,
			AvailableBalance:  decimal.RequireFromString("850.75"),
			AccountName:       "GBP Account",
			BankName:          "Barclays",
			FullAccountNumber: "****1298",
		},
		{
			ID:                DemoNGNAccountID,
			Currency:          domain.CurrencyNGN,
			AvailableBalance:  decimal.RequireFromString("2500000.00"),
			AccountName:       "NGN Wallet",
			BankName:          "GTBank",
			FullAccountNumber: "****0062",
		},
	}
}

// ReferenceSeeder fills empty stores with demo accounts and the default rate table
type ReferenceSeeder struct {
	accounts domain.AccountRepository
	rates    domain.RateRepository
}

// NewReferenceSeeder creates a new ReferenceSeeder instance
func NewReferenceSeeder(accounts domain.AccountRepository, rates domain.RateRepository) *ReferenceSeeder {
	return &ReferenceSeeder{
		accounts: accounts,
		rates:    rates,
	}
}

// Seed ensures the demo accounts and every default rate pair exist.
// Existing accounts and rates are left untouched.
func (s *ReferenceSeeder) Seed(ctx context.Context, accounts []domain.FundingAccount, rates []domain.ConversionRate) error {
	for i := range accounts {
		acc := accounts[i]

		_, err := s.accounts.GetByID(ctx, acc.ID)
		if err == nil {
			continue
		}
		if !domain.IsNotFound(err) {
			return fmt.Errorf("failed to look up account %s: %w", acc.ID, err)
		}

		if err := acc.Validate(); err != nil {
			return err
		}
		if err := s.accounts.Create(ctx, &acc); err != nil {
			return fmt.Errorf("failed to create account %s: %w", acc.ID, err)
		}
	}

	existing, err := s.rates.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rates: %w", err)
	}
	have := make(map[[2]domain.Currency]bool, len(existing))
	for _, r := range existing {
		have[[2]domain.Currency{r.From, r.To}] = true
	}

	for _, r := range rates {
		if have[[2]domain.Currency{r.From, r.To}] {
			continue
		}
		if err := s.rates.Upsert(ctx, r); err != nil {
			return fmt.Errorf("failed to store rate %s->%s: %w", r.From, r.To, err)
		}
	}

	return nil
}
