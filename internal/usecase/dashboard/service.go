package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/conversion"
)

// AccountBalance is one funding account with its balance expressed in the home currency
type AccountBalance struct {
	Account     domain.FundingAccount
	HomeValue   decimal.Decimal
	Convertible bool
}

// OverviewResult represents the accounts page
type OverviewResult struct {
	HomeCurrency domain.Currency
	Accounts     []AccountBalance
	Total        decimal.Decimal
	// Skipped counts accounts left out of Total because no rate into the home currency exists
	Skipped int
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	AccountRepo  domain.AccountRepository
	Rates        *conversion.Table
	HomeCurrency domain.Currency
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(accountRepo domain.AccountRepository, rates *conversion.Table, home domain.Currency) *DashboardService {
	if home == "" {
		home = domain.DefaultCurrency
	}
	return &DashboardService{
		AccountRepo:  accountRepo,
		Rates:        rates,
		HomeCurrency: home,
	}
}

// GetOverview lists the funding accounts and their total
// Logic:
//   - Each balance is converted from the account currency into the home currency
//   - Accounts without a rate into the home currency are listed but not totalled
//   - Total is rounded to cents
func (s *DashboardService) GetOverview(ctx context.Context) (*OverviewResult, error) {
	accounts, err := s.AccountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	result := &OverviewResult{
		HomeCurrency: s.HomeCurrency,
		Accounts:     make([]AccountBalance, 0, len(accounts)),
		Total:        decimal.Zero,
	}

	for _, acc := range accounts {
		entry := AccountBalance{Account: acc}

		value, err := s.Rates.Convert(acc.AvailableBalance, acc.Currency, s.HomeCurrency)
		if err != nil {
			result.Skipped++
			result.Accounts = append(result.Accounts, entry)
			continue
		}

		entry.HomeValue = value
		entry.Convertible = true
		result.Total = result.Total.Add(value)
		result.Accounts = append(result.Accounts, entry)
	}

	result.Total = result.Total.Round(2)
	return result, nil
}
