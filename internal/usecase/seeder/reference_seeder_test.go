package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/conversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) List(ctx context.Context) ([]domain.FundingAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundingAccount), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FundingAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundingAccount), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.FundingAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockRateRepository is a mock implementation of RateRepository
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) List(ctx context.Context) ([]domain.ConversionRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRate), args.Error(1)
}

func (m *MockRateRepository) Upsert(ctx context.Context, rate domain.ConversionRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func TestReferenceSeeder_Seed_EmptyStores(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	rates := new(MockRateRepository)
	seeder := NewReferenceSeeder(accounts, rates)

	demo := DemoAccounts()
	for _, acc := range demo {
		accounts.On("GetByID", ctx, acc.ID).Return(nil, domain.ErrAccountNotFound)
	}
	accounts.On("Create", ctx, mock.AnythingOfType("*domain.FundingAccount")).Return(nil)
	rates.On("List", ctx).Return([]domain.ConversionRate{}, nil)
	rates.On("Upsert", ctx, mock.AnythingOfType("domain.ConversionRate")).Return(nil)

	err := seeder.Seed(ctx, demo, conversion.DefaultRates())

	require.NoError(t, err)
	accounts.AssertNumberOfCalls(t, "Create", len(demo))
	rates.AssertNumberOfCalls(t, "Upsert", len(conversion.DefaultRates()))
}

func TestReferenceSeeder_Seed_KeepsExistingData(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	rates := new(MockRateRepository)
	seeder := NewReferenceSeeder(accounts, rates)

	demo := DemoAccounts()[:2]
	accounts.On("GetByID", ctx, demo[0].ID).Return(&demo[0], nil)
	accounts.On("GetByID", ctx, demo[1].ID).Return(nil, domain.ErrAccountNotFound)
	accounts.On("Create", ctx, mock.MatchedBy(func(acc *domain.FundingAccount) bool {
		return acc.ID == DemoEURAccountID && acc.Currency == domain.CurrencyEUR
	})).Return(nil).Once()

	custom := domain.ConversionRate{From: domain.CurrencyUSD, To: domain.CurrencyEUR, Rate: decimal.RequireFromString("0.90")}
	rates.On("List", ctx).Return([]domain.ConversionRate{custom}, nil)
	rates.On("Upsert", ctx, mock.MatchedBy(func(r domain.ConversionRate) bool {
		return !(r.From == domain.CurrencyUSD && r.To == domain.CurrencyEUR)
	})).Return(nil)

	err := seeder.Seed(ctx, demo, conversion.DefaultRates())

	require.NoError(t, err)
	accounts.AssertExpectations(t)
	rates.AssertNumberOfCalls(t, "Upsert", len(conversion.DefaultRates())-1)
}

func TestReferenceSeeder_Seed_LookupFailure(t *testing.T) {
	ctx := context.Background()
	accounts := new(MockAccountRepository)
	rates := new(MockRateRepository)
	seeder := NewReferenceSeeder(accounts, rates)

	demo := DemoAccounts()[:1]
	accounts.On("GetByID", ctx, demo[0].ID).Return(nil, errors.New("connection refused"))

	err := seeder.Seed(ctx, demo, nil)

	assert.Error(t, err)
	accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	rates.AssertNotCalled(t, "List", mock.Anything)
}

func TestDemoAccounts_AreValid(t *testing.T) {
	seen := make(map[domain.Currency]bool)
	for _, acc := range DemoAccounts() {
		assert.NoError(t, acc.Validate())
		seen[acc.Currency] = true
	}
	assert.Len(t, seen, 4, "one demo account per supported currency")
}
