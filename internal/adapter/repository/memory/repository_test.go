package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		err := repo.Create(ctx, &domain.FundingAccount{
			ID:               id,
			Currency:         domain.CurrencyUSD,
			AvailableBalance: decimal.NewFromInt(int64(i)),
			AccountName:      "acc",
		})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
	}

	got, err := repo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, got.AvailableBalance.Equal(decimal.NewFromInt(1)))

	// Mutating the returned copy does not touch the directory
	list[0].AccountName = "changed"
	again, _ := repo.List(ctx)
	assert.Equal(t, "acc", again[0].AccountName)
}

func TestAccountRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	acc := &domain.FundingAccount{ID: uuid.New(), Currency: domain.CurrencyEUR, AccountName: "EUR"}

	require.NoError(t, repo.Create(ctx, acc))
	assert.Error(t, repo.Create(ctx, acc), "duplicate id")

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = repo.Create(ctx, &domain.FundingAccount{ID: uuid.New(), Currency: domain.CurrencyEUR, AccountName: "neg", AvailableBalance: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
}

func TestRateRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRateRepository()

	require.NoError(t, repo.Upsert(ctx, domain.ConversionRate{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.85")}))
	require.NoError(t, repo.Upsert(ctx, domain.ConversionRate{From: "EUR", To: "USD", Rate: decimal.RequireFromString("1.18")}))
	require.NoError(t, repo.Upsert(ctx, domain.ConversionRate{From: "USD", To: "EUR", Rate: decimal.RequireFromString("0.90")}))

	rates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, domain.Currency("USD"), rates[0].From)
	assert.True(t, rates[0].Rate.Equal(decimal.RequireFromString("0.90")))
	assert.True(t, rates[1].Rate.Equal(decimal.RequireFromString("1.18")), "reverse direction untouched")

	assert.ErrorIs(t, repo.Upsert(ctx, domain.ConversionRate{From: "USD", To: "EUR", Rate: decimal.Zero}), domain.ErrInvalidRate)
}

func TestTransferRequestRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferRequestRepository()
	req := &domain.TransferRequest{
		ID:            "TXN1",
		Amount:        decimal.NewFromInt(40),
		Currency:      domain.CurrencyEUR,
		RecipientName: "Greta",
	}

	require.NoError(t, repo.Save(ctx, req))
	assert.Error(t, repo.Save(ctx, req), "duplicate id")

	got, err := repo.GetByID(ctx, "TXN1")
	require.NoError(t, err)
	assert.Equal(t, "Greta", got.RecipientName)

	_, err = repo.GetByID(ctx, "TXN2")
	assert.ErrorIs(t, err, domain.ErrTransferNotFound)

	assert.Error(t, repo.Save(ctx, &domain.TransferRequest{ID: "TXN3"}))
}
