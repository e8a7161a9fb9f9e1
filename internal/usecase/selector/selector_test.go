package selector

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/conversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector(t *testing.T) *Selector {
	t.Helper()
	table, err := conversion.NewTable(conversion.DefaultRates())
	require.NoError(t, err)
	return NewSelector(table, domain.CurrencyUSD)
}

// sparseSelector only knows USD->EUR
func sparseSelector(t *testing.T) *Selector {
	t.Helper()
	table, err := conversion.NewTable([]domain.ConversionRate{
		{From: domain.CurrencyUSD, To: domain.CurrencyEUR, Rate: decimal.RequireFromString("0.85")},
	})
	require.NoError(t, err)
	return NewSelector(table, domain.CurrencyUSD)
}

func account(currency domain.Currency, balance string) domain.FundingAccount {
	return domain.FundingAccount{
		ID:               uuid.New(),
		Currency:         currency,
		AvailableBalance: decimal.RequireFromString(balance),
		AccountName:      string(currency) + " account",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSuggest_SameCurrencyAccountCovers(t *testing.T) {
	s := newSelector(t)
	usd := account(domain.CurrencyUSD, "100")
	eur := account(domain.CurrencyEUR, "50")

	got, err := s.Suggest(dec("40"), domain.CurrencyEUR, []domain.FundingAccount{usd, eur})

	require.NoError(t, err)
	assert.Equal(t, eur.ID, got.ID)
}

func TestSuggest_FallsBackToConvertedUSD(t *testing.T) {
	s := newSelector(t)
	usd := account(domain.CurrencyUSD, "100")
	eur := account(domain.CurrencyEUR, "50")

	// 60 EUR -> 70.80 USD, covered by the USD account
	got, err := s.Suggest(dec("60"), domain.CurrencyEUR, []domain.FundingAccount{usd, eur})

	require.NoError(t, err)
	assert.Equal(t, usd.ID, got.ID)
}

func TestSuggest_ConvertedAmountTooLarge(t *testing.T) {
	s := newSelector(t)
	usd := account(domain.CurrencyUSD, "100")
	eur := account(domain.CurrencyEUR, "50")

	// 90 EUR -> 106.20 USD: the raw balance (100 >= 90) would pass, the converted one does not
	got, err := s.Suggest(dec("90"), domain.CurrencyEUR, []domain.FundingAccount{usd, eur})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalanceAllAccounts)
}

func TestSuggest_PrefersHomeCurrencyOverEarlierForeignAccount(t *testing.T) {
	s := newSelector(t)
	gbp := account(domain.CurrencyGBP, "1000")
	usd := account(domain.CurrencyUSD, "1000")

	got, err := s.Suggest(dec("100"), domain.CurrencyEUR, []domain.FundingAccount{gbp, usd})

	require.NoError(t, err)
	assert.Equal(t, usd.ID, got.ID)
}

func TestSuggest_AnyCurrencyWhenHomeCannotCover(t *testing.T) {
	s := newSelector(t)
	usd := account(domain.CurrencyUSD, "10")
	gbp := account(domain.CurrencyGBP, "1000")

	got, err := s.Suggest(dec("100"), domain.CurrencyEUR, []domain.FundingAccount{usd, gbp})

	require.NoError(t, err)
	assert.Equal(t, gbp.ID, got.ID, "the fallback is consistent with the coverage check that triggers it")
}

func TestSuggest_FirstMatchInDirectoryOrder(t *testing.T) {
	s := newSelector(t)
	small := account(domain.CurrencyEUR, "50")
	large := account(domain.CurrencyEUR, "5000")

	got, err := s.Suggest(dec("40"), domain.CurrencyEUR, []domain.FundingAccount{small, large})

	require.NoError(t, err)
	assert.Equal(t, small.ID, got.ID, "no ranking by balance")
}

func TestSuggest_NoRateForAnyAccount(t *testing.T) {
	s := sparseSelector(t)
	usd := account(domain.CurrencyUSD, "1000000")

	got, err := s.Suggest(dec("100"), "JPY", []domain.FundingAccount{usd})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
	assert.NotErrorIs(t, err, domain.ErrInsufficientBalanceAllAccounts)
}

func TestSuggest_SkipsAccountsWithoutRate(t *testing.T) {
	s := sparseSelector(t)
	gbp := account(domain.CurrencyGBP, "1000000")
	eur := account(domain.CurrencyEUR, "10")

	got, err := s.Suggest(dec("100"), domain.CurrencyEUR, []domain.FundingAccount{gbp, eur})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalanceAllAccounts, "a convertible account exists but cannot pay")
}

func TestSuggest_FundsPayoutCurrencyFromHomeAccount(t *testing.T) {
	s := newSelector(t)
	eur := account(domain.CurrencyEUR, "5000")
	usd := account(domain.CurrencyUSD, "12450")

	got, err := s.Suggest(dec("1000"), "CAD", []domain.FundingAccount{eur, usd})

	require.NoError(t, err)
	assert.Equal(t, usd.ID, got.ID)
	assert.True(t, s.Evaluate(dec("1000"), "CAD", *got).ConvertedAmount.Equal(dec("730")))
}

func TestEvaluate(t *testing.T) {
	s := newSelector(t)

	tests := []struct {
		name             string
		account          domain.FundingAccount
		amount           string
		target           domain.Currency
		wantConverted    string
		wantInsufficient bool
		wantShortfall    string
		wantAfter        string
		wantConversion   bool
		wantHint         string
	}{
		{
			name:          "same currency, covered",
			account:       account(domain.CurrencyEUR, "50"),
			amount:        "40",
			target:        domain.CurrencyEUR,
			wantConverted: "40",
			wantShortfall: "0",
			wantAfter:     "10",
		},
		{
			name:             "same currency, short",
			account:          account(domain.CurrencyEUR, "50"),
			amount:           "60",
			target:           domain.CurrencyEUR,
			wantConverted:    "60",
			wantInsufficient: true,
			wantShortfall:    "10",
			wantAfter:        "-10",
			wantHint:         "Need €10.00 more",
		},
		{
			name:           "converted, covered",
			account:        account(domain.CurrencyUSD, "100"),
			amount:         "60",
			target:         domain.CurrencyEUR,
			wantConverted:  "70.8",
			wantShortfall:  "0",
			wantAfter:      "29.2",
			wantConversion: true,
		},
		{
			name:             "converted into a smaller currency",
			account:          account(domain.CurrencyGBP, "10"),
			amount:           "10",
			target:           domain.CurrencyUSD,
			wantConverted:    "7.3",
			wantInsufficient: false,
			wantShortfall:    "0",
			wantAfter:        "2.7",
			wantConversion:   true,
		},
		{
			name:             "converted into a large currency",
			account:          account(domain.CurrencyNGN, "1000"),
			amount:           "1",
			target:           domain.CurrencyUSD,
			wantConverted:    "1500",
			wantInsufficient: true,
			wantShortfall:    "500",
			wantAfter:        "-500",
			wantConversion:   true,
			wantHint:         "Need ₦500.00 more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := s.Evaluate(dec(tt.amount), tt.target, tt.account)

			assert.True(t, opt.Convertible)
			assert.True(t, opt.ConvertedAmount.Equal(dec(tt.wantConverted)), "converted %s", opt.ConvertedAmount)
			assert.Equal(t, tt.wantInsufficient, opt.Insufficient)
			assert.Equal(t, !tt.wantInsufficient, opt.Covers())
			assert.True(t, opt.Shortfall.Equal(dec(tt.wantShortfall)), "shortfall %s", opt.Shortfall)
			assert.True(t, opt.BalanceAfter.Equal(dec(tt.wantAfter)), "after %s", opt.BalanceAfter)
			assert.Equal(t, tt.wantConversion, opt.NeedsConversion)
			assert.Equal(t, tt.wantHint, opt.ShortfallHint())
		})
	}
}

func TestEvaluate_NoRate(t *testing.T) {
	s := sparseSelector(t)

	opt := s.Evaluate(dec("1"), "JPY", account(domain.CurrencyUSD, "100"))

	assert.False(t, opt.Convertible)
	assert.True(t, opt.Insufficient)
	assert.False(t, opt.Covers())
	assert.Empty(t, opt.ShortfallHint())
}

func TestOptions_KeepsDirectoryOrder(t *testing.T) {
	s := newSelector(t)
	accounts := []domain.FundingAccount{
		account(domain.CurrencyNGN, "5"),
		account(domain.CurrencyUSD, "100"),
		account(domain.CurrencyEUR, "50"),
	}

	options := s.Options(dec("40"), domain.CurrencyEUR, accounts)

	require.Len(t, options, 3)
	for i := range accounts {
		assert.Equal(t, accounts[i].ID, options[i].Account.ID)
	}
	assert.True(t, options[0].Insufficient)
	assert.False(t, options[1].Insufficient)
	assert.False(t, options[2].Insufficient)
}

func TestResolve(t *testing.T) {
	s := newSelector(t)
	usd := account(domain.CurrencyUSD, "100")
	eur := account(domain.CurrencyEUR, "50")
	accounts := []domain.FundingAccount{usd, eur}

	t.Run("suggestion when nothing selected", func(t *testing.T) {
		opt, err := s.Resolve(dec("40"), domain.CurrencyEUR, accounts, nil)
		require.NoError(t, err)
		assert.Equal(t, eur.ID, opt.Account.ID)
	})

	t.Run("explicit choice wins over a better suggestion", func(t *testing.T) {
		opt, err := s.Resolve(dec("40"), domain.CurrencyEUR, accounts, &usd.ID)
		require.NoError(t, err)
		assert.Equal(t, usd.ID, opt.Account.ID)
		assert.True(t, opt.NeedsConversion)
	})

	t.Run("explicit choice returned even if short", func(t *testing.T) {
		opt, err := s.Resolve(dec("60"), domain.CurrencyEUR, accounts, &eur.ID)
		require.NoError(t, err)
		assert.False(t, opt.Covers())
	})

	t.Run("unknown explicit choice", func(t *testing.T) {
		missing := uuid.New()
		_, err := s.Resolve(dec("40"), domain.CurrencyEUR, accounts, &missing)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("nothing covers", func(t *testing.T) {
		_, err := s.Resolve(dec("1000"), domain.CurrencyEUR, accounts, nil)
		assert.ErrorIs(t, err, domain.ErrNoSourceAccount)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalanceAllAccounts)
	})
}
