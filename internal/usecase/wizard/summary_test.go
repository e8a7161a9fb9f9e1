package wizard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptyDraft(t *testing.T) {
	w := newWizard(t, Config{})

	s := w.Summarize(NewDraft())

	assert.Equal(t, StepCollectingRecipient, s.Step)
	assert.Equal(t, domain.CurrencyUSD, s.TargetCurrency, "unknown country falls back to USD")
	assert.Equal(t, domain.MethodWire, s.Method)
	assert.False(t, s.CanContinue())
	assert.ErrorIs(t, s.Blocker, domain.ErrMissingRecipientField)
	assert.Len(t, s.MissingFields, 4)
	assert.False(t, s.AmountValid)
	assert.Nil(t, s.Options)
}

func TestSummarize_AccountStep(t *testing.T) {
	w := newWizard(t, Config{})
	d := apply(t, w, NewDraft(), germanRecipient()...)
	d = apply(t, w, d, Next{}, SetAmount{Amount: "40"}, Next{})

	s := w.Summarize(d)

	assert.True(t, s.CanContinue())
	assert.Equal(t, domain.CurrencyEUR, s.TargetCurrency)
	assert.Equal(t, domain.MethodSEPA, s.Method)
	assert.Equal(t, "1-2 business days", s.ProcessingTime)
	assert.True(t, s.Amount.Equal(decimal.NewFromInt(40)))
	require.NotNil(t, s.Suggested)
	assert.Equal(t, eurAccountID, s.Suggested.ID)
	require.NotNil(t, s.Source)
	assert.Equal(t, eurAccountID, s.Source.Account.ID)
	assert.True(t, s.Source.BalanceAfter.Equal(decimal.NewFromInt(10)))
	require.Len(t, s.Options, 2)
	assert.True(t, s.Options[0].NeedsConversion)
	assert.True(t, s.Options[0].ConvertedAmount.Equal(decimal.RequireFromString("47.2")))
	assert.Equal(t, map[domain.RecipientField]string{
		domain.FieldIBAN: "DE89370400440532013000",
		domain.FieldBIC:  "COBADEFFXXX",
	}, s.RoutingDetails)
}

func TestSummarize_InsufficientEverywhere(t *testing.T) {
	w := newWizard(t, Config{})
	d := apply(t, w, NewDraft(), germanRecipient()...)
	d = apply(t, w, d, Next{}, SetAmount{Amount: "500"}, Next{})

	s := w.Summarize(d)

	assert.True(t, s.InsufficientAll)
	assert.Nil(t, s.Suggested)
	assert.Nil(t, s.Source)
	assert.False(t, s.CanContinue())
	for _, opt := range s.Options {
		assert.True(t, opt.Insufficient)
		assert.NotEmpty(t, opt.ShortfallHint())
	}
}

func TestSummarize_OverrideShownEvenIfShort(t *testing.T) {
	w := newWizard(t, Config{})
	d := apply(t, w, NewDraft(), germanRecipient()...)
	d = apply(t, w, d, Next{}, SetAmount{Amount: "60"}, Next{}, SelectAccount{AccountID: eurAccountID})

	s := w.Summarize(d)

	require.NotNil(t, s.Source)
	assert.Equal(t, eurAccountID, s.Source.Account.ID)
	assert.True(t, s.Source.Insufficient)
	require.NotNil(t, s.Suggested)
	assert.Equal(t, usdAccountID, s.Suggested.ID)
	assert.ErrorIs(t, s.Blocker, domain.ErrInsufficientBalance)
}
