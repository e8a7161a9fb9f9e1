package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveMethod(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		country  string
		want     TransferMethod
	}{
		{"USD to United States is ACH", CurrencyUSD, "United States", MethodACH},
		{"USD elsewhere is wire", CurrencyUSD, "Nigeria", MethodWire},
		{"USD with empty country is wire", CurrencyUSD, "", MethodWire},
		{"EUR to Germany is SEPA", CurrencyEUR, "Germany", MethodSEPA},
		{"EUR to any country is SEPA", CurrencyEUR, "Atlantis", MethodSEPA},
		{"GBP to United Kingdom is Faster Payments", CurrencyGBP, "United Kingdom", MethodFasterPayments},
		{"GBP elsewhere is wire", CurrencyGBP, "Ireland", MethodWire},
		{"NGN is wire", CurrencyNGN, "Nigeria", MethodWire},
		{"JPY is wire", "JPY", "Japan", MethodWire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveMethod(tt.currency, tt.country))
		})
	}
}

func TestTransferMethod_Fee(t *testing.T) {
	assert.True(t, MethodWire.Fee().Equal(decimal.NewFromInt(25)), "wire fee should be 25.00")
	for _, m := range []TransferMethod{MethodACH, MethodSEPA, MethodFasterPayments} {
		assert.True(t, m.Fee().IsZero(), "%s should be free", m)
	}
}

func TestTransferMethod_ProcessingTime(t *testing.T) {
	assert.Equal(t, "1-3 business days", MethodACH.ProcessingTime())
	assert.Equal(t, "1-2 business days", MethodSEPA.ProcessingTime())
	assert.Equal(t, "Within minutes", MethodFasterPayments.ProcessingTime())
	assert.Equal(t, "Same day", MethodWire.ProcessingTime())
}
