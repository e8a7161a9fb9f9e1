package conversion

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// fundingQuotes are the direct quotes between the four funding currencies.
// Directions are quoted independently, so USD->EUR x EUR->USD is not exactly 1.
var fundingQuotes = []struct {
	from, to domain.Currency
	rate     string
}{
	{domain.CurrencyUSD, domain.CurrencyEUR, "0.85"},
	{domain.CurrencyUSD, domain.CurrencyGBP, "0.73"},
	{domain.CurrencyUSD, domain.CurrencyNGN, "1500"},
	{domain.CurrencyEUR, domain.CurrencyUSD, "1.18"},
	{domain.CurrencyEUR, domain.CurrencyGBP, "0.86"},
	{domain.CurrencyEUR, domain.CurrencyNGN, "1765"},
	{domain.CurrencyGBP, domain.CurrencyUSD, "1.37"},
	{domain.CurrencyGBP, domain.CurrencyEUR, "1.16"},
	{domain.CurrencyGBP, domain.CurrencyNGN, "2055"},
	{domain.CurrencyNGN, domain.CurrencyUSD, "0.00067"},
	{domain.CurrencyNGN, domain.CurrencyEUR, "0.00057"},
	{domain.CurrencyNGN, domain.CurrencyGBP, "0.00049"},
}

// usdValues is how many US dollars one unit of each other payout currency buys.
// Every currency a recipient country resolves to needs an entry here.
var usdValues = []struct {
	currency domain.Currency
	usd      string
}{
	{"CAD", "0.73"},
	{"AUD", "0.66"},
	{"JPY", "0.0067"},
	{"CHF", "1.13"},
	{"SEK", "0.095"},
	{"NOK", "0.093"},
	{"DKK", "0.145"},
	{"PLN", "0.25"},
	{"ZAR", "0.054"},
	{"BRL", "0.18"},
	{"MXN", "0.055"},
	{"INR", "0.012"},
	{"CNY", "0.14"},
	{"SGD", "0.74"},
	{"HKD", "0.128"},
	{"KRW", "0.00073"},
	{"NZD", "0.60"},
	{"CZK", "0.043"},
	{"HUF", "0.0027"},
	{"RON", "0.22"},
	{"TRY", "0.029"},
	{"ILS", "0.27"},
	{"AED", "0.2723"},
	{"SAR", "0.2667"},
	{"KES", "0.0077"},
	{"GHS", "0.065"},
	{"EGP", "0.0205"},
	{"MAD", "0.10"},
	{"ARS", "0.00105"},
	{"CLP", "0.00105"},
	{"COP", "0.00025"},
	{"PEN", "0.27"},
	{"THB", "0.029"},
	{"VND", "0.000039"},
	{"IDR", "0.000061"},
	{"MYR", "0.22"},
	{"PHP", "0.0175"},
}

// DefaultRates is the demo rate sheet. Funding currencies are quoted against each other
// directly; every other payout currency is quoted into each funding currency through
// its dollar value, so a transfer to any supported country can be funded.
func DefaultRates() []domain.ConversionRate {
	rates := make([]domain.ConversionRate, 0, len(fundingQuotes)+4*len(usdValues))
	usdTo := make(map[domain.Currency]decimal.Decimal)

	for _, q := range fundingQuotes {
		rate := decimal.RequireFromString(q.rate)
		rates = append(rates, domain.ConversionRate{From: q.from, To: q.to, Rate: rate})
		if q.from == domain.CurrencyUSD {
			usdTo[q.to] = rate
		}
	}

	for _, v := range usdValues {
		usd := decimal.RequireFromString(v.usd)
		rates = append(rates,
			domain.ConversionRate{From: v.currency, To: domain.CurrencyUSD, Rate: usd},
			domain.ConversionRate{From: v.currency, To: domain.CurrencyEUR, Rate: usd.Mul(usdTo[domain.CurrencyEUR]).Round(8)},
			domain.ConversionRate{From: v.currency, To: domain.CurrencyGBP, Rate: usd.Mul(usdTo[domain.CurrencyGBP]).Round(8)},
			domain.ConversionRate{From: v.currency, To: domain.CurrencyNGN, Rate: usd.Mul(usdTo[domain.CurrencyNGN]).Round(8)},
		)
	}
	return rates
}
