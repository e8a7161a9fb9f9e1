package domain

import (
	"regexp"
	"strings"
)

// Currency is an ISO 4217 currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyNGN Currency = "NGN"
)

// DefaultCurrency is used when a recipient country cannot be resolved
const DefaultCurrency = CurrencyUSD

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyNames holds the display names of every currency a recipient country can resolve to
var currencyNames = map[Currency]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"NGN": "Nigerian Naira",
	"CAD": "Canadian Dollar",
	"AUD": "Australian Dollar",
	"JPY": "Japanese Yen",
	"CHF": "Swiss Franc",
	"SEK": "Swedish Krona",
	"NOK": "Norwegian Krone",
	"DKK": "Danish Krone",
	"PLN": "Polish Zloty",
	"ZAR": "South African Rand",
	"BRL": "Brazilian Real",
	"MXN": "Mexican Peso",
	"INR": "Indian Rupee",
	"CNY": "Chinese Yuan",
	"SGD": "Singapore Dollar",
	"HKD": "Hong Kong Dollar",
	"KRW": "South Korean Won",
	"NZD": "New Zealand Dollar",
	"CZK": "Czech Koruna",
	"HUF": "Hungarian Forint",
	"RON": "Romanian Leu",
	"TRY": "Turkish Lira",
	"ILS": "Israeli Shekel",
	"AED": "UAE Dirham",
	"SAR": "Saudi Riyal",
	"KES": "Kenyan Shilling",
	"GHS": "Ghanaian Cedi",
	"EGP": "Egyptian Pound",
	"MAD": "Moroccan Dirham",
	"ARS": "Argentine Peso",
	"CLP": "Chilean Peso",
	"COP": "Colombian Peso",
	"PEN": "Peruvian Sol",
	"THB": "Thai Baht",
	"VND": "Vietnamese Dong",
	"IDR": "Indonesian Rupiah",
	"MYR": "Malaysian Ringgit",
	"PHP": "Philippine Peso",
}

var currencySymbols = map[Currency]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
}

// ParseCurrency normalizes a currency code and checks it against the known set
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !currencyCodePattern.MatchString(string(c)) {
		return "", ErrInvalidCurrency
	}
	if !c.IsKnown() {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

// IsKnown reports whether the currency belongs to the supported set
func (c Currency) IsKnown() bool {
	_, ok := currencyNames[c]
	return ok
}

// Name returns the display name, or the code itself for unnamed currencies
func (c Currency) Name() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return string(c)
}

// Symbol returns the display symbol, falling back to the code followed by a space
func (c Currency) Symbol() string {
	if symbol, ok := currencySymbols[c]; ok {
		return symbol
	}
	return string(c) + " "
}

func (c Currency) String() string {
	return string(c)
}
