package domain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// amountPattern accepts plain decimals with at most 12 integer digits and 2 decimals.
// Exponents, signs and separators are rejected.
var amountPattern = regexp.MustCompile(`^[0-9]{1,12}(\.[0-9]{1,2})?$`)

// FormatMoney renders an amount with its currency symbol and two decimals, e.g. "€1,250.00"
func FormatMoney(currency Currency, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	whole, cents, _ := strings.Cut(amount.StringFixed(2), ".")
	if n, err := strconv.ParseUint(whole, 10, 64); err == nil {
		whole = moneyPrinter.Sprintf("%d", n)
	}
	return sign + currency.Symbol() + whole + "." + cents
}

// ParseAmount parses a user-entered amount. Only plain decimals greater than zero are accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
