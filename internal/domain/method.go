package domain

import "github.com/shopspring/decimal"

// TransferMethod is the payment rail a transfer is sent over
type TransferMethod string

const (
	MethodACH            TransferMethod = "ACH"
	MethodSEPA           TransferMethod = "SEPA"
	MethodFasterPayments TransferMethod = "Faster Payments"
	MethodWire           TransferMethod = "Wire Transfer"
)

// WireTransferFee is charged on every Wire Transfer, in USD
var WireTransferFee = decimal.RequireFromString("25.00")

// DeriveMethod picks the rail from the destination currency and country.
// Logic:
//   - USD to the United States goes over ACH
//   - EUR anywhere goes over SEPA
//   - GBP to the United Kingdom goes over Faster Payments
//   - everything else is a Wire Transfer
func DeriveMethod(currency Currency, country string) TransferMethod {
	switch {
	case currency == CurrencyUSD && country == "United States":
		return MethodACH
	case currency == CurrencyEUR:
		return MethodSEPA
	case currency == CurrencyGBP && country == "United Kingdom":
		return MethodFasterPayments
	default:
		return MethodWire
	}
}

// Fee returns the flat fee for the method
func (m TransferMethod) Fee() decimal.Decimal {
	if m == MethodWire {
		return WireTransferFee
	}
	return decimal.Zero
}

// ProcessingTime returns the human readable settlement estimate
func (m TransferMethod) ProcessingTime() string {
	switch m {
	case MethodACH:
		return "1-3 business days"
	case MethodSEPA:
		return "1-2 business days"
	case MethodFasterPayments:
		return "Within minutes"
	default:
		return "Same day"
	}
}
