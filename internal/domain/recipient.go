package domain

import (
	"fmt"
	"strings"
)

// RecipientField names one editable field of a RecipientDraft
type RecipientField string

const (
	FieldName          RecipientField = "name"
	FieldCountry       RecipientField = "country"
	FieldBankName      RecipientField = "bank_name"
	FieldAccountNumber RecipientField = "account_number"
	FieldRoutingNumber RecipientField = "routing_number"
	FieldIBAN          RecipientField = "iban"
	FieldBIC           RecipientField = "bic"
	FieldSortCode      RecipientField = "sort_code"
)

// baseRecipientFields are required whatever the destination currency
var baseRecipientFields = []RecipientField{FieldName, FieldAccountNumber, FieldCountry, FieldBankName}

// currencyRecipientFields are the extra routing details each currency needs
var currencyRecipientFields = map[Currency][]RecipientField{
	CurrencyUSD: {FieldRoutingNumber},
	CurrencyEUR: {FieldIBAN, FieldBIC},
	CurrencyGBP: {FieldSortCode},
}

// RecipientDraft is the beneficiary being entered on the first wizard step
type RecipientDraft struct {
	Name          string
	Country       string
	BankName      string
	AccountNumber string
	RoutingNumber string // USD only
	IBAN          string // EUR only
	BIC           string // EUR only
	SortCode      string // GBP only
}

// Currency resolves the settlement currency from the recipient's country
func (r RecipientDraft) Currency() Currency {
	return ResolveCurrency(r.Country)
}

// Get returns the value of a field
func (r RecipientDraft) Get(field RecipientField) (string, error) {
	switch field {
	case FieldName:
		return r.Name, nil
	case FieldCountry:
		return r.Country, nil
	case FieldBankName:
		return r.BankName, nil
	case FieldAccountNumber:
		return r.AccountNumber, nil
	case FieldRoutingNumber:
		return r.RoutingNumber, nil
	case FieldIBAN:
		return r.IBAN, nil
	case FieldBIC:
		return r.BIC, nil
	case FieldSortCode:
		return r.SortCode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// With returns a copy of the draft with one field replaced.
// Every other field, including routing details for other currencies, is kept as is.
func (r RecipientDraft) With(field RecipientField, value string) (RecipientDraft, error) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldCountry:
		r.Country = value
	case FieldBankName:
		r.BankName = value
	case FieldAccountNumber:
		r.AccountNumber = value
	case FieldRoutingNumber:
		r.RoutingNumber = value
	case FieldIBAN:
		r.IBAN = value
	case FieldBIC:
		r.BIC = value
	case FieldSortCode:
		r.SortCode = value
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return r, nil
}

// RequiredFields lists the fields that must be filled for the resolved currency
func (r RecipientDraft) RequiredFields() []RecipientField {
	fields := make([]RecipientField, 0, len(baseRecipientFields)+2)
	fields = append(fields, baseRecipientFields...)
	fields = append(fields, currencyRecipientFields[r.Currency()]...)
	return fields
}

// MissingFields returns the required fields that are still blank.
// With strict=false only the base fields are checked.
func (r RecipientDraft) MissingFields(strict bool) []RecipientField {
	fields := baseRecipientFields
	if strict {
		fields = r.RequiredFields()
	}

	missing := make([]RecipientField, 0)
	for _, field := range fields {
		value, _ := r.Get(field)
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Validate returns ErrMissingRecipientField naming every blank required field
func (r RecipientDraft) Validate(strict bool) error {
	missing := r.MissingFields(strict)
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return fmt.Errorf("%w: %s", ErrMissingRecipientField, strings.Join(names, ", "))
}

// RoutingDetails returns the currency-specific fields that apply to this recipient,
// skipping blank ones. Details belonging to other currencies are ignored.
func (r RecipientDraft) RoutingDetails() map[RecipientField]string {
	details := make(map[RecipientField]string)
	for _, field := range currencyRecipientFields[r.Currency()] {
		if value, _ := r.Get(field); value != "" {
			details[field] = value
		}
	}
	return details
}

// FormatName title-cases a person or business name for display
func FormatName(name string) string {
	words := strings.Split(strings.ToLower(name), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
