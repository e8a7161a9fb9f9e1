package domain

// Country pairs a destination country with the currency a transfer to it settles in
type Country struct {
	Name     string
	Currency Currency
}

// Countries is the ordered destination directory shown to the sender
var Countries = []Country{
	{Name: "United States", Currency: "USD"},
	{Name: "United Kingdom", Currency: "GBP"},
	{Name: "Germany", Currency: "EUR"},
	{Name: "France", Currency: "EUR"},
	{Name: "Spain", Currency: "EUR"},
	{Name: "Italy", Currency: "EUR"},
	{Name: "Netherlands", Currency: "EUR"},
	{Name: "Belgium", Currency: "EUR"},
	{Name: "Nigeria", Currency: "NGN"},
	{Name: "Canada", Currency: "CAD"},
	{Name: "Australia", Currency: "AUD"},
	{Name: "Japan", Currency: "JPY"},
	{Name: "Switzerland", Currency: "CHF"},
	{Name: "Sweden", Currency: "SEK"},
	{Name: "Norway", Currency: "NOK"},
	{Name: "Denmark", Currency: "DKK"},
	{Name: "Poland", Currency: "PLN"},
	{Name: "South Africa", Currency: "ZAR"},
	{Name: "Brazil", Currency: "BRL"},
	{Name: "Mexico", Currency: "MXN"},
	{Name: "India", Currency: "INR"},
	{Name: "China", Currency: "CNY"},
	{Name: "Singapore", Currency: "SGD"},
	{Name: "Hong Kong", Currency: "HKD"},
	{Name: "South Korea", Currency: "KRW"},
	{Name: "New Zealand", Currency: "NZD"},
	{Name: "Ireland", Currency: "EUR"},
	{Name: "Portugal", Currency: "EUR"},
	{Name: "Austria", Currency: "EUR"},
	{Name: "Finland", Currency: "EUR"},
	{Name: "Greece", Currency: "EUR"},
	{Name: "Czech Republic", Currency: "CZK"},
	{Name: "Hungary", Currency: "HUF"},
	{Name: "Romania", Currency: "RON"},
	{Name: "Turkey", Currency: "TRY"},
	{Name: "Israel", Currency: "ILS"},
	{Name: "UAE", Currency: "AED"},
	{Name: "Saudi Arabia", Currency: "SAR"},
	{Name: "Kenya", Currency: "KES"},
	{Name: "Ghana", Currency: "GHS"},
	{Name: "Egypt", Currency: "EGP"},
	{Name: "Morocco", Currency: "MAD"},
	{Name: "Argentina", Currency: "ARS"},
	{Name: "Chile", Currency: "CLP"},
	{Name: "Colombia", Currency: "COP"},
	{Name: "Peru", Currency: "PEN"},
	{Name: "Thailand", Currency: "THB"},
	{Name: "Vietnam", Currency: "VND"},
	{Name: "Indonesia", Currency: "IDR"},
	{Name: "Malaysia", Currency: "MYR"},
	{Name: "Philippines", Currency: "PHP"},
}

var countriesByName = func() map[string]Country {
	m := make(map[string]Country, len(Countries))
	for _, c := range Countries {
		m[c.Name] = c
	}
	return m
}()

// LookupCountry finds a destination country by its exact display name
func LookupCountry(name string) (Country, bool) {
	c, ok := countriesByName[name]
	return c, ok
}

// ResolveCurrency returns the settlement currency for a country name.
// Unknown or empty countries resolve to DefaultCurrency.
func ResolveCurrency(country string) Currency {
	if c, ok := LookupCountry(country); ok {
		return c.Currency
	}
	return DefaultCurrency
}
