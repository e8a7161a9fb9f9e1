package selector

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/conversion"
)

// AccountOption is one funding account evaluated against a requested transfer
type AccountOption struct {
	Account         domain.FundingAccount
	Rate            decimal.Decimal // target -> account currency
	ConvertedAmount decimal.Decimal // requested amount in the account's currency
	NeedsConversion bool
	Convertible     bool // false when no rate exists for target -> account currency
	Insufficient    bool
	Shortfall       decimal.Decimal // how much more the account needs, in its currency
	BalanceAfter    decimal.Decimal
}

// Covers reports whether the account can pay the transfer
func (o AccountOption) Covers() bool {
	return o.Convertible && !o.Insufficient
}

// ShortfallHint renders the "need N more" message, empty when the account covers the amount
func (o AccountOption) ShortfallHint() string {
	if !o.Insufficient || !o.Convertible {
		return ""
	}
	return "Need " + domain.FormatMoney(o.Account.Currency, o.Shortfall) + " more"
}

// Selector ranks funding accounts for a transfer
type Selector struct {
	rates        *conversion.Table
	homeCurrency domain.Currency
}

// NewSelector creates a Selector. homeCurrency is preferred when no account in the
// transfer currency can pay and a converted payment has to be suggested.
func NewSelector(rates *conversion.Table, homeCurrency domain.Currency) *Selector {
	if homeCurrency == "" {
		homeCurrency = domain.DefaultCurrency
	}
	return &Selector{
		rates:        rates,
		homeCurrency: homeCurrency,
	}
}

// Rates exposes the conversion table the selector works with
func (s *Selector) Rates() *conversion.Table {
	return s.rates
}

// Evaluate converts the requested amount into the account's currency and checks the balance
func (s *Selector) Evaluate(amount decimal.Decimal, target domain.Currency, account domain.FundingAccount) AccountOption {
	opt := AccountOption{
		Account:         account,
		NeedsConversion: account.Currency != target,
	}

	rate, err := s.rates.Rate(target, account.Currency)
	if err != nil {
		// No rate: the account can be listed but never pays
		opt.Insufficient = true
		return opt
	}

	opt.Convertible = true
	opt.Rate = rate
	if opt.NeedsConversion {
		opt.ConvertedAmount = amount.Mul(rate)
	} else {
		opt.ConvertedAmount = amount
	}
	opt.BalanceAfter = account.AvailableBalance.Sub(opt.ConvertedAmount)
	if account.AvailableBalance.LessThan(opt.ConvertedAmount) {
		opt.Insufficient = true
		opt.Shortfall = opt.ConvertedAmount.Sub(account.AvailableBalance)
	}
	return opt
}

// Options evaluates every account, keeping the directory order
func (s *Selector) Options(amount decimal.Decimal, target domain.Currency, accounts []domain.FundingAccount) []AccountOption {
	options := make([]AccountOption, 0, len(accounts))
	for _, acc := range accounts {
		options = append(options, s.Evaluate(amount, target, acc))
	}
	return options
}

// Suggest picks the account to fund a transfer of amount in target currency.
// Logic (first match in directory order, no best-rate sorting):
//  1. An account in the target currency whose balance covers the amount
//  2. Otherwise, among accounts whose balance covers the converted amount,
//     the first one in the home currency, else the first one of any currency
//  3. Otherwise ErrRateUnavailable when no account can be converted to at all,
//     else ErrInsufficientBalanceAllAccounts
func (s *Selector) Suggest(amount decimal.Decimal, target domain.Currency, accounts []domain.FundingAccount) (*domain.FundingAccount, error) {
	anyConvertible := false
	for i := range accounts {
		if accounts[i].Currency != target {
			continue
		}
		anyConvertible = true
		if accounts[i].AvailableBalance.GreaterThanOrEqual(amount) {
			return &accounts[i], nil
		}
	}

	var firstCovering *domain.FundingAccount
	for i := range accounts {
		if accounts[i].Currency == target {
			continue
		}
		opt := s.Evaluate(amount, target, accounts[i])
		if opt.Convertible {
			anyConvertible = true
		}
		if !opt.Covers() {
			continue
		}
		if accounts[i].Currency == s.homeCurrency {
			return &accounts[i], nil
		}
		if firstCovering == nil {
			firstCovering = &accounts[i]
		}
	}
	if firstCovering != nil {
		return firstCovering, nil
	}
	if len(accounts) > 0 && !anyConvertible {
		return nil, fmt.Errorf("%w: no account can be funded from %s", domain.ErrRateUnavailable, target)
	}

	return nil, domain.ErrInsufficientBalanceAllAccounts
}

// Resolve returns the account that will fund the transfer: the user's explicit choice when
// selectedID is set, otherwise the suggestion. The explicit choice is returned even when it
// cannot cover the amount; callers check Covers.
func (s *Selector) Resolve(
	amount decimal.Decimal,
	target domain.Currency,
	accounts []domain.FundingAccount,
	selectedID *uuid.UUID,
) (*AccountOption, error) {
	if selectedID != nil {
		acc, err := domain.FindAccount(accounts, *selectedID)
		if err != nil {
			return nil, err
		}
		opt := s.Evaluate(amount, target, *acc)
		return &opt, nil
	}

	suggested, err := s.Suggest(amount, target, accounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNoSourceAccount, err)
	}
	opt := s.Evaluate(amount, target, *suggested)
	return &opt, nil
}
