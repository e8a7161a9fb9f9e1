package wizard

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/selector"
)

// Summary is everything a rendering surface needs to draw the current step.
// It is derived from a Draft and never stored.
type Summary struct {
	Step           Step
	Draft          Draft
	TargetCurrency domain.Currency
	Method         domain.TransferMethod
	Fee            decimal.Decimal
	ProcessingTime string

	// Recipient step
	MissingFields  []domain.RecipientField
	RoutingDetails map[domain.RecipientField]string

	// Amount onwards; zero when the amount does not parse
	Amount      decimal.Decimal
	AmountValid bool

	// Account step onwards
	Suggested       *domain.FundingAccount
	InsufficientAll bool
	Source          *selector.AccountOption
	Options         []selector.AccountOption

	// Blocker is the guard error of the current step, nil when Continue is enabled
	Blocker error
}

// CanContinue reports whether the current step's guard holds
func (s Summary) CanContinue() bool {
	return s.Blocker == nil
}

// Summarize derives the display state for a draft
func (w *Wizard) Summarize(d Draft) Summary {
	target := d.TargetCurrency()
	method := d.Method()

	s := Summary{
		Step:           d.Step,
		Draft:          d.clone(),
		TargetCurrency: target,
		Method:         method,
		Fee:            method.Fee(),
		ProcessingTime: method.ProcessingTime(),
		MissingFields:  d.Recipient.MissingFields(w.cfg.StrictRecipient),
		RoutingDetails: d.Recipient.RoutingDetails(),
		Blocker:        w.CanAdvance(d),
	}

	amount, err := domain.ParseAmount(d.Amount)
	if err != nil {
		return s
	}
	s.Amount = amount
	s.AmountValid = true

	s.Options = w.selector.Options(amount, target, w.accounts)

	suggested, err := w.selector.Suggest(amount, target, w.accounts)
	if errors.Is(err, domain.ErrInsufficientBalanceAllAccounts) {
		s.InsufficientAll = true
	} else if err == nil {
		s.Suggested = suggested
	}

	if source, err := w.selector.Resolve(amount, target, w.accounts, d.SelectedAccountID); err == nil {
		s.Source = source
	}

	return s
}
