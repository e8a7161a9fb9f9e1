package wizard

import (
	"fmt"
	"regexp"
	"time"

	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/selector"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Config tunes the guards
type Config struct {
	// StrictRecipient also requires the currency-specific routing fields
	// (routing number, IBAN and BIC, sort code) before leaving the recipient step
	StrictRecipient bool
}

// Option customizes a Wizard
type Option func(*Wizard)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithIDGenerator replaces the default TXN<millis> generator
func WithIDGenerator(ids IDGenerator) Option {
	return func(w *Wizard) { w.ids = ids }
}

// Wizard holds the read-only collaborators of the state machine: the accounts snapshot,
// the selector (with its conversion table) and id/clock sources. All state lives in Draft.
type Wizard struct {
	selector *selector.Selector
	accounts []domain.FundingAccount
	cfg      Config
	now      func() time.Time
	ids      IDGenerator
}

// New creates a Wizard over an ordered accounts directory snapshot
func New(sel *selector.Selector, accounts []domain.FundingAccount, cfg Config, opts ...Option) *Wizard {
	snapshot := make([]domain.FundingAccount, len(accounts))
	copy(snapshot, accounts)

	w := &Wizard{
		selector: sel,
		accounts: snapshot,
		cfg:      cfg,
		now:      time.Now,
		ids:      &TimeIDGenerator{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Accounts returns the directory snapshot the wizard was created with
func (w *Wizard) Accounts() []domain.FundingAccount {
	out := make([]domain.FundingAccount, len(w.accounts))
	copy(out, w.accounts)
	return out
}

// Reduce applies one event to a draft.
// On error the returned draft is the input draft, unchanged, so callers can keep rendering it.
func (w *Wizard) Reduce(d Draft, ev Event) (Draft, error) {
	if d.Submitted() {
		return d, domain.ErrAlreadySubmitted
	}

	next := d.clone()
	var err error

	switch e := ev.(type) {
	case UpdateRecipient:
		if err = requireStep(d, StepCollectingRecipient); err != nil {
			break
		}
		next.Recipient, err = d.Recipient.With(e.Field, e.Value)

	case SetAmount:
		if err = requireStep(d, StepCollectingAmount); err != nil {
			break
		}
		next.Amount = e.Amount

	case SelectAccount:
		if err = requireStep(d, StepSelectingAccount); err != nil {
			break
		}
		if _, err = domain.FindAccount(w.accounts, e.AccountID); err != nil {
			break
		}
		id := e.AccountID
		next.SelectedAccountID = &id

	case EnterPIN:
		if err = requireStep(d, StepReviewAndAuthorize); err != nil {
			break
		}
		next.PIN = e.PIN

	case Next:
		next, err = w.advance(next)

	case Back:
		if d.Step <= StepCollectingRecipient {
			err = fmt.Errorf("%w: no step before %s", domain.ErrInvalidTransition, d.Step)
			break
		}
		next.Step = d.Step - 1

	case Submit:
		next, err = w.submit(next)

	default:
		err = fmt.Errorf("%w: unknown event %T", domain.ErrInvalidTransition, ev)
	}

	if err != nil {
		return d, err
	}
	return next, nil
}

// CanAdvance evaluates the guard of the current step without changing anything.
// A nil error means the Continue (or, on the review step, Confirm) control is enabled.
func (w *Wizard) CanAdvance(d Draft) error {
	switch d.Step {
	case StepCollectingRecipient:
		return d.Recipient.Validate(w.cfg.StrictRecipient)
	case StepCollectingAmount:
		_, err := domain.ParseAmount(d.Amount)
		return err
	case StepSelectingAccount:
		_, err := w.resolveCovering(d)
		return err
	case StepReviewAndAuthorize:
		if !pinPattern.MatchString(d.PIN) {
			return domain.ErrInvalidPIN
		}
		return nil
	default:
		return domain.ErrAlreadySubmitted
	}
}

// advance moves forward one step
func (w *Wizard) advance(d Draft) (Draft, error) {
	switch d.Step {
	case StepCollectingRecipient, StepCollectingAmount:
		if err := w.CanAdvance(d); err != nil {
			return d, err
		}

	case StepSelectingAccount:
		opt, err := w.resolveCovering(d)
		if err != nil {
			return d, err
		}
		// Leaving the step locks in the suggestion as if the user had picked it
		if d.SelectedAccountID == nil {
			id := opt.Account.ID
			d.SelectedAccountID = &id
		}

	case StepReviewAndAuthorize:
		return d, fmt.Errorf("%w: the review step is left by submitting", domain.ErrInvalidTransition)

	default:
		return d, fmt.Errorf("%w: cannot advance from %s", domain.ErrInvalidTransition, d.Step)
	}

	d.Step++
	return d, nil
}

// resolveCovering resolves the funding account and checks it can pay the converted amount
func (w *Wizard) resolveCovering(d Draft) (*selector.AccountOption, error) {
	amount, err := domain.ParseAmount(d.Amount)
	if err != nil {
		return nil, err
	}

	opt, err := w.selector.Resolve(amount, d.TargetCurrency(), w.accounts, d.SelectedAccountID)
	if err != nil {
		return nil, err
	}
	if !opt.Convertible {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrRateUnavailable, d.TargetCurrency(), opt.Account.Currency)
	}
	if opt.Insufficient {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientBalance, opt.ShortfallHint())
	}
	return opt, nil
}

// submit finalizes the draft. Balances are not re-checked here: the account step already
// did, and the amount cannot change on the review step.
func (w *Wizard) submit(d Draft) (Draft, error) {
	if d.Step != StepReviewAndAuthorize {
		return d, fmt.Errorf("%w: cannot submit from %s", domain.ErrInvalidTransition, d.Step)
	}
	if !pinPattern.MatchString(d.PIN) {
		return d, domain.ErrInvalidPIN
	}

	amount, err := domain.ParseAmount(d.Amount)
	if err != nil {
		return d, err
	}
	if d.SelectedAccountID == nil {
		return d, domain.ErrNoSourceAccount
	}

	now := w.now().UTC()
	method := d.Method()
	req := &domain.TransferRequest{
		ID:              w.ids.NewTransferID(now),
		Amount:          amount,
		Currency:        d.TargetCurrency(),
		RecipientName:   d.Recipient.Name,
		SourceAccountID: *d.SelectedAccountID,
		Method:          method,
		Fee:             method.Fee(),
		Status:          domain.TransferStatusProcessing,
		CreatedAt:       now,
	}
	if err := req.Validate(); err != nil {
		return d, err
	}

	d.Request = req
	d.Step = StepSubmitted
	return d, nil
}

func requireStep(d Draft, want Step) error {
	if d.Step != want {
		return fmt.Errorf("%w: on %s, expected %s", domain.ErrFieldNotEditable, d.Step, want)
	}
	return nil
}
