package wizard

import (
	"github.com/google/uuid"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// Step is a state of the send-money wizard
type Step int

const (
	StepCollectingRecipient Step = iota + 1
	StepCollectingAmount
	StepSelectingAccount
	StepReviewAndAuthorize
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepCollectingRecipient:
		return "COLLECTING_RECIPIENT"
	case StepCollectingAmount:
		return "COLLECTING_AMOUNT"
	case StepSelectingAccount:
		return "SELECTING_ACCOUNT"
	case StepReviewAndAuthorize:
		return "REVIEW_AND_AUTHORIZE"
	case StepSubmitted:
		return "SUBMITTED"
	default:
		return "UNKNOWN"
	}
}

// ParseStep is the inverse of Step.String
func ParseStep(s string) (Step, bool) {
	for step := StepCollectingRecipient; step <= StepSubmitted; step++ {
		if step.String() == s {
			return step, true
		}
	}
	return 0, false
}

// Draft is the full wizard state. It is a value: Reduce returns a new Draft and never
// mutates the one it was given. Answers from earlier steps are kept across Back and Next.
type Draft struct {
	Step              Step
	Recipient         domain.RecipientDraft
	Amount            string
	SelectedAccountID *uuid.UUID
	PIN               string
	Request           *domain.TransferRequest // set on Submitted
}

// NewDraft returns an empty draft on the first step
func NewDraft() Draft {
	return Draft{Step: StepCollectingRecipient}
}

// TargetCurrency is derived from the recipient's country
func (d Draft) TargetCurrency() domain.Currency {
	return d.Recipient.Currency()
}

// Method is derived from the target currency and the recipient's country
func (d Draft) Method() domain.TransferMethod {
	return domain.DeriveMethod(d.TargetCurrency(), d.Recipient.Country)
}

// Submitted reports whether the draft reached the terminal state
func (d Draft) Submitted() bool {
	return d.Step == StepSubmitted
}

func (d Draft) clone() Draft {
	if d.SelectedAccountID != nil {
		id := *d.SelectedAccountID
		d.SelectedAccountID = &id
	}
	if d.Request != nil {
		req := *d.Request
		d.Request = &req
	}
	return d
}
