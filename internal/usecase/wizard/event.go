package wizard

import (
	"github.com/google/uuid"
	"github.com/simaogato/sendmoney-backend/internal/domain"
)

// Event is a discrete user input fed to Reduce
type Event interface {
	Name() string
}

// UpdateRecipient edits one recipient field. Allowed on the recipient step only.
type UpdateRecipient struct {
	Field domain.RecipientField
	Value string
}

// SetAmount replaces the amount text. Allowed on the amount step only.
type SetAmount struct {
	Amount string
}

// SelectAccount overrides the suggested funding account for the rest of the session.
// Allowed on the account step only.
type SelectAccount struct {
	AccountID uuid.UUID
}

// Next advances one step when the current step's guard holds
type Next struct{}

// Back returns to the previous step, keeping every answer
type Back struct{}

// EnterPIN replaces the PIN text. Allowed on the review step only.
type EnterPIN struct {
	PIN string
}

// Submit finalizes the transfer when the PIN is well formed
type Submit struct{}

func (UpdateRecipient) Name() string { return "update_recipient" }
func (SetAmount) Name() string       { return "set_amount" }
func (SelectAccount) Name() string   { return "select_account" }
func (Next) Name() string            { return "next" }
func (Back) Name() string            { return "back" }
func (EnterPIN) Name() string        { return "enter_pin" }
func (Submit) Name() string          { return "submit" }
