package grpc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/dashboard"
	"github.com/simaogato/sendmoney-backend/internal/usecase/selector"
	"github.com/simaogato/sendmoney-backend/internal/usecase/transfer"
	"github.com/simaogato/sendmoney-backend/internal/usecase/wizard"
)

// Request fields
const (
	fieldWizardID   = "wizard_id"
	fieldEvent      = "event"
	fieldField      = "field"
	fieldValue      = "value"
	fieldAmount     = "amount"
	fieldAccountID  = "account_id"
	fieldPIN        = "pin"
	fieldTransferID = "transfer_id"
)

func stringField(in *structpb.Struct, name string) string {
	if in == nil {
		return ""
	}
	return in.GetFields()[name].GetStringValue()
}

func uuidField(in *structpb.Struct, name string) (uuid.UUID, error) {
	raw := stringField(in, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", name, err)
	}
	return id, nil
}

// decodeEvent builds a wizard event from a Dispatch request.
// The event field carries the event name; the remaining fields depend on it.
func decodeEvent(in *structpb.Struct) (wizard.Event, error) {
	name := stringField(in, fieldEvent)
	switch name {
	case wizard.UpdateRecipient{}.Name():
		return wizard.UpdateRecipient{
			Field: domain.RecipientField(stringField(in, fieldField)),
			Value: stringField(in, fieldValue),
		}, nil
	case wizard.SetAmount{}.Name():
		return wizard.SetAmount{Amount: stringField(in, fieldAmount)}, nil
	case wizard.SelectAccount{}.Name():
		id, err := uuidField(in, fieldAccountID)
		if err != nil {
			return nil, err
		}
		return wizard.SelectAccount{AccountID: id}, nil
	case wizard.Next{}.Name():
		return wizard.Next{}, nil
	case wizard.Back{}.Name():
		return wizard.Back{}, nil
	case wizard.EnterPIN{}.Name():
		return wizard.EnterPIN{PIN: stringField(in, fieldPIN)}, nil
	case wizard.Submit{}.Name():
		return wizard.Submit{}, nil
	case "":
		return nil, status.Error(codes.InvalidArgument, "event is required")
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown event %q", name)
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func encodeView(v *transfer.View) (*structpb.Struct, error) {
	s := v.Summary
	d := s.Draft

	recipient := map[string]any{}
	for _, f := range []domain.RecipientField{
		domain.FieldName, domain.FieldCountry, domain.FieldBankName, domain.FieldAccountNumber,
		domain.FieldRoutingNumber, domain.FieldIBAN, domain.FieldBIC, domain.FieldSortCode,
	} {
		value, _ := d.Recipient.Get(f)
		recipient[string(f)] = value
	}

	missing := make([]any, 0, len(s.MissingFields))
	for _, f := range s.MissingFields {
		missing = append(missing, string(f))
	}

	options := make([]any, 0, len(s.Options))
	for _, opt := range s.Options {
		options = append(options, encodeOption(opt))
	}

	out := map[string]any{
		"wizard_id":        v.ID.String(),
		"step":             s.Step.String(),
		"target_currency":  string(s.TargetCurrency),
		"currency_name":    s.TargetCurrency.Name(),
		"method":           string(s.Method),
		"fee":              money(s.Fee),
		"processing_time":  s.ProcessingTime,
		"can_continue":     s.CanContinue(),
		"blocker":          "",
		"recipient":        recipient,
		"missing_fields":   missing,
		"amount":           d.Amount,
		"amount_valid":     s.AmountValid,
		"insufficient_all": s.InsufficientAll,
		"options":          options,
	}
	if s.Blocker != nil {
		out["blocker"] = s.Blocker.Error()
	}
	if d.SelectedAccountID != nil {
		out["selected_account_id"] = d.SelectedAccountID.String()
	}
	if s.Suggested != nil {
		out["suggested_account_id"] = s.Suggested.ID.String()
	}
	if s.Source != nil {
		out["source"] = encodeOption(*s.Source)
	}
	if d.Request != nil {
		out["request"] = encodeRequest(d.Request)
	}

	st, err := structpb.NewStruct(out)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode wizard: %v", err)
	}
	return st, nil
}

func encodeOption(opt selector.AccountOption) map[string]any {
	return map[string]any{
		"account_id":        opt.Account.ID.String(),
		"account_name":      opt.Account.AccountName,
		"bank_name":         opt.Account.BankName,
		"account_number":    opt.Account.FullAccountNumber,
		"currency":          string(opt.Account.Currency),
		"available_balance": money(opt.Account.AvailableBalance),
		"rate":              opt.Rate.String(),
		"converted_amount":  money(opt.ConvertedAmount),
		"needs_conversion":  opt.NeedsConversion,
		"convertible":       opt.Convertible,
		"insufficient":      opt.Insufficient,
		"shortfall":         money(opt.Shortfall),
		"shortfall_hint":    opt.ShortfallHint(),
		"balance_after":     money(opt.BalanceAfter),
	}
}

func encodeRequest(req *domain.TransferRequest) map[string]any {
	return map[string]any{
		"transfer_id":       req.ID,
		"amount":            money(req.Amount),
		"currency":          string(req.Currency),
		"recipient_name":    req.RecipientName,
		"recipient_display": req.DisplayRecipientName(),
		"source_account_id": req.SourceAccountID.String(),
		"method":            string(req.Method),
		"fee":               money(req.Fee),
		"processing_time":   req.Method.ProcessingTime(),
		"status":            string(req.Status),
		"created_at":        req.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func encodeOverview(o *dashboard.OverviewResult) (*structpb.Struct, error) {
	accounts := make([]any, 0, len(o.Accounts))
	for _, a := range o.Accounts {
		entry := map[string]any{
			"account_id":        a.Account.ID.String(),
			"account_name":      a.Account.AccountName,
			"bank_name":         a.Account.BankName,
			"account_number":    a.Account.FullAccountNumber,
			"currency":          string(a.Account.Currency),
			"available_balance": money(a.Account.AvailableBalance),
			"display_balance":   domain.FormatMoney(a.Account.Currency, a.Account.AvailableBalance),
			"convertible":       a.Convertible,
		}
		if a.Convertible {
			entry["home_value"] = money(a.HomeValue)
		}
		accounts = append(accounts, entry)
	}

	st, err := structpb.NewStruct(map[string]any{
		"home_currency": string(o.HomeCurrency),
		"total":         money(o.Total),
		"display_total": domain.FormatMoney(o.HomeCurrency, o.Total),
		"skipped":       o.Skipped,
		"accounts":      accounts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode accounts: %w", err)
	}
	return st, nil
}
