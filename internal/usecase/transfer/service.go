// Package transfer hosts send-money wizards for authenticated sessions and delivers
// finalized requests to the result sink.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/session"
	"github.com/simaogato/sendmoney-backend/internal/usecase/selector"
	"github.com/simaogato/sendmoney-backend/internal/usecase/wizard"
)

// Recorder receives wizard activity. The Prometheus collector implements it.
type Recorder interface {
	WizardStarted()
	WizardClosed()
	Transition(event, step string)
	Rejection(event, reason string)
	Submitted(currency, method string, amount decimal.Decimal)
}

// View is the state of one hosted wizard
type View struct {
	ID      uuid.UUID
	Summary wizard.Summary
}

// DefaultIdleTTL is how long a wizard may go untouched before Sweep drops it
const DefaultIdleTTL = 30 * time.Minute

type hosted struct {
	mu     sync.Mutex
	owner  string
	wizard *wizard.Wizard
	draft  wizard.Draft

	lastSeen atomic.Int64 // unix nanos of the last lookup
}

// Service hosts one draft per wizard session
type Service struct {
	AccountRepo domain.AccountRepository
	ResultRepo  domain.TransferRequestRepository
	Selector    *selector.Selector
	Config      wizard.Config

	recorder   Recorder
	logger     *slog.Logger
	wizardOpts []wizard.Option
	ids        wizard.IDGenerator
	now        func() time.Time
	idleTTL    time.Duration

	mu     sync.RWMutex
	drafts map[uuid.UUID]*hosted
}

// Option customizes a Service
type Option func(*Service)

// WithRecorder sends wizard activity to r
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger replaces slog.Default
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithIdleTTL changes how long an untouched wizard is kept. Zero or less keeps wizards until discarded.
func WithIdleTTL(ttl time.Duration) Option {
	return func(s *Service) { s.idleTTL = ttl }
}

// WithClock replaces time.Now for idle tracking
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWizardOptions passes clock and id options to every wizard the service creates
func WithWizardOptions(opts ...wizard.Option) Option {
	return func(s *Service) { s.wizardOpts = append(s.wizardOpts, opts...) }
}

// NewService creates a new Service instance
func NewService(
	accountRepo domain.AccountRepository,
	resultRepo domain.TransferRequestRepository,
	sel *selector.Selector,
	cfg wizard.Config,
	opts ...Option,
) *Service {
	s := &Service{
		AccountRepo: accountRepo,
		ResultRepo:  resultRepo,
		Selector:    sel,
		Config:      cfg,
		recorder:    nopRecorder{},
		logger:      slog.Default(),
		ids:         &wizard.TimeIDGenerator{},
		now:         time.Now,
		idleTTL:     DefaultIdleTTL,
		drafts:      make(map[uuid.UUID]*hosted),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a wizard for the caller
// Logic:
//  1. Snapshot the accounts directory; the wizard reads balances from it for its whole life
//  2. Create an empty draft on the recipient step
//  3. Register it under a fresh id owned by the caller
//
// Every wizard shares the service's id generator, so transfer ids stay unique across sessions.
func (s *Service) Start(ctx context.Context) (*View, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.AccountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.Sweep()

	opts := append([]wizard.Option{wizard.WithIDGenerator(s.ids)}, s.wizardOpts...)
	h := &hosted{
		owner:  owner,
		wizard: wizard.New(s.Selector, accounts, s.Config, opts...),
		draft:  wizard.NewDraft(),
	}
	h.lastSeen.Store(s.now().UnixNano())
	id := uuid.New()

	s.mu.Lock()
	s.drafts[id] = h
	s.mu.Unlock()

	s.recorder.WizardStarted()
	s.logger.Debug("wizard started", slog.String("wizard_id", id.String()), slog.String("user_id", owner))

	return &View{ID: id, Summary: h.wizard.Summarize(h.draft)}, nil
}

// Dispatch applies one event to the caller's wizard.
// A rejected event leaves the draft untouched. Reaching Submitted saves the request
// to the result sink first; if that fails the draft stays on the review step.
func (s *Service) Dispatch(ctx context.Context, id uuid.UUID, ev wizard.Event) (*View, error) {
	h, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next, err := h.wizard.Reduce(h.draft, ev)
	if err != nil {
		s.recorder.Rejection(ev.Name(), Reason(err))
		level := slog.LevelDebug
		if _, ok := ev.(wizard.Submit); ok {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "wizard event rejected",
			slog.String("wizard_id", id.String()),
			slog.String("event", ev.Name()),
			slog.String("step", h.draft.Step.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if next.Submitted() && !h.draft.Submitted() {
		if err := s.ResultRepo.Save(ctx, next.Request); err != nil {
			s.logger.Error("failed to deliver transfer request",
				slog.String("wizard_id", id.String()),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("failed to save transfer request: %w", err)
		}
		req := next.Request
		s.recorder.Submitted(string(req.Currency), string(req.Method), req.Amount)
		s.logger.Info("transfer submitted",
			slog.String("wizard_id", id.String()),
			slog.String("transfer_id", req.ID),
			slog.String("amount", req.Amount.StringFixed(2)),
			slog.String("currency", string(req.Currency)),
			slog.String("method", string(req.Method)),
			slog.String("source_account_id", req.SourceAccountID.String()),
		)
	}

	h.draft = next
	s.recorder.Transition(ev.Name(), next.Step.String())
	s.logger.Debug("wizard transition",
		slog.String("wizard_id", id.String()),
		slog.String("event", ev.Name()),
		slog.String("step", next.Step.String()),
	)

	return &View{ID: id, Summary: h.wizard.Summarize(next)}, nil
}

// Get returns the current state of the caller's wizard
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	h, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return &View{ID: id, Summary: h.wizard.Summarize(h.draft)}, nil
}

// Discard drops the caller's wizard. Submitted requests stay in the result sink.
func (s *Service) Discard(ctx context.Context, id uuid.UUID) error {
	if _, err := s.lookup(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	_, ok := s.drafts[id]
	delete(s.drafts, id)
	s.mu.Unlock()

	if ok {
		s.recorder.WizardClosed()
		s.logger.Debug("wizard discarded", slog.String("wizard_id", id.String()))
	}
	return nil
}

// Sweep drops wizards nobody has touched for the idle TTL and returns how many it dropped.
// Submitted requests stay in the result sink.
func (s *Service) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL).UnixNano()

	var expired []uuid.UUID
	s.mu.Lock()
	for id, h := range s.drafts {
		if h.lastSeen.Load() < cutoff {
			delete(s.drafts, id)
			expired = append(expired, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		s.recorder.WizardClosed()
		s.logger.Debug("wizard expired", slog.String("wizard_id", id.String()))
	}
	return len(expired)
}

// Status returns a submitted transfer request by its id
func (s *Service) Status(ctx context.Context, transferID string) (*domain.TransferRequest, error) {
	return s.ResultRepo.GetByID(ctx, transferID)
}

func (s *Service) lookup(ctx context.Context, id uuid.UUID) (*hosted, error) {
	owner, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	h, ok := s.drafts[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if h.owner != owner {
		return nil, domain.ErrSessionForbidden
	}
	h.lastSeen.Store(s.now().UnixNano())
	return h, nil
}

func callerID(ctx context.Context) (string, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return "", domain.ErrSessionForbidden
	}
	return sess.UserID, nil
}

var reasons = []struct {
	err   error
	label string
}{
	{domain.ErrMissingRecipientField, "missing_recipient_field"},
	{domain.ErrInvalidAmount, "invalid_amount"},
	{domain.ErrInsufficientBalanceAllAccounts, "insufficient_balance_all_accounts"},
	{domain.ErrRateUnavailable, "rate_unavailable"},
	{domain.ErrNoSourceAccount, "no_source_account"},
	{domain.ErrInsufficientBalance, "insufficient_balance"},
	{domain.ErrInvalidPIN, "invalid_pin"},
	{domain.ErrFieldNotEditable, "field_not_editable"},
	{domain.ErrAlreadySubmitted, "already_submitted"},
	{domain.ErrUnknownField, "unknown_field"},
	{domain.ErrAccountNotFound, "account_not_found"},
	{domain.ErrInvalidTransition, "invalid_transition"},
}

// Reason turns a rejection into a low-cardinality metric label
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "other"
}

type nopRecorder struct{}

func (nopRecorder) WizardStarted()                            {}
func (nopRecorder) WizardClosed()                             {}
func (nopRecorder) Transition(string, string)                 {}
func (nopRecorder) Rejection(string, string)                  {}
func (nopRecorder) Submitted(string, string, decimal.Decimal) {}
