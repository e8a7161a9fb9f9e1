// Package http serves the plain HTTP side of the service: health, metrics and
// read-only transfer status pages.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/dashboard"
)

// Pinger reports whether a backing store is reachable. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// StatusReader looks up submitted transfers
type StatusReader interface {
	Status(ctx context.Context, transferID string) (*domain.TransferRequest, error)
}

// Handler wires the HTTP routes
type Handler struct {
	Transfers StatusReader
	Dashboard *dashboard.DashboardService
	Metrics   http.Handler
	DB        Pinger // nil when running on in-memory stores

	logger *slog.Logger
}

// NewHandler creates a new Handler
func NewHandler(transfers StatusReader, dash *dashboard.DashboardService, metrics http.Handler, db Pinger, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Transfers: transfers,
		Dashboard: dash,
		Metrics:   metrics,
		DB:        db,
		logger:    logger,
	}
}

// Router builds the chi router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", h.health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/accounts", h.accounts)
		r.Get("/transfers/{transferID}", h.transferStatus)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type transferResponse struct {
	ID               string `json:"id"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	DisplayAmount    string `json:"display_amount"`
	RecipientName    string `json:"recipient_name"`
	RecipientDisplay string `json:"recipient_display"`
	SourceAccountID  string `json:"source_account_id"`
	Method           string `json:"method"`
	Fee              string `json:"fee"`
	ProcessingTime   string `json:"processing_time"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

type accountResponse struct {
	ID               string `json:"id"`
	AccountName      string `json:"account_name"`
	BankName         string `json:"bank_name"`
	AccountNumber    string `json:"account_number"`
	Currency         string `json:"currency"`
	AvailableBalance string `json:"available_balance"`
	DisplayBalance   string `json:"display_balance"`
	HomeValue        string `json:"home_value,omitempty"`
}

type overviewResponse struct {
	HomeCurrency string            `json:"home_currency"`
	Total        string            `json:"total"`
	DisplayTotal string            `json:"display_total"`
	Skipped      int               `json:"skipped"`
	Accounts     []accountResponse `json:"accounts"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			h.logger.Warn("health check failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) transferStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transferID")

	tr, err := h.Transfers.Status(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTransferNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "transfer not found", Code: "NOT_FOUND"})
			return
		}
		h.logger.Error("failed to read transfer", slog.String("transfer_id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "INTERNAL"})
		return
	}

	writeJSON(w, http.StatusOK, transferResponse{
		ID:               tr.ID,
		Amount:           tr.Amount.StringFixed(2),
		Currency:         string(tr.Currency),
		DisplayAmount:    domain.FormatMoney(tr.Currency, tr.Amount),
		RecipientName:    tr.RecipientName,
		RecipientDisplay: tr.DisplayRecipientName(),
		SourceAccountID:  tr.SourceAccountID.String(),
		Method:           string(tr.Method),
		Fee:              tr.Fee.StringFixed(2),
		ProcessingTime:   tr.Method.ProcessingTime(),
		Status:           string(tr.Status),
		CreatedAt:        tr.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) accounts(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Dashboard.GetOverview(r.Context())
	if err != nil {
		h.logger.Error("failed to build accounts overview", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "INTERNAL"})
		return
	}

	resp := overviewResponse{
		HomeCurrency: string(overview.HomeCurrency),
		Total:        overview.Total.StringFixed(2),
		DisplayTotal: domain.FormatMoney(overview.HomeCurrency, overview.Total),
		Skipped:      overview.Skipped,
		Accounts:     make([]accountResponse, 0, len(overview.Accounts)),
	}
	for _, a := range overview.Accounts {
		entry := accountResponse{
			ID:               a.Account.ID.String(),
			AccountName:      a.Account.AccountName,
			BankName:         a.Account.BankName,
			AccountNumber:    a.Account.FullAccountNumber,
			Currency:         string(a.Account.Currency),
			AvailableBalance: a.Account.AvailableBalance.StringFixed(2),
			DisplayBalance:   domain.FormatMoney(a.Account.Currency, a.Account.AvailableBalance),
		}
		if a.Convertible {
			entry.HomeValue = a.HomeValue.StringFixed(2)
		}
		resp.Accounts = append(resp.Accounts, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
