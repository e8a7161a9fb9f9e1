package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/sendmoney-backend/internal/adapter/metrics"
	"github.com/simaogato/sendmoney-backend/internal/adapter/repository/memory"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/usecase/conversion"
	"github.com/simaogato/sendmoney-backend/internal/usecase/dashboard"
)

// MockStatusReader is a mock implementation of StatusReader
type MockStatusReader struct {
	mock.Mock
}

func (m *MockStatusReader) Status(ctx context.Context, transferID string) (*domain.TransferRequest, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferRequest), args.Error(1)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newTestHandler(t *testing.T, reader StatusReader, db Pinger) http.Handler {
	t.Helper()
	accounts := memory.NewAccountRepository()
	require.NoError(t, accounts.Create(context.Background(), &domain.FundingAccount{
		ID: uuid.MustParse("30000000-0000-0000-0000-000000000001"), Currency: domain.CurrencyEUR,
		AvailableBalance: decimal.NewFromInt(100), AccountName: "EUR Savings", BankName: "Deutsche Bank",
	}))
	table, err := conversion.NewTable(conversion.DefaultRates())
	require.NoError(t, err)

	collector := metrics.NewCollector()
	collector.WizardStarted()

	h := NewHandler(reader, dashboard.NewDashboardService(accounts, table, domain.CurrencyUSD), collector.Handler(), db, nil)
	return h.Router()
}

func TestRouter_TransferStatus(t *testing.T) {
	reader := new(MockStatusReader)
	router := newTestHandler(t, reader, nil)

	reader.On("Status", mock.Anything, "TXN1").Return(&domain.TransferRequest{
		ID:              "TXN1",
		Amount:          decimal.NewFromInt(1250),
		Currency:        domain.CurrencyEUR,
		RecipientName:   "greta weber",
		SourceAccountID: uuid.MustParse("30000000-0000-0000-0000-000000000001"),
		Method:          domain.MethodSEPA,
		Fee:             decimal.Zero,
		Status:          domain.TransferStatusProcessing,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil)
	reader.On("Status", mock.Anything, "TXN2").Return(nil, domain.ErrTransferNotFound)
	reader.On("Status", mock.Anything, "TXN3").Return(nil, errors.New("connection reset"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/transfers/TXN1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body transferResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "1250.00", body.Amount)
	assert.Equal(t, "€1,250.00", body.DisplayAmount)
	assert.Equal(t, "Greta Weber", body.RecipientDisplay)
	assert.Equal(t, "1-2 business days", body.ProcessingTime)
	assert.Equal(t, "PROCESSING", body.Status)
	assert.Equal(t, "2026-01-02T03:04:05Z", body.CreatedAt)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/transfers/TXN2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/transfers/TXN3", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	reader.AssertExpectations(t)
}

func TestRouter_Accounts(t *testing.T) {
	router := newTestHandler(t, new(MockStatusReader), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body overviewResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "USD", body.HomeCurrency)
	assert.Equal(t, "118.00", body.Total)
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, "€100.00", body.Accounts[0].DisplayBalance)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newTestHandler(t, new(MockStatusReader), pingFunc(func(context.Context) error { return nil }))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sendmoney_wizards_started_total 1")

	down := newTestHandler(t, new(MockStatusReader), pingFunc(func(context.Context) error { return errors.New("db down") }))
	rec = httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
