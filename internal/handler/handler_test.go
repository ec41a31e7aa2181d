package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankledger/internal/calculation"
	"bankledger/internal/config"
	"bankledger/internal/repository"
	"bankledger/internal/service"
	"bankledger/pkg/metrics"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestRouter() *mux.Router {
	cfg := &config.Config{
		JWTSecret:            "test-secret",
		AnnualInterestRate:   decimal.RequireFromString("5"),
		SavingsWithdrawLimit: decimal.RequireFromString("1000"),
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	accounts := repository.NewMemoryAccountStore()
	users := repository.NewMemoryUserStore()
	calc := calculation.NewService(cfg)
	collector := metrics.NewCollector(logger)
	svc := service.NewService(accounts, users, calc, cfg, logger, collector, nil)
	h := NewHandler(svc, logger)

	r := mux.NewRouter()
	r.HandleFunc("/accounts", h.CreateAccount).Methods("POST")
	r.HandleFunc("/accounts/{id}/deposit", h.Deposit).Methods("POST")
	r.HandleFunc("/accounts/{id}/withdraw", h.Withdraw).Methods("POST")
	r.HandleFunc("/accounts/{id}/balance", h.GetBalance).Methods("GET")
	r.HandleFunc("/accounts/{id}/interest", h.CalculateInterest).Methods("POST")
	r.HandleFunc("/health", h.Health).Methods("GET")
	return r
}

func doRequest(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestCreateAccountEndpoint(t *testing.T) {
	r := newTestRouter()

	rec := doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"Alice","initial_balance":1000,"account_type":1}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["id"].(float64) != 1 {
		t.Errorf("expected id 1, got %v", body["id"])
	}
	if body["type"] != "checking" {
		t.Errorf("expected checking, got %v", body["type"])
	}
}

func TestCreateAccountEndpoint_Validation(t *testing.T) {
	r := newTestRouter()

	rec := doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"","initial_balance":1000,"account_type":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty owner name, got %d", rec.Code)
	}

	rec = doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"Alice","initial_balance":-5,"account_type":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative balance, got %d", rec.Code)
	}

	rec = doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"Alice","initial_balance":1000,"account_type":9}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown account type, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid account type." {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestDepositAndBalanceEndpoints(t *testing.T) {
	r := newTestRouter()
	doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"Alice","initial_balance":1000,"account_type":1}`)

	rec := doRequest(t, r, http.MethodPost, "/accounts/1/deposit", `{"amount":500}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, r, http.MethodGet, "/accounts/1/balance", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["balance"] != "1500.00" {
		t.Errorf("expected balance 1500.00, got %v", body["balance"])
	}
}

func TestDepositEndpoint_MissingAccount(t *testing.T) {
	r := newTestRouter()

	rec := doRequest(t, r, http.MethodPost, "/accounts/99/deposit", `{"amount":10}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestWithdrawEndpoint_InsufficientFunds(t *testing.T) {
	r := newTestRouter()
	doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"Alice","initial_balance":1000,"account_type":1}`)

	rec := doRequest(t, r, http.MethodPost, "/accounts/1/withdraw", `{"amount":1500}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Insufficient balance for withdrawal." {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestInterestEndpoint(t *testing.T) {
	r := newTestRouter()
	doRequest(t, r, http.MethodPost, "/accounts",
		`{"owner_name":"Bob","initial_balance":1000,"account_type":2}`)

	rec := doRequest(t, r, http.MethodPost, "/accounts/1/interest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["interest"] != "4.17" {
		t.Errorf("expected interest 4.17, got %v", body["interest"])
	}
}
