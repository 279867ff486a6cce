// Package handlers implements the HTTP endpoints: statement upload,
// dashboard, advanced analytics, chat, and transaction listing.
package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/finwise-app/finwise/internal/analytics"
	"github.com/finwise-app/finwise/internal/api/middleware"
	"github.com/finwise-app/finwise/internal/pipeline"
	"github.com/finwise-app/finwise/internal/store"
)

const noDataMessage = "No data found. Please upload a CSV first."

// DashboardHandler serves the dashboard summary for the live upload.
type DashboardHandler struct {
	current *store.Current
	log     zerolog.Logger
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(current *store.Current, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{current: current, log: log}
}

// Dashboard handles POST /api/dashboard.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	set, _, ok := h.current.Snapshot()
	if !ok || set.Len() == 0 {
		middleware.WriteError(w, http.StatusBadRequest, noDataMessage)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, analytics.BuildDashboard(set))
}

// AnalyticsHandler serves the advanced statistical analysis.
type AnalyticsHandler struct {
	current *store.Current
	log     zerolog.Logger
}

// NewAnalyticsHandler creates an analytics handler.
func NewAnalyticsHandler(current *store.Current, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{current: current, log: log}
}

// Analytics handles POST /api/analytics.
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	set, _, ok := h.current.Snapshot()
	if !ok || set.Len() == 0 {
		middleware.WriteError(w, http.StatusBadRequest, noDataMessage)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, analytics.BuildAdvanced(set))
}

// TransactionsHandler lists the canonical transaction set.
type TransactionsHandler struct {
	current *store.Current
	log     zerolog.Logger
}

// NewTransactionsHandler creates a transactions handler.
func NewTransactionsHandler(current *store.Current, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{current: current, log: log}
}

// ListTransactions handles GET /api/transactions.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	set, _, ok := h.current.Snapshot()
	if !ok {
		middleware.WriteError(w, http.StatusBadRequest, noDataMessage)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]any{
		"bank":         set.Bank,
		"columns":      set.Columns,
		"transactions": set.Transactions,
		"count":        set.Len(),
		"report":       h.current.Report(),
	})
}

// CategorizeTest handles GET /api/categorize/test, a smoke check that the
// keyword table behaves on known narrations.
func CategorizeTest(w http.ResponseWriter, r *http.Request) {
	samples := []string{
		"UPI/INDIAN CLEARING/Sent using Paytm",
		"IMPS/UPSTOXSECURITIES",
		"UPI/NETFLIX.COM/Monthly autorenew",
		"UPI/Flipkart/Purchase",
		"UPI/CRED CASHBACK EARNED",
	}
	results := make(map[string]string, len(samples))
	for _, desc := range samples {
		results[desc] = string(pipeline.Categorize(desc))
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Categorization test",
		"results": results,
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
