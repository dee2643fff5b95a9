package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jdgomez/homebank/internal/api/middleware"
	"github.com/jdgomez/homebank/internal/auth"
	"github.com/jdgomez/homebank/internal/bank"
)

// TransactionsHandler handles transaction endpoints.
type TransactionsHandler struct {
	svc  *bank.Service
	gate *auth.Gate
	log  zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(svc *bank.Service, gate *auth.Gate, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{svc: svc, gate: gate, log: log}
}

// List handles GET /api/transactions
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	transactions, err := h.svc.Transactions(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

// Create handles POST /api/transactions. The body carries the re-entered
// password of the identity confirmation step.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	var in bank.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The deferred success modal must outlive this request's context.
	transaction, err := h.svc.CreateTransaction(context.WithoutCancel(r.Context()), user, in)
	if err != nil {
		writeReject(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, transaction)
}
