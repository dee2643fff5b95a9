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

// IncomesHandler handles income and expense endpoints.
type IncomesHandler struct {
	svc  *bank.Service
	gate *auth.Gate
	log  zerolog.Logger
}

// NewIncomesHandler creates a new incomes handler.
func NewIncomesHandler(svc *bank.Service, gate *auth.Gate, log zerolog.Logger) *IncomesHandler {
	return &IncomesHandler{svc: svc, gate: gate, log: log}
}

// List handles GET /api/incomes
func (h *IncomesHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	incomes, err := h.svc.Incomes(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list incomes")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list incomes")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"incomes": incomes,
		"count":   len(incomes),
	})
}

// Create handles POST /api/incomes
func (h *IncomesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	var in bank.IncomeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The deferred success modal must outlive this request's context.
	income, err := h.svc.CreateIncome(context.WithoutCancel(r.Context()), user.ID, in)
	if err != nil {
		writeReject(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, income)
}
