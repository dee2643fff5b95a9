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

// AccountsHandler handles bank account endpoints.
type AccountsHandler struct {
	svc  *bank.Service
	gate *auth.Gate
	log  zerolog.Logger
}

// NewAccountsHandler creates a new accounts handler.
func NewAccountsHandler(svc *bank.Service, gate *auth.Gate, log zerolog.Logger) *AccountsHandler {
	return &AccountsHandler{svc: svc, gate: gate, log: log}
}

// List handles GET /api/accounts
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	accounts, err := h.svc.Accounts(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list accounts")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
		"count":    len(accounts),
	})
}

// Create handles POST /api/accounts
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	var in bank.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The deferred success modal must outlive this request's context.
	account, err := h.svc.CreateAccount(context.WithoutCancel(r.Context()), user.ID, in)
	if err != nil {
		writeReject(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, account)
}

// Update handles PUT /api/accounts/{accountNumber}
func (h *AccountsHandler) Update(w http.ResponseWriter, r *http.Request, accountNumber string) {
	user, _ := h.gate.Current()

	var in bank.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.svc.UpdateAccount(context.WithoutCancel(r.Context()), user.ID, accountNumber, in)
	if err != nil {
		writeReject(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusOK, account)
}

// Delete handles DELETE /api/accounts/{accountNumber}. It raises the
// confirm modal and answers 202; the deletion happens when the modal is
// accepted through the modals endpoint.
func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request, accountNumber string) {
	user, _ := h.gate.Current()

	h.svc.RequestDeleteAccount(user.ID, accountNumber)
	middleware.WriteJSON(w, http.StatusAccepted, map[string]string{
		"status": "confirmation_pending",
	})
}
