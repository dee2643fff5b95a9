package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jdgomez/homebank/internal/api/middleware"
	"github.com/jdgomez/homebank/internal/auth"
	"github.com/jdgomez/homebank/internal/modal"
)

// SessionHandler handles login, logout and session inspection.
type SessionHandler struct {
	gate   *auth.Gate
	modals *modal.Center
	log    zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(gate *auth.Gate, modals *modal.Center, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{gate: gate, modals: modals, log: log}
}

// Login handles POST /api/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.gate.Login(req.Email, req.Password)
	if err != nil {
		h.modals.ShowError("Error al Iniciar Sesión", err.Error())
		writeReject(w, err)
		return
	}

	// A fresh session lands on the history screen.
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":     user,
		"redirect": "/history",
	})
}

// Logout handles POST /api/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout()
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Session handles GET /api/session
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := h.gate.Current()
	if !ok {
		middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          user,
	})
}
