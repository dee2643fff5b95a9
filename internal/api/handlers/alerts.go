package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jdgomez/homebank/internal/api/middleware"
	"github.com/jdgomez/homebank/internal/auth"
	"github.com/jdgomez/homebank/internal/bank"
)

// AlertsHandler handles alert endpoints.
type AlertsHandler struct {
	svc  *bank.Service
	gate *auth.Gate
	log  zerolog.Logger
}

// NewAlertsHandler creates a new alerts handler.
func NewAlertsHandler(svc *bank.Service, gate *auth.Gate, log zerolog.Logger) *AlertsHandler {
	return &AlertsHandler{svc: svc, gate: gate, log: log}
}

// List handles GET /api/alerts
func (h *AlertsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	alerts, err := h.svc.Alerts(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list alerts")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list alerts")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// Create handles POST /api/alerts
func (h *AlertsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := h.gate.Current()

	var in bank.AlertInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The deferred success modal must outlive this request's context.
	alert, err := h.svc.CreateAlert(context.WithoutCancel(r.Context()), user.ID, in)
	if err != nil {
		writeReject(w, err)
		return
	}
	middleware.WriteJSON(w, http.StatusCreated, alert)
}

// Delete handles DELETE /api/alerts/{alertId}. It raises the confirm modal
// and answers 202; the deletion happens when the modal is accepted.
func (h *AlertsHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	user, _ := h.gate.Current()

	alertID, err := strconv.Atoi(rawID)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid alert id")
		return
	}

	h.svc.RequestDeleteAlert(user.ID, alertID)
	middleware.WriteJSON(w, http.StatusAccepted, map[string]string{
		"status": "confirmation_pending",
	})
}
