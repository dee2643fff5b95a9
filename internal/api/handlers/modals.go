package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jdgomez/homebank/internal/api/middleware"
	"github.com/jdgomez/homebank/internal/modal"
)

// ModalsHandler exposes the modal center to the presentation layer: it
// polls pending requests and resolves them.
type ModalsHandler struct {
	center *modal.Center
	log    zerolog.Logger
}

// NewModalsHandler creates a new modals handler.
func NewModalsHandler(center *modal.Center, log zerolog.Logger) *ModalsHandler {
	return &ModalsHandler{center: center, log: log}
}

// List handles GET /api/modals
func (h *ModalsHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, h.center.Snapshot())
}

// Resolve handles POST /api/modals/{variant}/{action} where action is
// close, accept or cancel. Accept and cancel only apply to confirm.
func (h *ModalsHandler) Resolve(w http.ResponseWriter, r *http.Request, rawVariant, action string) {
	variant := modal.Variant(rawVariant)
	if !variant.Valid() {
		middleware.WriteError(w, http.StatusBadRequest, "Unknown modal variant")
		return
	}

	var resolved bool
	switch action {
	case "close":
		resolved = h.center.Close(variant)
	case "accept":
		if variant != modal.VariantConfirm {
			middleware.WriteError(w, http.StatusBadRequest, "Only confirm modals can be accepted")
			return
		}
		resolved = h.center.Accept()
	case "cancel":
		if variant != modal.VariantConfirm {
			middleware.WriteError(w, http.StatusBadRequest, "Only confirm modals can be cancelled")
			return
		}
		resolved = h.center.Cancel()
	default:
		middleware.WriteError(w, http.StatusBadRequest, "Unknown modal action")
		return
	}

	if !resolved {
		middleware.WriteError(w, http.StatusNotFound, "No pending modal")
		return
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}
