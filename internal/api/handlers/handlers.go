// Package handlers exposes the demo's screens as JSON endpoints. Each
// handler reads raw form values from the request body, delegates to the
// domain service and maps rejections to HTTP statuses; the modal center
// carries the user-facing outcome alongside.
package handlers

import (
	"net/http"

	"github.com/jdgomez/homebank/internal/api/middleware"
	"github.com/jdgomez/homebank/internal/domain"
)

// writeReject maps a service error to an HTTP response. Rejections keep
// their user-facing message; anything else is an internal store failure.
func writeReject(w http.ResponseWriter, err error) {
	r, ok := domain.AsReject(err)
	if !ok {
		middleware.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	middleware.WriteError(w, statusFor(r.Kind), r.Reason)
}

func statusFor(kind domain.RejectKind) int {
	switch kind {
	case domain.RejectAuth:
		return http.StatusUnauthorized
	case domain.RejectDuplicateKey:
		return http.StatusConflict
	case domain.RejectReference:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
