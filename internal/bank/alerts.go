package bank

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/storage"
)

const titleCreateAlert = "Error al crear la alerta"

// AlertInput is the raw alert form state.
type AlertInput struct {
	Name        string           `json:"alertName"`
	Type        domain.AlertType `json:"alertType"`
	Description string           `json:"alertDescription"`
	Date        time.Time        `json:"alertDate"`
}

// Alerts returns the user's scheduled alerts.
func (s *Service) Alerts(userID int) ([]domain.Alert, error) {
	return storage.Load[domain.Alert](s.kv, storage.KindAlerts, userID)
}

// CreateAlert validates and schedules a new alert. The alert date must be
// strictly in the future at submission time and the name unique within the
// user's collection.
func (s *Service) CreateAlert(ctx context.Context, userID int, in AlertInput) (domain.Alert, error) {
	alerts, err := s.Alerts(userID)
	if err != nil {
		return domain.Alert{}, err
	}

	if in.Name == "" || !in.Type.Valid() || in.Date.IsZero() {
		return domain.Alert{}, s.reject(titleCreateAlert, domain.NewReject(
			domain.RejectMissingField, msgMissingFields))
	}
	if utf8.RuneCountInString(in.Name) < 3 {
		return domain.Alert{}, s.reject(titleCreateAlert, domain.NewReject(
			domain.RejectConstraint, "El nombre de la alerta debe tener al menos 3 caracteres"))
	}

	description, r := descriptionOrPlaceholder(in.Description, "La descripción de la alerta debe tener entre 10 y 500 caracteres")
	if r != nil {
		return domain.Alert{}, s.reject(titleCreateAlert, r)
	}

	if !in.Date.After(time.Now()) {
		return domain.Alert{}, s.reject(titleCreateAlert, domain.NewReject(
			domain.RejectConstraint, "La fecha de la alerta debe ser posterior a la fecha actual"))
	}

	for _, existing := range alerts {
		if existing.Name == in.Name {
			return domain.Alert{}, s.reject(titleCreateAlert, domain.NewReject(
				domain.RejectDuplicateKey, "Ya existe una alerta con el mismo nombre"))
		}
	}

	alert := domain.Alert{
		AlertID:     nextID(alerts, func(a domain.Alert) int { return a.AlertID }),
		Name:        in.Name,
		Type:        in.Type,
		Description: description,
		Date:        in.Date,
		UserID:      userID,
	}
	alerts = append(alerts, alert)

	if err := storage.Save(s.kv, storage.KindAlerts, userID, alerts); err != nil {
		return domain.Alert{}, err
	}

	s.log.Info().Int("user_id", userID).Int("alert_id", alert.AlertID).Str("name", alert.Name).Msg("Alert scheduled")
	s.notify.Success(ctx, "Alerta programada correctamente.")
	return alert, nil
}

// RequestDeleteAlert raises the confirm modal for deleting the alert.
// The deletion runs when the modal is accepted.
func (s *Service) RequestDeleteAlert(userID, alertID int) {
	s.modals.ShowConfirm(
		fmt.Sprintf("¿Estás seguro/a de que deseas eliminar la alerta %d?", alertID),
		func() {
			if err := s.DeleteAlert(userID, alertID); err != nil {
				s.log.Error().Err(err).Int("alert_id", alertID).Msg("Failed to delete alert")
			}
		},
	)
}

// DeleteAlert removes the alert from the user's collection.
func (s *Service) DeleteAlert(userID, alertID int) error {
	alerts, err := s.Alerts(userID)
	if err != nil {
		return err
	}

	kept := alerts[:0]
	found := false
	for _, existing := range alerts {
		if existing.AlertID == alertID {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return domain.NewReject(domain.RejectReference, "No existe una alerta con ese identificador")
	}

	if err := storage.Save(s.kv, storage.KindAlerts, userID, kept); err != nil {
		return err
	}

	s.log.Info().Int("user_id", userID).Int("alert_id", alertID).Msg("Alert deleted")
	return nil
}
