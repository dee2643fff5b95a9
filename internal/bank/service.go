// Package bank implements the domain rules of the demo: per-entity
// validation, create/edit/delete mutators and identifier assignment.
// Validators evaluate their rules in order and report the first failure
// only; mutators persist whole collections through the storage layer and
// raise their outcome on the modal center.
package bank

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/modal"
	"github.com/jdgomez/homebank/internal/storage"
)

// minAmount is the floor for account balances and transaction amounts,
// in currency units.
var minAmount = decimal.NewFromInt(50000)

const (
	msgMissingFields  = "Por favor, complete todos los campos"
	descriptionMinLen = 10
	descriptionMaxLen = 500
)

// Service exposes the entity operations over one storage backend.
type Service struct {
	kv     storage.KV
	modals *modal.Center
	notify *modal.Notifier
	log    zerolog.Logger
}

// NewService wires the service to its store, modal center and notifier.
func NewService(kv storage.KV, modals *modal.Center, notify *modal.Notifier, log zerolog.Logger) *Service {
	return &Service{kv: kv, modals: modals, notify: notify, log: log}
}

// reject surfaces a validation failure on the error modal and returns it.
func (s *Service) reject(title string, r *domain.Reject) error {
	s.modals.ShowError(title, r.Reason)
	s.log.Debug().Str("kind", string(r.Kind)).Str("reason", r.Reason).Msg("Submission rejected")
	return r
}

// descriptionOrPlaceholder applies the shared optional-description rule:
// absent descriptions get the fixed placeholder, present ones must be
// between 10 and 500 characters.
func descriptionOrPlaceholder(desc, tooShortMsg string) (string, *domain.Reject) {
	if desc == "" {
		return domain.NoDescription, nil
	}
	if n := utf8.RuneCountInString(desc); n < descriptionMinLen || n > descriptionMaxLen {
		return "", domain.NewReject(domain.RejectConstraint, tooShortMsg)
	}
	return desc, nil
}

// nextID computes the next numeric identifier for a user's collection:
// one more than the current maximum, with an implicit zero baseline so the
// first record gets id 1. Gaps from deletions are never reused.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}
