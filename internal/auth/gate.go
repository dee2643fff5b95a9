// Package auth implements the two-state session gate: Anonymous and
// Authenticated. Credentials are checked against the fixed user directory
// and the session survives restarts through the storage layer. Passwords
// and the session flag are stored in cleartext; hardening is out of scope
// for the demo.
package auth

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/storage"
)

// ErrInvalidCredentials is raised when no directory entry matches the
// submitted email and password.
var ErrInvalidCredentials = domain.NewReject(domain.RejectAuth,
	"Credenciales incorrectas, por favor verifica tus datos e intenta nuevamente.")

// Gate holds the current session and persists it through the KV store.
type Gate struct {
	mu        sync.RWMutex
	kv        storage.KV
	directory *domain.Directory
	current   *domain.User
	sessionID string
	log       zerolog.Logger
}

// NewGate creates a gate over the given directory and store, restoring any
// persisted session.
func NewGate(kv storage.KV, directory *domain.Directory, log zerolog.Logger) *Gate {
	g := &Gate{kv: kv, directory: directory, log: log}
	g.restore()
	return g
}

// Login transitions Anonymous -> Authenticated when the credentials exactly
// match one directory entry. The matched user becomes session state and is
// persisted. On mismatch the session is left untouched and
// ErrInvalidCredentials is returned.
func (g *Gate) Login(email, password string) (domain.User, error) {
	user, ok := g.directory.FindByCredentials(email, password)
	if !ok {
		g.log.Warn().Str("email", email).Msg("Login rejected")
		return domain.User{}, ErrInvalidCredentials
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.current = &user
	g.sessionID = uuid.NewString()

	if err := g.persist(user); err != nil {
		g.log.Error().Err(err).Msg("Failed to persist session")
	}

	g.log.Info().
		Str("session_id", g.sessionID).
		Int("user_id", user.ID).
		Str("email", user.Email).
		Msg("Session opened")
	return user, nil
}

// Logout transitions Authenticated -> Anonymous, clearing persisted state.
// Logging out while anonymous is a no-op.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return
	}

	g.log.Info().Str("session_id", g.sessionID).Int("user_id", g.current.ID).Msg("Session closed")
	g.current = nil
	g.sessionID = ""

	if err := g.kv.Delete(storage.KeyUser); err != nil {
		g.log.Error().Err(err).Msg("Failed to clear persisted user")
	}
	if err := g.kv.Delete(storage.KeyAuthenticated); err != nil {
		g.log.Error().Err(err).Msg("Failed to clear persisted session flag")
	}
}

// Current returns the authenticated user, or false while anonymous.
func (g *Gate) Current() (domain.User, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.current == nil {
		return domain.User{}, false
	}
	return *g.current, true
}

// SessionID returns the id minted for the current session, used only for
// log correlation.
func (g *Gate) SessionID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sessionID
}

func (g *Gate) persist(user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := g.kv.Put(storage.KeyUser, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := g.kv.Put(storage.KeyAuthenticated, []byte("1")); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// restore reopens a persisted session, validating the stored user against
// the directory. Malformed or unknown stored state reads as anonymous.
func (g *Gate) restore() {
	flag, ok, err := g.kv.Get(storage.KeyAuthenticated)
	if err != nil || !ok || string(flag) != "1" {
		return
	}

	raw, ok, err := g.kv.Get(storage.KeyUser)
	if err != nil || !ok {
		return
	}

	var stored domain.User
	if err := json.Unmarshal(raw, &stored); err != nil {
		return
	}

	user, ok := g.directory.FindByID(stored.ID)
	if !ok {
		return
	}

	g.current = &user
	g.sessionID = uuid.NewString()
	g.log.Info().Int("user_id", user.ID).Msg("Session restored")
}
