package auth

import (
	"testing"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/logger"
	"github.com/jdgomez/homebank/internal/storage"
)

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func newGate(t *testing.T) (*Gate, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return NewGate(kv, domain.DefaultUsers(), logger.NewWithWriter(testWriter{t})), kv
}

func TestLoginSuccess(t *testing.T) {
	g, kv := newGate(t)

	user, err := g.Login("jose@example.com", "123456789")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != 1 || user.Role != domain.RoleAdmin {
		t.Errorf("Login returned user %+v, want id 1 admin", user)
	}

	current, ok := g.Current()
	if !ok || current.ID != 1 {
		t.Errorf("Current() = %+v, %v; want user 1", current, ok)
	}
	if g.SessionID() == "" {
		t.Error("expected a session id after login")
	}

	if _, ok, _ := kv.Get(storage.KeyUser); !ok {
		t.Error("session user not persisted")
	}
	if flag, ok, _ := kv.Get(storage.KeyAuthenticated); !ok || string(flag) != "1" {
		t.Errorf("session flag = %q, %v; want \"1\"", flag, ok)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	g, _ := newGate(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "jose@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "123456789"},
		{"empty credentials", "", ""},
		{"case sensitive email", "JOSE@example.com", "123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Login(tt.email, tt.password)
			if err == nil {
				t.Fatal("Login succeeded, want rejection")
			}
			r, ok := domain.AsReject(err)
			if !ok || r.Kind != domain.RejectAuth {
				t.Errorf("error = %v, want authentication rejection", err)
			}
			if _, ok := g.Current(); ok {
				t.Error("gate authenticated after rejected login")
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	g, kv := newGate(t)

	if _, err := g.Login("john.doe@example.com", "password"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	g.Logout()

	if _, ok := g.Current(); ok {
		t.Error("still authenticated after logout")
	}
	if _, ok, _ := kv.Get(storage.KeyUser); ok {
		t.Error("persisted user survives logout")
	}
	if _, ok, _ := kv.Get(storage.KeyAuthenticated); ok {
		t.Error("persisted flag survives logout")
	}

	// Logging out twice is a no-op.
	g.Logout()
}

func TestSessionRestoredAcrossGates(t *testing.T) {
	kv := storage.NewMemoryStore()
	log := logger.NewWithWriter(testWriter{t})

	first := NewGate(kv, domain.DefaultUsers(), log)
	if _, err := first.Login("jane.smith@example.com", "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	second := NewGate(kv, domain.DefaultUsers(), log)
	current, ok := second.Current()
	if !ok || current.ID != 3 {
		t.Errorf("restored session = %+v, %v; want user 3", current, ok)
	}
}

func TestRestoreIgnoresMalformedState(t *testing.T) {
	kv := storage.NewMemoryStore()
	_ = kv.Put(storage.KeyAuthenticated, []byte("1"))
	_ = kv.Put(storage.KeyUser, []byte("{not json"))

	g := NewGate(kv, domain.DefaultUsers(), logger.NewWithWriter(testWriter{t}))
	if _, ok := g.Current(); ok {
		t.Error("gate authenticated from malformed stored state")
	}
}
