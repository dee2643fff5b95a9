package bank

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/modal"
)

func TestCreateAccountBalanceBoundary(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		wantErr bool
	}{
		{"below minimum", 49999, true},
		{"exactly minimum", 50000, false},
		{"above minimum", 100000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newService(t)
			in := validAccountInput()
			in.CurrentBalance = decimal.NewFromInt(tt.balance)

			_, err := s.CreateAccount(context.Background(), 1, in)
			if tt.wantErr {
				wantKind(t, err, domain.RejectConstraint)
			} else if err != nil {
				t.Fatalf("CreateAccount failed: %v", err)
			}
		})
	}
}

func TestCreateAccountMissingFields(t *testing.T) {
	s, center, _ := newService(t)

	in := validAccountInput()
	in.Bank = ""
	_, err := s.CreateAccount(context.Background(), 1, in)
	wantKind(t, err, domain.RejectMissingField)

	// The rejection is surfaced on the error modal.
	r, ok := center.Pending(modal.VariantError)
	if !ok {
		t.Fatal("no pending error modal")
	}
	if r.Title != "Error al inscribir la cuenta bancaria" {
		t.Errorf("modal title = %q", r.Title)
	}
	if r.Message != "Por favor, complete todos los campos" {
		t.Errorf("modal message = %q", r.Message)
	}
}

func TestCreateAccountNumberFormat(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{"too short", "1234"},
		{"too long", "11112222333344445"},
		{"non digits", "111122223333444x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newService(t)
			in := validAccountInput()
			in.AccountNumber = tt.number

			_, err := s.CreateAccount(context.Background(), 1, in)
			wantKind(t, err, domain.RejectConstraint)
		})
	}
}

func TestDuplicateAccountNumberPerUser(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	if _, err := s.CreateAccount(ctx, 1, validAccountInput()); err != nil {
		t.Fatalf("first CreateAccount failed: %v", err)
	}

	// Same number, same user: rejected.
	_, err := s.CreateAccount(ctx, 1, validAccountInput())
	wantKind(t, err, domain.RejectDuplicateKey)

	// Same number, different user: allowed.
	if _, err := s.CreateAccount(ctx, 2, validAccountInput()); err != nil {
		t.Fatalf("CreateAccount for another user failed: %v", err)
	}

	accounts, err := s.Accounts(1)
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("user 1 has %d accounts, want 1", len(accounts))
	}
}

func TestUpdateAccountNoChangeDetected(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	in := validAccountInput()
	if _, err := s.CreateAccount(ctx, 1, in); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	// Resubmitting identical fields is rejected.
	_, err := s.UpdateAccount(ctx, 1, in.AccountNumber, in)
	wantKind(t, err, domain.RejectNoChange)

	// Changing one field succeeds and replaces the record in place.
	in.AccountState = domain.StateInactiva
	updated, err := s.UpdateAccount(ctx, 1, in.AccountNumber, in)
	if err != nil {
		t.Fatalf("UpdateAccount failed: %v", err)
	}
	if updated.AccountState != domain.StateInactiva {
		t.Errorf("updated state = %s, want inactiva", updated.AccountState)
	}

	accounts, _ := s.Accounts(1)
	if len(accounts) != 1 {
		t.Fatalf("collection has %d accounts after edit, want 1", len(accounts))
	}
}

func TestUpdateAccountNumberIsImmutable(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	in := validAccountInput()
	if _, err := s.CreateAccount(ctx, 1, in); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	edit := in
	edit.AccountNumber = "9999888877776666"
	_, err := s.UpdateAccount(ctx, 1, in.AccountNumber, edit)
	wantKind(t, err, domain.RejectConstraint)
}

func TestUpdateUnknownAccount(t *testing.T) {
	s, _, _ := newService(t)

	_, err := s.UpdateAccount(context.Background(), 1, "0000000000000000", validAccountInput())
	wantKind(t, err, domain.RejectReference)
}

func TestDeleteAccountThroughConfirmModal(t *testing.T) {
	s, center, _ := newService(t)
	ctx := context.Background()

	in := validAccountInput()
	if _, err := s.CreateAccount(ctx, 1, in); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	s.RequestDeleteAccount(1, in.AccountNumber)

	// Nothing is deleted until the confirm modal is accepted.
	if accounts, _ := s.Accounts(1); len(accounts) != 1 {
		t.Fatal("account deleted before confirmation")
	}

	if !center.Accept() {
		t.Fatal("no pending confirm modal")
	}
	if accounts, _ := s.Accounts(1); len(accounts) != 0 {
		t.Error("account still present after confirmation")
	}
}

func TestDeleteAccountCancelKeepsRecord(t *testing.T) {
	s, center, _ := newService(t)
	ctx := context.Background()

	in := validAccountInput()
	if _, err := s.CreateAccount(ctx, 1, in); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	s.RequestDeleteAccount(1, in.AccountNumber)
	if !center.Cancel() {
		t.Fatal("no pending confirm modal")
	}

	if accounts, _ := s.Accounts(1); len(accounts) != 1 {
		t.Error("account deleted despite cancellation")
	}
}
