package storage

import (
	"testing"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/logger"
	"github.com/shopspring/decimal"
)

func newStores(t *testing.T) map[string]KV {
	t.Helper()

	file, err := NewFileStore(t.TempDir(), logger.NewWithWriter(testWriter{t}))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	return map[string]KV{
		"file":   file,
		"memory": NewMemoryStore(),
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestLoadSaveRoundTrip(t *testing.T) {
	accounts := []domain.BankAccount{
		{
			AccountType:    domain.AccountAhorro,
			AccountState:   domain.StateActiva,
			AccountNumber:  "1111222233334444",
			Bank:           "Bancolombia",
			IncomeType:     domain.IncomePasivo,
			CurrentBalance: decimal.NewFromInt(100000),
			UserID:         1,
		},
		{
			AccountType:    domain.AccountCorriente,
			AccountState:   domain.StateInactiva,
			AccountNumber:  "9999888877776666",
			Bank:           "Davivienda",
			IncomeType:     domain.IncomeActivo,
			CurrentBalance: decimal.NewFromInt(75000),
			UserID:         1,
		},
	}

	for name, kv := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := Save(kv, KindAccounts, 1, accounts); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := Load[domain.BankAccount](kv, KindAccounts, 1)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != len(accounts) {
				t.Fatalf("Load returned %d accounts, want %d", len(got), len(accounts))
			}
			for i := range accounts {
				if got[i].AccountNumber != accounts[i].AccountNumber {
					t.Errorf("account %d: number = %q, want %q", i, got[i].AccountNumber, accounts[i].AccountNumber)
				}
				if !got[i].CurrentBalance.Equal(accounts[i].CurrentBalance) {
					t.Errorf("account %d: balance = %s, want %s", i, got[i].CurrentBalance, accounts[i].CurrentBalance)
				}
			}
		})
	}
}

func TestLoadMissingKeyReturnsEmpty(t *testing.T) {
	for name, kv := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := Load[domain.Alert](kv, KindAlerts, 42)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("Load of missing key = %v, want empty slice", got)
			}
		})
	}
}

func TestLoadMalformedValueReturnsEmpty(t *testing.T) {
	for name, kv := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Put(Key(KindIncomes, 3), []byte(`{"not":"an array"`)); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			got, err := Load[domain.Income](kv, KindIncomes, 3)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Load of malformed value = %v, want empty slice", got)
			}
		})
	}
}

func TestCollectionsAreScopedPerUser(t *testing.T) {
	for name, kv := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			mine := []domain.Income{{Code: "A01", Type: domain.MovementIngreso, IncomeName: "Salario", IncomeType: domain.IncomeActivo, Description: domain.NoDescription, UserID: 1}}
			theirs := []domain.Income{{Code: "B02", Type: domain.MovementEgreso, IncomeName: "Comida", IncomeType: domain.IncomeCorriente, Description: domain.NoDescription, UserID: 2}}

			if err := Save(kv, KindIncomes, 1, mine); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if err := Save(kv, KindIncomes, 2, theirs); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := Load[domain.Income](kv, KindIncomes, 1)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != 1 || got[0].Code != "A01" {
				t.Errorf("user 1 collection = %v, want only code A01", got)
			}
		})
	}
}

func TestSaveOverwritesWholeSequence(t *testing.T) {
	kv := NewMemoryStore()

	first := []domain.Alert{{AlertID: 1, Name: "Pagar arriendo", Type: domain.AlertUrgente, UserID: 1}}
	second := []domain.Alert{{AlertID: 2, Name: "Renovar seguro", Type: domain.AlertRecordatorio, UserID: 1}}

	if err := Save(kv, KindAlerts, 1, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Save(kv, KindAlerts, 1, second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load[domain.Alert](kv, KindAlerts, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 1 || got[0].AlertID != 2 {
		t.Errorf("after overwrite got %v, want only alert 2", got)
	}
}

func TestFileStoreDelete(t *testing.T) {
	file, err := NewFileStore(t.TempDir(), logger.NewWithWriter(testWriter{t}))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := file.Put("user", []byte(`{"id":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := file.Delete("user"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := file.Get("user"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting a missing key is not an error.
	if err := file.Delete("user"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}
