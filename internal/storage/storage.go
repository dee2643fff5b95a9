// Package storage persists per-user entity collections as JSON sequences
// behind a small key-value contract. Each collection is read and written
// whole; callers follow a read-modify-write discipline and there are no
// cross-collection transactions.
package storage

import (
	"encoding/json"
	"fmt"
)

// Kind names one persisted entity collection.
type Kind string

const (
	KindAccounts     Kind = "accounts"
	KindIncomes      Kind = "incomes"
	KindTransactions Kind = "transactions"
	KindAlerts       Kind = "alerts"
)

// Session state lives beside the collections under fixed keys.
const (
	KeyUser          = "user"
	KeyAuthenticated = "isAuthenticated"
)

// KV is the minimal store contract. Implementations must be safe for use by
// a single writer; there is exactly one active writer by assumption.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Put stores the value, overwriting any prior one.
	Put(key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Key builds the storage key for one entity kind of one user.
func Key(kind Kind, userID int) string {
	return fmt.Sprintf("%s-%d", kind, userID)
}

// Load reads the full sequence stored for the user. A missing key or a
// value that fails to parse as the expected shape both read as the empty
// sequence; only store access failures are reported.
func Load[T any](kv KV, kind Kind, userID int) ([]T, error) {
	raw, ok, err := kv.Get(Key(kind, userID))
	if err != nil {
		return nil, fmt.Errorf("load %s for user %d: %w", kind, userID, err)
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Malformed stored data reads as an empty collection.
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save serializes and stores the full sequence, replacing any prior value.
func Save[T any](kv KV, kind Kind, userID int, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save %s for user %d: %w", kind, userID, err)
	}
	if err := kv.Put(Key(kind, userID), raw); err != nil {
		return fmt.Errorf("save %s for user %d: %w", kind, userID, err)
	}
	return nil
}
