package fintrack

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store is the persisted mirror of a ledger. A store holds one ordered
// sequence of transactions, read as a whole and written as a whole (full
// replace, no partial update).
type Store interface {
	// Load reads the complete sequence from the store. A missing store is
	// reported with an error wrapping fs.ErrNotExist.
	Load() ([]Transaction, error)
	// Save replaces the complete stored sequence.
	Save(txs []Transaction) error
	// Name identifies the store in user-facing messages.
	Name() string
	// Close releases any resources held by the store.
	Close() error
}

// JSONStore persists the ledger as a single JSON file holding an array of
// transaction records. This is the format of the original finances.json data
// file and the default store.
type JSONStore struct {
	path     string
	currency string
}

// NewJSONStore returns a store backed by the JSON file at path. Amounts are
// bare numbers in the file; currency tells the store which currency they
// denote.
func NewJSONStore(path, currency string) *JSONStore {
	return &JSONStore{path: path, currency: currency}
}

func (s *JSONStore) Name() string { return s.path }

// Close is a no-op: the file is only held open during Load and Save.
func (s *JSONStore) Close() error { return nil }

// Load reads and parses the whole file. A missing file surfaces as an error
// wrapping fs.ErrNotExist so callers can treat it as an empty ledger.
func (s *JSONStore) Load() ([]Transaction, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not parse ledger file %q: %w", s.path, err)
	}

	txs := make([]Transaction, 0, len(records))
	for _, r := range records {
		txs = append(txs, r.transaction(s.currency))
	}
	return txs, nil
}

// Save rewrites the whole file with the given sequence, indented for
// hand-editing.
func (s *JSONStore) Save(txs []Transaction) error {
	if txs == nil {
		txs = []Transaction{} // an empty ledger is "[]", not "null"
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", s.path, err)
	}
	return nil
}
