package fintrack

import (
	"io/fs"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// USD is a helper for tests to create dollar money from a string constant.
func USD(v string) Money { return M(decimal.RequireFromString(v), "USD") }

// memStore is an in-memory Store test double with settable failure modes.
type memStore struct {
	txs     []Transaction
	missing bool
	loadErr error
	saveErr error
	saves   int
}

func (s *memStore) Load() ([]Transaction, error) {
	if s.missing {
		return nil, fs.ErrNotExist
	}
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.txs), nil
}

func (s *memStore) Save(txs []Transaction) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.txs = slices.Clone(txs)
	s.saves++
	return nil
}

func (s *memStore) Name() string { return "mem" }
func (s *memStore) Close() error { return nil }

// newTestLedger builds a USD ledger over the given store with a fixed clock.
func newTestLedger(store Store) *Ledger {
	l := NewLedger(store, "USD")
	l.now = func() time.Time {
		return time.Date(2025, time.August, 26, 12, 30, 45, 0, time.Local)
	}
	return l
}
