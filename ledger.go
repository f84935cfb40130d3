package fintrack

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger owns an ordered sequence of transactions, held entirely in memory
// and mirrored to a Store. Insertion order is display order is id order.
//
// The lifecycle is: constructed empty, hydrated once from the store, mutated
// only by Append, flushed on every Append and on demand. There is no delete
// and no update.
type Ledger struct {
	transactions []Transaction
	store        Store
	currency     string
	now          func() time.Time
}

// NewLedger creates an empty ledger mirrored to the given store. Amounts are
// denominated in currency (an ISO 4217 code such as "USD").
func NewLedger(store Store, currency string) *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		store:        store,
		currency:     currency,
		now:          time.Now,
	}
}

// Currency returns the ledger's currency code.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Hydrate replaces the in-memory sequence with the store's contents and
// returns the number of records loaded.
//
// A missing store is not an error: the sequence is left empty and the count
// is zero. A store that is present but unreadable, unparsable, or internally
// inconsistent yields a *LoadError; the sequence is reset to empty and the
// ledger remains usable, so a subsequent Append starts over at id 1.
func (l *Ledger) Hydrate() (int, error) {
	txs, err := l.store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		l.transactions = l.transactions[:0]
		return 0, nil
	}
	if err != nil {
		l.transactions = l.transactions[:0]
		return 0, &LoadError{Err: err}
	}
	for _, tx := range txs {
		if err := tx.Check(); err != nil {
			l.transactions = l.transactions[:0]
			return 0, &LoadError{Err: err}
		}
	}
	l.transactions = txs
	return len(txs), nil
}

// Append records a new transaction and flushes the ledger to the store.
//
// The description must be non-empty after trimming and the magnitude must
// not be negative; the caller is expected to have validated its input. The
// magnitude is rounded to the ledger currency's fraction, so the in-memory
// value and every store agree on what was recorded. An expense is stored as
// the negated magnitude, an income as-is. The new record gets
// id = current length + 1 and the current local time.
//
// The returned error, if any, is the *SaveError of the implicit persist: the
// transaction has already been appended in memory and is never rolled back,
// so a later successful Persist still recovers it.
func (l *Ledger) Append(description string, magnitude decimal.Decimal, kind Kind) (Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Transaction{}, fmt.Errorf("transaction description must not be empty")
	}
	if magnitude.IsNegative() {
		return Transaction{}, fmt.Errorf("transaction amount must be a positive magnitude, got %s", magnitude)
	}
	if kind != Income && kind != Expense {
		return Transaction{}, fmt.Errorf("unknown transaction type: %q", kind)
	}

	amount := M(magnitude, l.currency).Round()
	if kind == Expense {
		amount = amount.Neg()
	}

	tx := Transaction{
		ID:          len(l.transactions) + 1,
		Date:        NewTimestamp(l.now()),
		Description: description,
		Amount:      amount,
		Kind:        kind,
	}
	l.transactions = append(l.transactions, tx)

	if err := l.Persist(); err != nil {
		return tx, err
	}
	return tx, nil
}

// Persist serializes the entire in-memory sequence and overwrites the store.
// On failure it returns a *SaveError; the in-memory sequence is unchanged
// either way and remains the source of truth. A crash between a failed and a
// later successful persist leaves the stored copy stale; this is an accepted
// limitation of the whole-rewrite strategy.
func (l *Ledger) Persist() error {
	if err := l.store.Save(l.transactions); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// Transactions returns a copy of all transactions in insertion order. An
// empty slice is a valid result signaling "nothing to show".
func (l *Ledger) Transactions() []Transaction {
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	return txs
}

// Snapshot returns a point-in-time copy of the ledger's contents for export.
// It is identical to Transactions; it exists as a named operation so export
// writers do not assume storage internals.
func (l *Ledger) Snapshot() []Transaction {
	return l.Transactions()
}

// All returns an iterator over the transactions in insertion order.
func (l *Ledger) All() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Summarize computes the ledger totals. TotalIncome sums the strictly
// positive amounts, TotalExpense is the absolute value of the sum of the
// strictly negative ones, and Balance is their difference (equivalently the
// raw sum of all amounts). A zero amount contributes to neither bucket.
func (l *Ledger) Summarize() Summary {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range l.All() {
		v := tx.Amount.Decimal()
		switch {
		case v.IsPositive():
			income = income.Add(v)
		case v.IsNegative():
			expense = expense.Add(v.Neg())
		}
	}
	return Summary{
		TotalIncome:  M(income, l.currency),
		TotalExpense: M(expense, l.currency),
		Balance:      M(income.Sub(expense), l.currency),
	}
}
