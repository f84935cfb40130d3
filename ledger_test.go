package fintrack

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedger_Append(t *testing.T) {
	store := &memStore{}
	ledger := newTestLedger(store)

	coffee, err := ledger.Append("Coffee", decimal.RequireFromString("4.50"), Expense)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	paycheck, err := ledger.Append("Paycheck", decimal.RequireFromString("2000.00"), Income)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	if coffee.ID != 1 || paycheck.ID != 2 {
		t.Errorf("Append() assigned ids %d and %d, want 1 and 2", coffee.ID, paycheck.ID)
	}
	if !coffee.Amount.Equal(USD("-4.50")) {
		t.Errorf("expense stored as %s, want -4.50 (negated magnitude)", coffee.Amount.Decimal())
	}
	if !paycheck.Amount.Equal(USD("2000.00")) {
		t.Errorf("income stored as %s, want 2000.00 (as-is)", paycheck.Amount.Decimal())
	}
	if coffee.Date.IsZero() {
		t.Error("Append() did not assign a timestamp")
	}
	if got := ledger.Len(); got != 2 {
		t.Errorf("ledger has %d transactions, want 2", got)
	}
	// Every append triggers an implicit persist.
	if store.saves != 2 {
		t.Errorf("store was saved %d times, want 2", store.saves)
	}
	if len(store.txs) != 2 {
		t.Errorf("store holds %d transactions, want 2", len(store.txs))
	}
}

func TestLedger_AppendValidation(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		magnitude   string
		kind        Kind
	}{
		{name: "empty description", description: "", magnitude: "1", kind: Income},
		{name: "blank description", description: "   ", magnitude: "1", kind: Income},
		{name: "negative magnitude", description: "Coffee", magnitude: "-4.50", kind: Expense},
		{name: "unknown kind", description: "Coffee", magnitude: "4.50", kind: Kind("transfer")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := newTestLedger(&memStore{})
			_, err := ledger.Append(tc.description, decimal.RequireFromString(tc.magnitude), tc.kind)
			if err == nil {
				t.Fatal("Append() succeeded, want an error")
			}
			if ledger.Len() != 0 {
				t.Errorf("ledger has %d transactions after rejected append, want 0", ledger.Len())
			}
		})
	}
}

func TestLedger_AppendTrimsDescription(t *testing.T) {
	ledger := newTestLedger(&memStore{})
	tx, err := ledger.Append("  Coffee  ", decimal.RequireFromString("4.50"), Expense)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if tx.Description != "Coffee" {
		t.Errorf("description stored as %q, want %q", tx.Description, "Coffee")
	}
}

func TestLedger_AppendSaveFailure(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	ledger := newTestLedger(store)

	tx, err := ledger.Append("Coffee", decimal.RequireFromString("4.50"), Expense)

	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("Append() error = %v, want a *SaveError", err)
	}
	// The in-memory append is not rolled back: memory stays the source of
	// truth and a later persist recovers the data.
	if tx.ID != 1 || ledger.Len() != 1 {
		t.Fatalf("failed persist rolled back the append: id=%d len=%d", tx.ID, ledger.Len())
	}

	store.saveErr = nil
	if err := ledger.Persist(); err != nil {
		t.Fatalf("Persist() after recovery returned an unexpected error: %v", err)
	}
	if len(store.txs) != 1 {
		t.Errorf("store holds %d transactions after recovery, want 1", len(store.txs))
	}
}

func TestLedger_Summarize(t *testing.T) {
	testCases := []struct {
		name        string
		appends     []struct {
			desc string
			mag  string
			kind Kind
		}
		wantIncome  string
		wantExpense string
		wantBalance string
		wantStatus  BalanceStatus
	}{
		{
			name:        "empty ledger",
			wantIncome:  "0",
			wantExpense: "0",
			wantBalance: "0",
			wantStatus:  BreakEven,
		},
		{
			name: "coffee and paycheck",
			appends: []struct {
				desc string
				mag  string
				kind Kind
			}{
				{"Coffee", "4.50", Expense},
				{"Paycheck", "2000.00", Income},
			},
			wantIncome:  "2000.00",
			wantExpense: "4.50",
			wantBalance: "1995.50",
			wantStatus:  PositiveBalance,
		},
		{
			name: "zero amounts join neither bucket",
			appends: []struct {
				desc string
				mag  string
				kind Kind
			}{
				{"Free sample", "0", Income},
				{"Voided charge", "0", Expense},
				{"Rent", "800", Expense},
			},
			wantIncome:  "0",
			wantExpense: "800",
			wantBalance: "-800",
			wantStatus:  NegativeBalance,
		},
		{
			name: "exactly even",
			appends: []struct {
				desc string
				mag  string
				kind Kind
			}{
				{"Gig", "100", Income},
				{"Gear", "100", Expense},
			},
			wantIncome:  "100",
			wantExpense: "100",
			wantBalance: "0",
			wantStatus:  BreakEven,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := newTestLedger(&memStore{})
			for _, a := range tc.appends {
				if _, err := ledger.Append(a.desc, decimal.RequireFromString(a.mag), a.kind); err != nil {
					t.Fatalf("Append(%q) returned an unexpected error: %v", a.desc, err)
				}
			}

			s := ledger.Summarize()
			if !s.TotalIncome.Equal(USD(tc.wantIncome)) {
				t.Errorf("TotalIncome = %s, want %s", s.TotalIncome.Decimal(), tc.wantIncome)
			}
			if !s.TotalExpense.Equal(USD(tc.wantExpense)) {
				t.Errorf("TotalExpense = %s, want %s", s.TotalExpense.Decimal(), tc.wantExpense)
			}
			if !s.Balance.Equal(USD(tc.wantBalance)) {
				t.Errorf("Balance = %s, want %s", s.Balance.Decimal(), tc.wantBalance)
			}
			if !s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpense)) {
				t.Error("Balance != TotalIncome - TotalExpense")
			}

			// Balance must also equal the raw sum of all stored amounts.
			raw := USD("0")
			for _, tx := range ledger.Transactions() {
				raw = raw.Add(tx.Amount)
			}
			if !s.Balance.Equal(raw) {
				t.Errorf("Balance = %s, want raw sum %s", s.Balance.Decimal(), raw.Decimal())
			}

			if got := s.Status(); got != tc.wantStatus {
				t.Errorf("Status() = %v, want %v", got, tc.wantStatus)
			}
		})
	}
}

func TestLedger_HydrateMissingStore(t *testing.T) {
	ledger := newTestLedger(&memStore{missing: true})
	n, err := ledger.Hydrate()
	if err != nil {
		t.Fatalf("Hydrate() on a missing store returned an error: %v", err)
	}
	if n != 0 || ledger.Len() != 0 {
		t.Errorf("Hydrate() on a missing store loaded %d records, want 0", n)
	}
}

func TestLedger_HydrateLoadError(t *testing.T) {
	store := &memStore{loadErr: errors.New("unparsable")}
	ledger := newTestLedger(store)

	_, err := ledger.Hydrate()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Hydrate() error = %v, want a *LoadError", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d transactions after a failed hydrate, want 0", ledger.Len())
	}

	// The ledger remains usable: the next append starts over at id 1.
	store.loadErr = nil
	tx, err := ledger.Append("Coffee", decimal.RequireFromString("4.50"), Expense)
	if err != nil {
		t.Fatalf("Append() after a failed hydrate returned an error: %v", err)
	}
	if tx.ID != 1 {
		t.Errorf("Append() after a failed hydrate assigned id %d, want 1", tx.ID)
	}
}

func TestLedger_HydrateRejectsKindMismatch(t *testing.T) {
	store := &memStore{txs: []Transaction{{
		ID:          1,
		Date:        MustParseTimestamp("2025-08-26 12:30:45"),
		Description: "Paycheck",
		Amount:      USD("-2000"),
		Kind:        Income, // disagrees with the sign
	}}}
	ledger := newTestLedger(store)

	_, err := ledger.Hydrate()
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Hydrate() error = %v, want a *LoadError", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d transactions after a rejected hydrate, want 0", ledger.Len())
	}
}

func TestLedger_RoundTrip(t *testing.T) {
	// Persist followed by a fresh hydrate on an untouched store must
	// reproduce the exact sequence, field for field.
	path := filepath.Join(t.TempDir(), "finances.json")

	ledger := newTestLedger(NewJSONStore(path, "USD"))
	if _, err := ledger.Append("Coffee", decimal.RequireFromString("4.50"), Expense); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if _, err := ledger.Append("Paycheck", decimal.RequireFromString("2000.00"), Income); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	fresh := NewLedger(NewJSONStore(path, "USD"), "USD")
	n, err := fresh.Hydrate()
	if err != nil {
		t.Fatalf("Hydrate() returned an unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("Hydrate() loaded %d records, want 2", n)
	}

	want := ledger.Transactions()
	got := fresh.Transactions()
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("transaction %d did not round-trip:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}
}

func TestLedger_AppendRoundsToCurrencyFraction(t *testing.T) {
	ledger := newTestLedger(&memStore{})
	tx, err := ledger.Append("Gas", decimal.RequireFromString("4.505"), Expense)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if !tx.Amount.Equal(USD("-4.51")) {
		t.Errorf("amount stored as %s, want -4.51 (rounded to cents)", tx.Amount.Decimal())
	}
}

func TestLedger_RoundTripSubCentMagnitude(t *testing.T) {
	// A magnitude finer than the currency fraction is normalized when
	// recorded, so the persisted record and the in-memory transaction always
	// carry the same value.
	path := filepath.Join(t.TempDir(), "finances.json")

	ledger := newTestLedger(NewJSONStore(path, "USD"))
	tx, err := ledger.Append("Gas", decimal.RequireFromString("4.505"), Expense)
	if err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	fresh := NewLedger(NewJSONStore(path, "USD"), "USD")
	if _, err := fresh.Hydrate(); err != nil {
		t.Fatalf("Hydrate() returned an unexpected error: %v", err)
	}
	got := fresh.Transactions()
	if len(got) != 1 {
		t.Fatalf("Hydrate() loaded %d transactions, want 1", len(got))
	}
	if !got[0].Equal(tx) {
		t.Errorf("transaction did not round-trip:\n got %+v\nwant %+v", got[0], tx)
	}
}

func TestLedger_All(t *testing.T) {
	ledger := newTestLedger(&memStore{})
	if _, err := ledger.Append("Coffee", decimal.RequireFromString("4.50"), Expense); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if _, err := ledger.Append("Paycheck", decimal.RequireFromString("2000.00"), Income); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	var ids []int
	for i, tx := range ledger.All() {
		if tx.ID != i+1 {
			t.Errorf("All() yielded id %d at index %d", tx.ID, i)
		}
		ids = append(ids, tx.ID)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("All() yielded ids %v, want [1 2]", ids)
	}

	// The iterator honors an early break.
	var n int
	for range ledger.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("All() yielded %d values after break, want 1", n)
	}
}

func TestLedger_TransactionsReturnsCopy(t *testing.T) {
	ledger := newTestLedger(&memStore{})
	if _, err := ledger.Append("Coffee", decimal.RequireFromString("4.50"), Expense); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	view := ledger.Transactions()
	view[0].Description = "mutated"
	if ledger.Transactions()[0].Description != "Coffee" {
		t.Error("Transactions() exposed the internal sequence to mutation")
	}

	if len(ledger.Snapshot()) != 1 {
		t.Error("Snapshot() and Transactions() disagree")
	}
}
