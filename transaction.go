package fintrack

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind is a typed string classifying a transaction.
type Kind string

// The two transaction kinds. The kind is denormalized: the sign of the
// amount is the source of truth and the two must always agree.
const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is one recorded monetary event.
type Transaction struct {
	ID          int       // positive, unique, assigned as count_at_insertion + 1
	Date        Timestamp // creation time, second resolution, local clock
	Description string    // free text, stored untruncated
	Amount      Money     // signed: positive for income, negative for expense
	Kind        Kind      // denormalized label, must agree with the sign of Amount
}

// Equal reports whether two transactions are identical field for field.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date.Equal(o.Date) &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Kind == o.Kind
}

// Check validates the internal consistency of a stored transaction: the kind
// label must agree with the sign of the amount. A zero amount is accepted
// under either kind.
func (t Transaction) Check() error {
	if t.ID <= 0 {
		return fmt.Errorf("transaction id must be positive, got %d", t.ID)
	}
	switch t.Kind {
	case Income:
		if t.Amount.IsNegative() {
			return fmt.Errorf("transaction %d is income but has negative amount %s", t.ID, t.Amount.Decimal())
		}
	case Expense:
		if t.Amount.IsPositive() {
			return fmt.Errorf("transaction %d is expense but has positive amount %s", t.ID, t.Amount.Decimal())
		}
	default:
		return fmt.Errorf("transaction %d has unknown type %q", t.ID, t.Kind)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in the canonical store order: id, date, description,
// amount, type.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("type", t.Kind)
	return w.MarshalJSON()
}

// record is a specialized struct for decoding a stored transaction. The
// stored amount is a bare number; the currency is supplied by the store.
type record struct {
	ID          int             `json:"id"`
	Date        Timestamp       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"type"`
}

func (r record) transaction(currency string) Transaction {
	return Transaction{
		ID:          r.ID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      M(r.Amount, currency),
		Kind:        r.Kind,
	}
}
