package fintrack

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a signed monetary value in the ledger currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a decimal value and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// ParseMoney parses a decimal amount string into a Money of the given currency.
func ParseMoney(str, currency string) (Money, error) {
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, err
	}
	return M(v, currency), nil
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and grouping,
// e.g. "$1,995.50". The value is rounded to the currency's fraction.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Round returns the value rounded to the currency's fraction (cents, for
// USD).
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction)), cur: m.cur}
}

func (m Money) Currency() string       { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Neg() Money             { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// MarshalJSON encodes the value as a bare JSON number in major units,
// exactly as held in memory. The currency itself is a property of the
// ledger, not of the stored record.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value)
}

var _ json.Marshaler = Money{}
