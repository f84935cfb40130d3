package fintrack

// Summary holds the ledger totals. TotalIncome and TotalExpense are both
// non-negative; Balance == TotalIncome - TotalExpense.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	Balance      Money
}

// BalanceStatus is the three-way classification of a balance.
type BalanceStatus int

const (
	PositiveBalance BalanceStatus = iota
	BreakEven
	NegativeBalance
)

func (s BalanceStatus) String() string {
	switch s {
	case PositiveBalance:
		return "Positive Balance"
	case BreakEven:
		return "Break Even"
	case NegativeBalance:
		return "Negative Balance"
	default:
		return "unknown"
	}
}

// Status derives the three-way classification from the balance. It is a pure
// function of the summary and is never stored.
func (s Summary) Status() BalanceStatus {
	switch {
	case s.Balance.IsPositive():
		return PositiveBalance
	case s.Balance.IsNegative():
		return NegativeBalance
	default:
		return BreakEven
	}
}
