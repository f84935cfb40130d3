// Package renderer formats ledger data as markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/fintrack/fintrack"
)

// maxDescription is the display width descriptions are truncated to.
// Storage always keeps the full text.
const maxDescription = 25

// Transactions renders the transaction list as a markdown table in
// insertion order.
func Transactions(txs []fintrack.Transaction) string {
	if len(txs) == 0 {
		return "No transactions found.\n"
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "| ID | Date | Description | Amount | Type |\n")
	fmt.Fprintf(b, "|---:|:-----|:------------|-------:|:-----|\n")
	for _, tx := range txs {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n",
			tx.ID, tx.Date, truncate(tx.Description, maxDescription), tx.Amount, tx.Kind)
	}
	return b.String()
}

// truncate shortens s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
