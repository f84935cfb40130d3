package renderer

import (
	"fmt"
	"strings"

	"github.com/fintrack/fintrack"
)

// Summary renders the ledger totals and the derived balance status as
// markdown.
func Summary(s fintrack.Summary) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Financial Summary\n\n")
	fmt.Fprintf(b, "| | |\n")
	fmt.Fprintf(b, "|:---|---:|\n")
	fmt.Fprintf(b, "| Total Income | %s |\n", s.TotalIncome)
	fmt.Fprintf(b, "| Total Expenses | %s |\n", s.TotalExpense)
	fmt.Fprintf(b, "| Balance | %s |\n", s.Balance)
	fmt.Fprintf(b, "\nFinancial Status: **%s**\n", s.Status())
	return b.String()
}
