package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	description string
	amount      string
	kind        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `fin add -m <description> -a <amount> -t <income|expense>

  Records a transaction and saves the ledger. The amount is a positive
  magnitude; an expense is stored negated.

Usage Examples:
$ fin add -m "Coffee" -a 4.50 -t expense
$ fin add -m "Paycheck" -a 2000 -t income
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "m", "", "Description of the transaction")
	f.StringVar(&c.amount, "a", "", "Amount as a positive decimal magnitude")
	f.StringVar(&c.kind, "t", "", "Transaction type (income or expense)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if strings.TrimSpace(c.description) == "" {
		fmt.Fprintln(os.Stderr, "Error: description (-m) must not be empty.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	magnitude, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: amount %q is not a valid number.\n", c.amount)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if magnitude.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: amount must be a positive magnitude; use -t expense instead of a sign.")
		return subcommands.ExitUsageError
	}

	kind, err := fintrack.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (want income or expense).\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	tx, err := ledger.Append(c.description, magnitude, kind)
	if err != nil {
		// The transaction is in memory but this one-shot process is about to
		// exit, so a failed save means it is lost. Say so.
		fmt.Fprintf(os.Stderr, "Error: transaction was not saved: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded #%d %s %s (%s) in %s\n", tx.ID, tx.Description, tx.Amount, tx.Kind, store.Name())
	return subcommands.ExitSuccess
}
