package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saveCmd struct{}

func (*saveCmd) Name() string { return "save" }
func (*saveCmd) Synopsis() string {
	return "rewrite the ledger store in canonical form"
}
func (*saveCmd) Usage() string {
	return `fin save

  Loads the ledger and writes it back, whole, in the canonical format. Useful
  after hand-editing the JSON file, and as an explicit on-demand save point.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := ledger.Persist(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved %d transactions to %s\n", ledger.Len(), store.Name())
	return subcommands.ExitSuccess
}
