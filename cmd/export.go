package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a snapshot of the ledger to a CSV file" }
func (*exportCmd) Usage() string {
	return `fin export [-o <file>]

  Writes the current ledger snapshot to a new, uniquely time-stamped CSV
  file. Use -o to choose the file name, or "-o -" to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to a time-stamped name; \"-\" writes to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	snapshot := ledger.Snapshot()
	if len(snapshot) == 0 {
		fmt.Fprintln(os.Stderr, "No transactions to export.")
		return subcommands.ExitSuccess
	}

	var w io.Writer
	filename := c.output
	switch filename {
	case "-":
		w = os.Stdout
	case "":
		filename = fintrack.ExportFilename(time.Now())
		fallthrough
	default:
		file, err := os.Create(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := fintrack.ExportCSV(w, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if filename != "-" {
		fmt.Printf("Exported %d transactions to %q\n", len(snapshot), filename)
	}
	return subcommands.ExitSuccess
}
