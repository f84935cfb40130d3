// Package cmd implements the fin CLI application to manage a personal
// finance ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&summaryCmd{}, "ledger")
	c.Register(&saveCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Defaults come from the environment, optionally seeded by a .env file in
// the working directory. This must run before the flag defaults below are
// computed.
var _ = godotenv.Load()

var ledgerFile = flag.String("ledger-file", envOr("FINTRACK_LEDGER", "finances.json"), "Path to the ledger file (JSON format)")
var dbFile = flag.String("db-file", os.Getenv("FINTRACK_DB"), "Path to a SQLite database to use instead of the JSON ledger file")
var currency = flag.String("currency", envOr("FINTRACK_CURRENCY", "USD"), "ISO 4217 currency code the ledger amounts are denominated in")
var verbose = flag.Bool("v", false, "Enable debug logging")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupLogging configures the diagnostic logger. It must be called after
// flag.Parse.
func SetupLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// openStore opens the store selected by the app flags: the SQLite database
// when -db-file is set, the JSON ledger file otherwise.
func openStore() (fintrack.Store, error) {
	if *dbFile != "" {
		return fintrack.NewSQLiteStore(*dbFile, *currency)
	}
	return fintrack.NewJSONStore(*ledgerFile, *currency), nil
}

// openLedger opens the store and hydrates a ledger from it, reporting the
// outcome. A corrupt store is a warning, not a failure: the ledger starts
// empty and stays usable.
func openLedger() (*fintrack.Ledger, fintrack.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open store: %w", err)
	}

	ledger := fintrack.NewLedger(store, *currency)
	n, err := ledger.Hydrate()
	switch {
	case err != nil:
		logrus.WithError(err).Warn("starting with an empty ledger")
	case n == 0:
		logrus.WithField("store", store.Name()).Debug("no existing data, starting fresh")
	default:
		logrus.WithFields(logrus.Fields{"store": store.Name(), "count": n}).Debug("loaded transactions")
	}
	return ledger, store, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, which is readable enough.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
