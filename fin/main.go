package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fintrack/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer describes the CLI for shell completion. Running `COMP_INSTALL=1
// fin` installs it.
var completer = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.json"),
		"db-file":     predict.Files("*.db"),
		"currency":    predict.Set{"USD", "EUR", "GBP", "JPY"},
		"v":           predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"add": {Flags: map[string]complete.Predictor{
			"m": predict.Nothing,
			"a": predict.Nothing,
			"t": predict.Set{"income", "expense"},
		}},
		"tx": {Flags: map[string]complete.Predictor{
			"head": predict.Nothing,
			"tail": predict.Nothing,
		}},
		"summary": {},
		"save":    {},
		"export": {Flags: map[string]complete.Predictor{
			"o": predict.Files("*.csv"),
		}},
		"topic": {Args: predict.Set{"readme", "ledger", "export"}},
	},
}

func main() {
	completer.Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()
	os.Exit(int(commander.Execute(context.Background())))
}
