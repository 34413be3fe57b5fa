// Command tsp manages a shared trip expense ledger: friends, bills, the
// settlement tally, and a voice-assisted way to enter new bills.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	// An unknown subcommand may be an external tsp-<name> extension.
	if args := flag.Args(); len(args) > 0 && !cmd.Known(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and their main
// flags. It exits the process when invoked by the shell's completion hook.
func completion() {
	gated := map[string]complete.Predictor{"n": predict.Nothing, "confirm": predict.Nothing}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-dir": predict.Dirs("*"),
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"init":   {Flags: map[string]complete.Predictor{"friends": predict.Nothing}},
			"friend": {},
			"clear":  {Flags: map[string]complete.Predictor{"confirm": predict.Nothing}},
			"add": {Flags: map[string]complete.Predictor{
				"who": predict.Nothing, "amount": predict.Nothing,
				"currency": predict.Nothing, "rate": predict.Nothing, "pct": predict.Nothing,
			}},
			"delete": {Flags: gated},
			"bills":  {},
			"tally":  {},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"assist": {Flags: map[string]complete.Predictor{
				"audio": predict.Files("*"), "text": predict.Nothing, "yes": predict.Nothing,
			}},
			"key":   {Flags: map[string]complete.Predictor{"set": predict.Nothing, "clear": predict.Nothing}},
			"topic": {Args: predict.Set{"readme", "splitting", "tally", "assist", "export", "*"}},
		},
	}
	c.Complete("tsp")
}
