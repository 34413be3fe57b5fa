// Package cmd implements the CLI application to manage a trip expense ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "trip")
	c.Register(&friendCmd{}, "trip")
	c.Register(&clearCmd{}, "trip")

	c.Register(&addCmd{}, "bills")
	c.Register(&deleteCmd{}, "bills")
	c.Register(&billsCmd{}, "bills")

	c.Register(&tallyCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&assistCmd{}, "assist")
	c.Register(&keyCmd{}, "assist")

	c.Register(&topicCmd{}, "documentation")

	for _, name := range []string{
		"init", "friend", "clear", "add", "delete", "bills",
		"tally", "export", "assist", "key", "topic",
	} {
		knownCommands[name] = true
	}
}

// knownCommands lets the main package tell a builtin from an extension.
var knownCommands = map[string]bool{
	"help": true, "flags": true, "commands": true,
}

// Known reports whether name is a builtin subcommand.
func Known(name string) bool { return knownCommands[name] }

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store-dir", defaultStoreDir(), "Path to the folder holding the trip data")
var Verbose = flag.Bool("v", false, "Enable debug logging")

func defaultStoreDir() string {
	if dir := os.Getenv(EnvStoreDir); dir != "" {
		return dir
	}
	return ".tsp"
}

// OpenStore opens the application store.
func OpenStore() tripsplit.Store {
	return tripsplit.NewDirStore(*storeDir)
}

// DecodeTrip loads the current trip from the app store. It fails when no
// trip has been set up yet.
func DecodeTrip() (*tripsplit.Trip, error) {
	trip, ok, err := tripsplit.LoadTrip(OpenStore())
	if err != nil {
		return nil, fmt.Errorf("could not load trip: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("no trip set up yet, run 'tsp init' first")
	}
	return trip, nil
}

// EncodeTrip writes the trip back to the app store.
func EncodeTrip(t *tripsplit.Trip) error {
	if err := tripsplit.SaveTrip(OpenStore(), t); err != nil {
		return fmt.Errorf("could not save trip: %w", err)
	}
	return nil
}

// fail prints the error and returns the failure status. Most Execute
// methods end with it.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
