package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
)

type keyCmd struct {
	set   string
	clear bool
}

func (*keyCmd) Name() string     { return "key" }
func (*keyCmd) Synopsis() string { return "manage the stored transcription API key" }
func (*keyCmd) Usage() string {
	return `tsp key [-set <key> | -clear]

  Stores, clears or inspects the API key used by the transcription service
  in 'tsp assist'. The key is kept in the local store and never leaves the
  machine except toward the transcription endpoint. Without flags, reports
  whether a key is stored.
`
}

func (p *keyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Store this API key.")
	f.BoolVar(&p.clear, "clear", false, "Remove the stored API key.")
}

func (p *keyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	switch {
	case p.set != "" && p.clear:
		fmt.Println("Cannot use -set and -clear together.")
		return subcommands.ExitUsageError
	case p.set != "":
		if err := tripsplit.SaveAPIKey(store, p.set); err != nil {
			return fail(err)
		}
		fmt.Println("API key stored.")
	case p.clear:
		if err := tripsplit.ClearAPIKey(store); err != nil {
			return fail(err)
		}
		fmt.Println("API key removed.")
	default:
		if _, ok, err := tripsplit.LoadAPIKey(store); err != nil {
			return fail(err)
		} else if ok {
			fmt.Println("An API key is stored.")
		} else {
			fmt.Println("No API key stored, set one with 'tsp key -set <key>'.")
		}
	}
	return subcommands.ExitSuccess
}
