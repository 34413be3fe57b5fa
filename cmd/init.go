package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
)

type initCmd struct {
	friends string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "set up a new trip" }
func (*initCmd) Usage() string {
	return `tsp init [-friends <name,name,...>] <trip name>

  Sets up a new trip with the given name. Friends can be added here with
  -friends or later with 'tsp friend'. Fails if a trip already exists;
  use 'tsp clear' first to start over.

Usage Examples:
$ tsp init -friends Alice,Bob,Carol Goa

`
}

func (p *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.friends, "friends", "", "Comma-separated list of friends on the trip.")
}

func (p *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		return fail(fmt.Errorf("a trip name is required"))
	}

	store := OpenStore()
	if _, ok, err := tripsplit.LoadTrip(store); err != nil {
		return fail(err)
	} else if ok {
		return fail(fmt.Errorf("a trip already exists, run 'tsp clear' to start over"))
	}

	trip, err := tripsplit.NewTrip(name)
	if err != nil {
		return fail(err)
	}
	for _, friend := range strings.Split(p.friends, ",") {
		friend = strings.TrimSpace(friend)
		if friend == "" {
			continue
		}
		if err := trip.AddFriend(friend); err != nil {
			return fail(err)
		}
	}

	if err := tripsplit.SaveTrip(store, trip); err != nil {
		return fail(err)
	}
	fmt.Printf("Trip %q created with %d friends.\n", trip.Name, len(trip.Friends))
	return subcommands.ExitSuccess
}
