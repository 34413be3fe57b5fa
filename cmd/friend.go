package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit/renderer"
)

type friendCmd struct{}

func (*friendCmd) Name() string     { return "friend" }
func (*friendCmd) Synopsis() string { return "add friends to the trip, or list them" }
func (*friendCmd) Usage() string {
	return `tsp friend [<name>...]

  Adds the given friends to the trip. Names are kept exactly as entered and
  must be unique. Without arguments, shows the trip overview.

Usage Examples:
$ tsp friend Dave Eve
$ tsp friend

`
}

func (*friendCmd) SetFlags(_ *flag.FlagSet) {}

func (p *friendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.TripMarkdown(trip))
		return subcommands.ExitSuccess
	}

	for _, name := range f.Args() {
		if err := trip.AddFriend(name); err != nil {
			return fail(err)
		}
	}
	if err := EncodeTrip(trip); err != nil {
		return fail(err)
	}
	fmt.Printf("Added %d friends, the trip now has %d.\n", f.NArg(), len(trip.Friends))
	return subcommands.ExitSuccess
}
