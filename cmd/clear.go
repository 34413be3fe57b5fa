package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
)

type clearCmd struct {
	confirm string
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete the whole trip" }
func (*clearCmd) Usage() string {
	return `tsp clear -confirm <phrase>

  Deletes the trip and all its bills so a new one can be set up. This is
  permanent, so it requires the confirmation phrase "iagreetodelete". The
  stored transcription key is kept.

Usage Examples:
$ tsp clear -confirm iagreetodelete

`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.confirm, "confirm", "", "The confirmation phrase.")
}

func (p *clearCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := tripsplit.ClearTrip(OpenStore(), p.confirm); err != nil {
		return fail(err)
	}
	fmt.Println("Trip deleted.")
	return subcommands.ExitSuccess
}
