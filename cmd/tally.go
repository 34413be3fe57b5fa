package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit/renderer"
)

type tallyCmd struct{}

func (*tallyCmd) Name() string     { return "tally" }
func (*tallyCmd) Synopsis() string { return "show each friend's net settlement balance" }
func (*tallyCmd) Usage() string {
	return `tsp tally

  Recomputes every friend's net balance from the full bill history. A
  positive total means the friend owes the group; a negative one means the
  group owes them.
`
}

func (*tallyCmd) SetFlags(_ *flag.FlagSet) {}

func (p *tallyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TallyMarkdown(trip))
	return subcommands.ExitSuccess
}
