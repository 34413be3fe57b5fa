package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit/renderer"
)

type billsCmd struct{}

func (*billsCmd) Name() string     { return "bills" }
func (*billsCmd) Synopsis() string { return "list all bills in the trip ledger" }
func (*billsCmd) Usage() string {
	return `tsp bills

  Lists every bill in the ledger, in the order they were added. The row
  numbers are the positions 'tsp delete' expects.
`
}

func (*billsCmd) SetFlags(_ *flag.FlagSet) {}

func (p *billsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BillsMarkdown(trip))
	return subcommands.ExitSuccess
}
