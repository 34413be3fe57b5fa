package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
)

type deleteCmd struct {
	number  int
	confirm string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete one bill from the ledger" }
func (*deleteCmd) Usage() string {
	return `tsp delete -n <bill number> -confirm <phrase>

  Deletes the bill at the given position, as shown by 'tsp bills'. Deletion
  is permanent, so it requires the confirmation phrase "iagreetodelete".

Usage Examples:
$ tsp delete -n 2 -confirm iagreetodelete

`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.number, "n", 0, "The 1-based bill number to delete.")
	f.StringVar(&p.confirm, "confirm", "", "The confirmation phrase.")
}

func (p *deleteCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := tripsplit.Authorize(p.confirm); err != nil {
		return fail(err)
	}

	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}
	if err := trip.DeleteBill(p.number - 1); err != nil {
		return fail(err)
	}
	if err := EncodeTrip(trip); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted bill %d, %d bills remain.\n", p.number, len(trip.Bills))
	return subcommands.ExitSuccess
}
