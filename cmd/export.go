package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the trip as a CSV summary" }
func (*exportCmd) Usage() string {
	return `tsp export [-o <file>]

  Writes the whole trip as a CSV summary: one row per bill, then the
  settlement tally. The default file name is <trip>_Expenses.csv; use
  '-o -' to write to stdout.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to <trip>_Expenses.csv, '-' for stdout.")
}

func (p *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}

	csv := tripsplit.ExportCSV(trip)

	if p.output == "-" {
		fmt.Print(csv)
		return subcommands.ExitSuccess
	}

	filename := p.output
	if filename == "" {
		filename = tripsplit.ExportFilename(trip)
	}
	if err := os.WriteFile(filename, []byte(csv), 0o644); err != nil {
		return fail(fmt.Errorf("could not write %q: %v", filename, err))
	}
	fmt.Printf("Exported %d bills to %s\n", len(trip.Bills), filename)
	return subcommands.ExitSuccess
}
