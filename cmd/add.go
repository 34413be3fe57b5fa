package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
	"github.com/nairv/tripsplit/renderer"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	who      string
	amount   string
	currency string
	rate     string
	pct      percentFlag
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a bill to the trip" }
func (*addCmd) Usage() string {
	return `tsp add -who <name> -amount <amount> -currency <code> -rate <rate> [-pct <name>=<percent>...]

  Adds a bill paid by one friend. The amount is converted to INR with the
  given rate and split evenly across all friends, unless explicit
  percentages are given with repeated -pct flags. Percentages must total
  exactly 100.

Usage Examples:
$ tsp add -who Alice -amount 300 -currency USD -rate 80
$ tsp add -who Bob -amount 8500 -currency INR -rate 1 -pct Alice=50 -pct Bob=30 -pct Carol=20

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	p.pct = percentFlag{}
	f.StringVar(&p.who, "who", "", "The friend who paid the bill.")
	f.StringVar(&p.amount, "amount", "", "The bill amount, in the bill's own currency.")
	f.StringVar(&p.currency, "currency", "INR", "The currency the bill was paid in.")
	f.StringVar(&p.rate, "rate", "1", "The conversion rate from the bill currency to INR.")
	f.Var(p.pct, "pct", "A percentage share, as <name>=<percent>. Repeatable.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(p.amount))
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %v", p.amount, err))
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(p.rate))
	if err != nil {
		return fail(fmt.Errorf("invalid rate %q: %v", p.rate, err))
	}

	input := tripsplit.BillInput{
		Payer:    p.who,
		Amount:   amount,
		Currency: strings.ToUpper(strings.TrimSpace(p.currency)),
		Rate:     rate,
		Percents: p.pct,
	}
	if len(p.pct) > 0 && !input.HasCustomSplit() {
		fmt.Println("All given percentages are zero; splitting evenly across all friends.")
	}

	bill, err := trip.ComposeBill(input)
	if err != nil {
		return fail(err)
	}

	trip.AddBill(bill)
	if err := EncodeTrip(trip); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BillMarkdown(trip, bill))
	return subcommands.ExitSuccess
}

// percentFlag collects repeated -pct name=value flags.
type percentFlag map[string]tripsplit.Percent

func (p percentFlag) String() string {
	parts := make([]string, 0, len(p))
	for name, pct := range p {
		parts = append(parts, name+"="+pct.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (p percentFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected <name>=<percent>, got %q", s)
	}
	pct, err := tripsplit.ParsePercent(value)
	if err != nil {
		return fmt.Errorf("invalid percent for %q: %v", name, err)
	}
	p[name] = pct
	return nil
}
