// Package renderer builds the markdown views printed by the tsp command.
package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/nairv/tripsplit"
	md "github.com/nao1215/markdown"
)

// BillsMarkdown renders the full bill ledger as a table, one row per bill in
// ledger order. Row numbers are the 1-based positions used by the delete
// command.
func BillsMarkdown(t *tripsplit.Trip) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Bills for %s", t.Name))

	if len(t.Bills) == 0 {
		doc.PlainText("No bills recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Who Paid", "Amount", "Currency", "Rate", "Total (INR)", "Who Owes"},
		Rows:   [][]string{},
	}
	for i, b := range t.Bills {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			b.Payer,
			b.Amount.String(),
			b.Currency,
			b.Rate.String(),
			b.Total().Fixed2(),
			owesCell(t, b),
		})
	}
	doc.Table(table)

	return doc.String()
}

// BillMarkdown renders a single bill as the confirmation view shown before
// an assisted bill is committed.
func BillMarkdown(t *tripsplit.Trip, b tripsplit.Bill) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Bill Details")
	doc.BulletList(
		fmt.Sprintf("Who Paid: %s", b.Payer),
		fmt.Sprintf("Amount: %s %s", b.Amount.String(), b.Currency),
		fmt.Sprintf("Conversion Rate: %s", b.Rate.String()),
		fmt.Sprintf("Total: %s INR", b.Total().Fixed2()),
	)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Friend", "Owes (INR)"},
		Rows:      [][]string{},
	}
	for _, name := range owedOrder(t, b) {
		table.Rows = append(table.Rows, []string{name, b.Share(name).Fixed2()})
	}
	doc.Table(table)

	return doc.String()
}

// owedOrder lists a bill's debtors in participant order, then any stray names
// from a legacy document in sorted order.
func owedOrder(t *tripsplit.Trip, b tripsplit.Bill) []string {
	names := make([]string, 0, len(b.Owed))
	seen := make(map[string]bool, len(b.Owed))
	for _, f := range t.Friends {
		if _, ok := b.Owed[f]; ok {
			names = append(names, f)
			seen[f] = true
		}
	}
	var rest []string
	for name := range b.Owed {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func owesCell(t *tripsplit.Trip, b tripsplit.Bill) string {
	parts := make([]string, 0, len(b.Owed))
	for _, name := range owedOrder(t, b) {
		parts = append(parts, fmt.Sprintf("%s: %s", name, b.Share(name).Fixed2()))
	}
	return strings.Join(parts, "; ")
}
