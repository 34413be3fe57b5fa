package renderer

import (
	"bytes"
	"fmt"

	"github.com/nairv/tripsplit"
	md "github.com/nao1215/markdown"
)

// TallyMarkdown renders the settlement tally. A positive net means the
// participant owes the group; a negative net means the group owes them.
func TallyMarkdown(t *tripsplit.Trip) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Settlement Tally for %s", t.Name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Friend", "Total Owes (INR)"},
		Rows:      [][]string{},
	}
	for _, e := range t.Settlement() {
		table.Rows = append(table.Rows, []string{e.Name, e.Net.Fixed2()})
	}
	doc.Table(table)

	doc.PlainText("A negative total means the group owes that friend.")

	return doc.String()
}
