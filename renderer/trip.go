package renderer

import (
	"bytes"
	"fmt"

	"github.com/nairv/tripsplit"
	md "github.com/nao1215/markdown"
)

// TripMarkdown renders the trip overview: the participants and a one-line
// ledger status.
func TripMarkdown(t *tripsplit.Trip) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trip %s", t.Name))
	doc.H2("Friends")
	doc.BulletList(t.Friends...)

	switch n := len(t.Bills); n {
	case 0:
		doc.PlainText("No bills recorded yet.")
	case 1:
		doc.PlainText(fmt.Sprintf("1 bill recorded, %s INR in total.", spentTotal(t)))
	default:
		doc.PlainText(fmt.Sprintf("%d bills recorded, %s INR in total.", n, spentTotal(t)))
	}

	return doc.String()
}

func spentTotal(t *tripsplit.Trip) string {
	sum := tripsplit.INR(0)
	for _, b := range t.Bills {
		sum = sum.Add(b.Total())
	}
	return sum.Fixed2()
}
