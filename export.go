package tripsplit

import (
	"fmt"
	"strings"
)

// ExportCSV renders the whole trip as the comma-separated summary document:
// one row per bill in ledger order, a blank line, then the settlement tally
// with one row per participant. The layout is fixed; names are written as
// entered.
func ExportCSV(t *Trip) string {
	var b strings.Builder

	b.WriteString("Bill No,Who Paid,Amount,Currency,Conversion Rate,Who Owes\n")
	for i, bill := range t.Bills {
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s\n",
			i+1,
			bill.Payer,
			bill.Amount.String(),
			bill.Currency,
			bill.Rate.String(),
			formatOwed(bill.owedMoney(), t.Friends),
		)
	}

	b.WriteString("\nSettlement Tally\nFriend,Total Owes (INR)\n")
	for _, e := range t.Settlement() {
		fmt.Fprintf(&b, "%s,%s\n", e.Name, e.Net.Fixed2())
	}

	return b.String()
}

// ExportFilename returns the download file name for the trip summary.
func ExportFilename(t *Trip) string {
	return t.Name + "_Expenses.csv"
}
