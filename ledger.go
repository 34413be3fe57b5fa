package tripsplit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// This file implements the bill ledger operations on a Trip. The ledger
// trusts bills already validated by the intake; it performs no validation
// of its own beyond positional bounds.

// AddBill appends a validated bill to the ledger.
func (t *Trip) AddBill(b Bill) {
	t.Bills = append(t.Bills, b)
}

// DeleteBill removes the bill at the given 0-based position, preserving the
// relative order of the remaining bills. Authorization of the deletion is
// the caller's responsibility (see Authorize).
func (t *Trip) DeleteBill(index int) error {
	if index < 0 || index >= len(t.Bills) {
		return fmt.Errorf("bill %d of %d: %w", index+1, len(t.Bills), ErrIndexOutOfRange)
	}
	t.Bills = append(t.Bills[:index], t.Bills[index+1:]...)
	return nil
}

// BalanceEntry is one participant's net position in the settlement tally.
// A negative net means the group owes the participant money; a positive net
// means the participant owes the group.
type BalanceEntry struct {
	Name string
	Net  Money
}

// Settlement recomputes every participant's net balance from the full bill
// history: each bill credits every owed share and debits its payer by the
// sum of those shares. The debit equals the bill's settlement-currency total
// except for the sub-cent remainder even-split rounding can leave, so the
// balances conserve exactly: they always sum to zero. Balances accumulate at
// full precision; rounding happens only when rendering.
func (t *Trip) Settlement() []BalanceEntry {
	net := make(map[string]decimal.Decimal, len(t.Friends))
	order := make([]string, 0, len(t.Friends))
	for _, f := range t.Friends {
		net[f] = decimal.Zero
		order = append(order, f)
	}

	touch := func(name string) {
		if _, ok := net[name]; !ok {
			// Stray name from a legacy document; keep it in the tally so the
			// balances still conserve.
			net[name] = decimal.Zero
			order = append(order, name)
		}
	}

	for _, b := range t.Bills {
		touch(b.Payer)
		credits := decimal.Zero
		for person, owed := range b.Owed {
			touch(person)
			net[person] = net[person].Add(owed)
			credits = credits.Add(owed)
		}
		net[b.Payer] = net[b.Payer].Sub(credits)
	}

	entries := make([]BalanceEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, BalanceEntry{Name: name, Net: INR(net[name])})
	}
	return entries
}
