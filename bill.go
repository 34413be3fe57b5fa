package tripsplit

import (
	"github.com/shopspring/decimal"
)

// Bill records one expense paid by a single participant on behalf of the
// group. A bill is immutable once created; the only mutation the ledger
// supports is whole-record deletion.
//
// The JSON field names mirror the stored trip document: amounts are kept in
// the bill's own currency, and the settlement-currency total is stored
// alongside the conversion rate that produced it.
type Bill struct {
	ID       string                     `json:"id,omitempty"`
	Payer    string                     `json:"who_paid"`
	Amount   decimal.Decimal            `json:"amount"`
	Currency string                     `json:"currency"`
	Rate     decimal.Decimal            `json:"conversion_rate_to_inr"`
	TotalINR decimal.Decimal            `json:"total_inr"`
	Owed     map[string]decimal.Decimal `json:"who_owes"`
}

// Total returns the bill total in the settlement currency.
func (b Bill) Total() Money { return INR(b.TotalINR) }

// Share returns the amount owed by one participant, zero if the
// participant has no share of this bill.
func (b Bill) Share(name string) Money {
	if v, ok := b.Owed[name]; ok {
		return INR(v)
	}
	return INR(0)
}

// OwedTotal sums all owed shares. It equals Total within rounding tolerance
// (0.01 per participant) for any bill built by the intake.
func (b Bill) OwedTotal() Money {
	sum := INR(0)
	for _, v := range b.Owed {
		sum = sum.Add(INR(v))
	}
	return sum
}

// owedMoney converts the owed mapping for rendering and export.
func (b Bill) owedMoney() map[string]Money {
	owed := make(map[string]Money, len(b.Owed))
	for name, v := range b.Owed {
		owed[name] = INR(v)
	}
	return owed
}
