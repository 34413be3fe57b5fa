package tripsplit

import (
	"testing"

	"github.com/shopspring/decimal"
)

// goaTrip returns the trip used across tests: "Goa" with Alice, Bob and
// Carol.
func goaTrip(t *testing.T) *Trip {
	t.Helper()
	trip, err := NewTrip("Goa")
	if err != nil {
		t.Fatalf("NewTrip() failed: %v", err)
	}
	for _, f := range []string{"Alice", "Bob", "Carol"} {
		if err := trip.AddFriend(f); err != nil {
			t.Fatalf("AddFriend(%q) failed: %v", f, err)
		}
	}
	return trip
}

// d is a helper for tests to build decimals from a literal.
func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// addBill composes and appends an explicit-form bill, failing the test on
// any validation error.
func addBill(t *testing.T, trip *Trip, in BillInput) Bill {
	t.Helper()
	bill, err := trip.ComposeBill(in)
	if err != nil {
		t.Fatalf("ComposeBill() failed: %v", err)
	}
	trip.AddBill(bill)
	return bill
}

// netOf returns the rounded net balance of one participant from a
// settlement.
func netOf(t *testing.T, entries []BalanceEntry, name string) string {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e.Net.Fixed2()
		}
	}
	t.Fatalf("no settlement entry for %q", name)
	return ""
}
