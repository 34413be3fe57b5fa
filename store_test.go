package tripsplit

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	stores := map[string]Store{
		"mem": NewMemStore(),
		"dir": NewDirStore(t.TempDir()),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get(TripKey); err != nil || ok {
				t.Fatalf("Get on empty store = (ok=%v, err=%v), want absent", ok, err)
			}

			trip := goaTrip(t)
			addBill(t, trip, BillInput{Payer: "Alice", Amount: d("300"), Currency: "USD", Rate: d("80")})
			if err := SaveTrip(s, trip); err != nil {
				t.Fatalf("SaveTrip() failed: %v", err)
			}

			loaded, ok, err := LoadTrip(s)
			if err != nil || !ok {
				t.Fatalf("LoadTrip() = (ok=%v, err=%v)", ok, err)
			}
			if loaded.Name != "Goa" || len(loaded.Friends) != 3 || len(loaded.Bills) != 1 {
				t.Fatalf("loaded trip = %+v", loaded)
			}
			b := loaded.Bills[0]
			if b.Payer != "Alice" || b.TotalINR.String() != "24000" {
				t.Errorf("loaded bill = %+v", b)
			}
			if got := b.Share("Carol").Fixed2(); got != "8000.00" {
				t.Errorf("loaded Carol share = %s, want 8000.00", got)
			}

			if err := s.Delete(TripKey); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, ok, _ := s.Get(TripKey); ok {
				t.Errorf("trip still present after delete")
			}
			// Deleting an absent key is not an error.
			if err := s.Delete(TripKey); err != nil {
				t.Errorf("second Delete() failed: %v", err)
			}
		})
	}
}

func TestDirStoreRejectsPathKeys(t *testing.T) {
	s := NewDirStore(t.TempDir())
	for _, key := range []string{"", "../escape", filepath.Join("a", "b")} {
		if err := s.Set(key, []byte("x")); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Set(%q) error = %v, want %v", key, err, ErrInvalidInput)
		}
	}
}

func TestClearTripRequiresPhrase(t *testing.T) {
	s := NewMemStore()
	if err := SaveTrip(s, goaTrip(t)); err != nil {
		t.Fatalf("SaveTrip() failed: %v", err)
	}

	if err := ClearTrip(s, "please"); !errors.Is(err, ErrAuthorizationDenied) {
		t.Errorf("ClearTrip(wrong phrase) error = %v, want %v", err, ErrAuthorizationDenied)
	}
	if _, ok, _ := LoadTrip(s); !ok {
		t.Fatalf("denied clear removed the trip")
	}

	if err := ClearTrip(s, "iagreetodelete"); err != nil {
		t.Fatalf("ClearTrip() failed: %v", err)
	}
	if _, ok, _ := LoadTrip(s); ok {
		t.Errorf("trip still present after clear")
	}
}

func TestAPIKeyRoundTrip(t *testing.T) {
	s := NewMemStore()
	if _, ok, _ := LoadAPIKey(s); ok {
		t.Fatalf("key present in empty store")
	}
	if err := SaveAPIKey(s, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SaveAPIKey(blank) error = %v, want %v", err, ErrInvalidInput)
	}
	if err := SaveAPIKey(s, "sk-test"); err != nil {
		t.Fatalf("SaveAPIKey() failed: %v", err)
	}
	key, ok, err := LoadAPIKey(s)
	if err != nil || !ok || key != "sk-test" {
		t.Fatalf("LoadAPIKey() = (%q, %v, %v)", key, ok, err)
	}
	if err := ClearAPIKey(s); err != nil {
		t.Fatalf("ClearAPIKey() failed: %v", err)
	}
	if _, ok, _ := LoadAPIKey(s); ok {
		t.Errorf("key still present after clear")
	}
}

// A legacy document written by the original web app decodes cleanly: bill
// IDs are optional and amounts arrive as bare JSON numbers.
func TestDecodeLegacyDocument(t *testing.T) {
	data := []byte(`{
		"tripName": "Goa",
		"friends": ["Alice", "Bob", "Carol"],
		"bills": [{
			"who_paid": "Alice",
			"amount": 300,
			"currency": "USD",
			"conversion_rate_to_inr": 80,
			"total_inr": 24000,
			"who_owes": {"Alice": 8000, "Bob": 8000, "Carol": 8000}
		}]
	}`)
	trip, err := DecodeTrip(data)
	if err != nil {
		t.Fatalf("DecodeTrip() failed: %v", err)
	}
	if trip.Bills[0].ID != "" {
		t.Errorf("legacy bill grew an ID: %q", trip.Bills[0].ID)
	}
	if got := trip.Bills[0].Share("Bob").Fixed2(); got != "8000.00" {
		t.Errorf("Bob share = %s, want 8000.00", got)
	}
	if sum := sumNet(trip.Settlement()); !sum.IsZero() {
		t.Errorf("legacy settlement sums to %s, want 0", sum)
	}
}
