package tripsplit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestComposeBillFieldValidation(t *testing.T) {
	trip := goaTrip(t)
	tests := []struct {
		name    string
		in      BillInput
		wantErr error
	}{
		{
			name:    "zero amount",
			in:      BillInput{Payer: "Alice", Amount: d("0"), Currency: "USD", Rate: d("80")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative rate",
			in:      BillInput{Payer: "Alice", Amount: d("10"), Currency: "USD", Rate: d("-1")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "blank currency",
			in:      BillInput{Payer: "Alice", Amount: d("10"), Currency: "  ", Rate: d("80")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "payer not in trip",
			in:      BillInput{Payer: "Dave", Amount: d("10"), Currency: "USD", Rate: d("80")},
			wantErr: ErrUnknownParticipant,
		},
		{
			name: "percentages off hundred",
			in: BillInput{Payer: "Alice", Amount: d("100"), Currency: "USD", Rate: d("85"),
				Percents: map[string]Percent{"Alice": P(50), "Bob": P(40)}},
			wantErr: ErrSplitMismatch,
		},
		{
			name: "percentage for stranger",
			in: BillInput{Payer: "Alice", Amount: d("100"), Currency: "USD", Rate: d("85"),
				Percents: map[string]Percent{"Alice": P(50), "Dave": P(50)}},
			wantErr: ErrUnknownParticipant,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := trip.ComposeBill(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ComposeBill() error = %v, want %v", err, tc.wantErr)
			}
			if len(trip.Bills) != 0 {
				t.Fatalf("failed compose changed the ledger")
			}
		})
	}
}

// All-zero percentage fields are the deliberate even-split fallback over all
// trip participants, not an error.
func TestComposeBillEvenFallback(t *testing.T) {
	trip := goaTrip(t)
	in := BillInput{
		Payer: "Alice", Amount: d("300"), Currency: "USD", Rate: d("80"),
		Percents: map[string]Percent{"Alice": P(0), "Bob": P(0)},
	}
	if in.HasCustomSplit() {
		t.Errorf("HasCustomSplit() = true for all-zero fields")
	}
	bill, err := trip.ComposeBill(in)
	if err != nil {
		t.Fatalf("ComposeBill() failed: %v", err)
	}
	if len(bill.Owed) != 3 {
		t.Fatalf("even fallback split among %d, want all 3 participants", len(bill.Owed))
	}
	for _, f := range trip.Friends {
		if got := bill.Share(f).Fixed2(); got != "8000.00" {
			t.Errorf("share of %s = %s, want 8000.00", f, got)
		}
	}
	if got := bill.TotalINR.String(); got != "24000" {
		t.Errorf("TotalINR = %s, want 24000", got)
	}
	if bill.ID == "" {
		t.Errorf("bill has no ID")
	}
}

func TestComposeBillPartialCustomSplit(t *testing.T) {
	trip := goaTrip(t)
	// Only two of three participants carry a share; that is fine as long as
	// the shares total 100.
	bill, err := trip.ComposeBill(BillInput{
		Payer: "Alice", Amount: d("100"), Currency: "INR", Rate: d("1"),
		Percents: map[string]Percent{"Bob": P(60), "Carol": P(40)},
	})
	if err != nil {
		t.Fatalf("ComposeBill() failed: %v", err)
	}
	if len(bill.Owed) != 2 {
		t.Fatalf("got %d shares, want 2", len(bill.Owed))
	}
	if got := bill.Share("Bob").Fixed2(); got != "60.00" {
		t.Errorf("Bob share = %s, want 60.00", got)
	}
}

// fakeExtractor returns a canned raw response or an error.
type fakeExtractor struct {
	raw string
	err error
}

func (f fakeExtractor) Extract(_ context.Context, _ string) (string, error) {
	return f.raw, f.err
}

// fakeTranscriber returns a canned transcript or an error.
type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(_ context.Context, _ io.Reader, _ string) (string, error) {
	return f.text, f.err
}

func runAssisted(t *testing.T, trip *Trip, raw string) (*Intake, error) {
	t.Helper()
	in := NewIntake(trip)
	if err := in.SetTranscript("bob paid twenty dollars"); err != nil {
		t.Fatalf("SetTranscript() failed: %v", err)
	}
	if err := in.Extract(context.Background(), fakeExtractor{raw: raw}); err != nil {
		return in, err
	}
	_, err := in.Validate()
	return in, err
}

func TestAssistedIntakeCommit(t *testing.T) {
	trip := goaTrip(t)
	// Payer arrives sloppy ("bob ") and normalizes onto the participant.
	raw := `{"WhoPaid": "bob ", "Amount": 100, "Currency": "USD", "ConversionRate": 85, "SplitType": "equal"}`

	in, err := runAssisted(t, trip, raw)
	if err != nil {
		t.Fatalf("assisted intake failed: %v", err)
	}
	if in.State() != AwaitingConfirmation {
		t.Fatalf("state = %v, want %v", in.State(), AwaitingConfirmation)
	}
	if len(trip.Bills) != 0 {
		t.Fatalf("bill committed before confirmation")
	}

	bill, err := in.Commit()
	if err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}
	if in.State() != Committed {
		t.Errorf("state = %v, want %v", in.State(), Committed)
	}
	if bill.Payer != "Bob" {
		t.Errorf("payer = %q, want Bob", bill.Payer)
	}
	if len(trip.Bills) != 1 {
		t.Fatalf("got %d bills, want 1", len(trip.Bills))
	}
	if got := trip.Bills[0].Share("Carol").Fixed2(); got != "2833.33" {
		t.Errorf("Carol share = %s, want 2833.33", got)
	}
}

func TestAssistedIntakeCancel(t *testing.T) {
	trip := goaTrip(t)
	raw := `{"WhoPaid": "Alice", "Amount": 10, "Currency": "USD", "ConversionRate": 80, "SplitType": "even"}`
	in, err := runAssisted(t, trip, raw)
	if err != nil {
		t.Fatalf("assisted intake failed: %v", err)
	}
	in.Cancel()
	if in.State() != Cancelled {
		t.Errorf("state = %v, want %v", in.State(), Cancelled)
	}
	if _, err := in.Commit(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Commit() after cancel error = %v, want %v", err, ErrInvalidInput)
	}
	if len(trip.Bills) != 0 {
		t.Errorf("cancelled intake committed a bill")
	}
}

func TestAssistedIntakeRejections(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "unknown payer",
			raw:     `{"WhoPaid": "Dave", "Amount": 10, "Currency": "USD", "ConversionRate": 80, "SplitType": "equal"}`,
			wantErr: ErrUnknownParticipant,
		},
		{
			name:    "missing amount",
			raw:     `{"WhoPaid": "Alice", "Currency": "USD", "ConversionRate": 80, "SplitType": "equal"}`,
			wantErr: ErrDraftIncomplete,
		},
		{
			name:    "percentage without details",
			raw:     `{"WhoPaid": "Alice", "Amount": 10, "Currency": "USD", "ConversionRate": 80, "SplitType": "percentage"}`,
			wantErr: ErrDraftIncomplete,
		},
		{
			name:    "unknown split type",
			raw:     `{"WhoPaid": "Alice", "Amount": 10, "Currency": "USD", "ConversionRate": 80, "SplitType": "weird"}`,
			wantErr: ErrDraftIncomplete,
		},
		{
			name: "percentage naming a stranger",
			raw: `{"WhoPaid": "Alice", "Amount": 10, "Currency": "USD", "ConversionRate": 80,
				"SplitType": "percentage", "SplitDetails": {"alice": 50, "dave": 30, "eve": 20}}`,
			wantErr: ErrUnknownParticipant,
		},
		{
			name:    "unparsable output",
			raw:     "sorry, I could not help with that",
			wantErr: ErrExternalCall,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trip := goaTrip(t)
			in, err := runAssisted(t, trip, tc.raw)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("assisted intake error = %v, want %v", err, tc.wantErr)
			}
			if in.State() != Rejected {
				t.Errorf("state = %v, want %v", in.State(), Rejected)
			}
			if !errors.Is(in.Reason(), tc.wantErr) {
				t.Errorf("Reason() = %v, want %v", in.Reason(), tc.wantErr)
			}
			if len(trip.Bills) != 0 {
				t.Errorf("rejected intake committed a bill")
			}
		})
	}
}

// The rejection message lists every offending name.
func TestAssistedIntakeListsAllOffenders(t *testing.T) {
	trip := goaTrip(t)
	raw := `{"WhoPaid": "Alice", "Amount": 10, "Currency": "USD", "ConversionRate": 80,
		"SplitType": "percentage", "SplitDetails": {"alice": 50, "dave": 30, "eve": 20}}`
	_, err := runAssisted(t, trip, raw)
	if err == nil {
		t.Fatal("assisted intake succeeded, want rejection")
	}
	for _, name := range []string{"Dave", "Eve"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name offender %s", err, name)
		}
	}
}

// Percentage shares may arrive numeric or as strings with a percent sign.
func TestAssistedIntakePercentForms(t *testing.T) {
	trip := goaTrip(t)
	raw := `{"WhoPaid": "Bob", "Amount": 100, "Currency": "USD", "ConversionRate": 85,
		"SplitType": "percentage", "SplitDetails": {"alice": "50%", "BOB": 30, "carol": "20"}}`
	in, err := runAssisted(t, trip, raw)
	if err != nil {
		t.Fatalf("assisted intake failed: %v", err)
	}
	bill := in.Bill()
	want := map[string]string{"Alice": "4250.00", "Bob": "2550.00", "Carol": "1700.00"}
	for name, w := range want {
		if got := bill.Share(name).Fixed2(); got != w {
			t.Errorf("share of %s = %s, want %s", name, got, w)
		}
	}
}

func TestAssistedIntakeExternalFailures(t *testing.T) {
	trip := goaTrip(t)

	in := NewIntake(trip)
	err := in.Transcribe(context.Background(), fakeTranscriber{err: fmt.Errorf("boom")}, strings.NewReader("audio"), "voice.wav")
	if !errors.Is(err, ErrExternalCall) {
		t.Errorf("Transcribe() error = %v, want %v", err, ErrExternalCall)
	}
	if in.State() != Rejected {
		t.Errorf("state = %v, want %v", in.State(), Rejected)
	}

	in = NewIntake(trip)
	if err := in.SetTranscript("text"); err != nil {
		t.Fatalf("SetTranscript() failed: %v", err)
	}
	err = in.Extract(context.Background(), fakeExtractor{err: fmt.Errorf("boom")})
	if !errors.Is(err, ErrExternalCall) {
		t.Errorf("Extract() error = %v, want %v", err, ErrExternalCall)
	}
	if len(trip.Bills) != 0 {
		t.Errorf("failed external call left a bill behind")
	}
}

func TestAssistedIntakeTranscription(t *testing.T) {
	trip := goaTrip(t)
	in := NewIntake(trip)
	err := in.Transcribe(context.Background(), fakeTranscriber{text: "alice paid ten dollars"}, strings.NewReader("audio"), "voice.wav")
	if err != nil {
		t.Fatalf("Transcribe() failed: %v", err)
	}
	if in.State() != AwaitingExtraction {
		t.Errorf("state = %v, want %v", in.State(), AwaitingExtraction)
	}
	if in.Transcript() != "alice paid ten dollars" {
		t.Errorf("transcript = %q", in.Transcript())
	}
}
