package tripsplit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// This file implements bill intake: the explicit-form path and the assisted
// free-text path. Both converge on the same bill construction, and both are
// all-or-nothing: no failure leaves a partially recorded bill.

// BillInput holds the explicit-form fields for a new bill. Percents carries
// the per-participant percentage fields; entries that are zero or absent
// mean the participant was given no custom share.
type BillInput struct {
	Payer    string
	Amount   decimal.Decimal
	Currency string
	Rate     decimal.Decimal
	Percents map[string]Percent
}

// customShares returns the strictly positive percentage entries.
func (in BillInput) customShares() map[string]Percent {
	custom := make(map[string]Percent)
	for name, p := range in.Percents {
		if p.IsPositive() {
			custom[name] = p
		}
	}
	return custom
}

// HasCustomSplit reports whether any percentage field was filled in. When it
// is false the bill splits evenly across all trip participants; callers
// should surface that fallback to the user rather than guess silently,
// because an all-zero set of fields is indistinguishable from untouched ones.
func (in BillInput) HasCustomSplit() bool { return len(in.customShares()) > 0 }

// ComposeBill validates the explicit-form input against the trip and builds
// the resulting bill. The bill is not appended; callers add it with AddBill
// and persist the trip.
func (t *Trip) ComposeBill(in BillInput) (Bill, error) {
	if !in.Amount.IsPositive() || !in.Rate.IsPositive() || strings.TrimSpace(in.Currency) == "" {
		return Bill{}, fmt.Errorf("amount, currency and conversion rate are all required: %w", ErrInvalidInput)
	}
	if !t.HasFriend(in.Payer) {
		return Bill{}, fmt.Errorf("payer %q is %w", in.Payer, ErrUnknownParticipant)
	}

	total := M(in.Amount, in.Currency).MulRate(in.Rate)

	var owed map[string]Money
	var err error
	if custom := in.customShares(); len(custom) > 0 {
		var unknown []string
		for name := range custom {
			if !t.HasFriend(name) {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			return Bill{}, fmt.Errorf("%s: %w", strings.Join(sorted(unknown), ", "), ErrUnknownParticipant)
		}
		owed, err = PercentageSplit(total, custom)
	} else {
		// No positive percentage anywhere: deliberate fallback to an even
		// split across all trip participants.
		owed, err = EvenSplit(total, t.Friends)
	}
	if err != nil {
		return Bill{}, err
	}

	return t.newBill(in.Payer, in.Amount, strings.TrimSpace(in.Currency), in.Rate, owed), nil
}

// newBill assembles the immutable bill record from validated parts.
func (t *Trip) newBill(payer string, amount decimal.Decimal, currency string, rate decimal.Decimal, owed map[string]Money) Bill {
	owedDec := make(map[string]decimal.Decimal, len(owed))
	for name, m := range owed {
		owedDec[name] = m.Decimal()
	}
	return Bill{
		ID:       uuid.NewString(),
		Payer:    payer,
		Amount:   amount,
		Currency: currency,
		Rate:     rate,
		TotalINR: amount.Mul(rate),
		Owed:     owedDec,
	}
}

// Transcriber turns recorded audio into a transcript. A failure aborts the
// assisted flow; there is no retry.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// Extractor turns a transcript into the raw structured-draft output of the
// extraction model. The output is untrusted and may be malformed.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (string, error)
}

// IntakeState tracks the assisted intake flow.
type IntakeState int

const (
	AwaitingTranscription IntakeState = iota
	AwaitingExtraction
	AwaitingValidation
	AwaitingConfirmation
	Committed
	Cancelled
	Rejected
)

func (s IntakeState) String() string {
	switch s {
	case AwaitingTranscription:
		return "awaiting transcription"
	case AwaitingExtraction:
		return "awaiting extraction"
	case AwaitingValidation:
		return "awaiting validation"
	case AwaitingConfirmation:
		return "awaiting confirmation"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Intake drives the assisted path for one candidate bill. Unlike the
// explicit-form path it never commits silently: the fully computed bill must
// be confirmed before it is appended to the trip.
type Intake struct {
	trip       *Trip
	state      IntakeState
	transcript string
	draft      Draft
	bill       Bill
	reason     error
}

// NewIntake starts an assisted intake for the trip.
func NewIntake(t *Trip) *Intake {
	return &Intake{trip: t, state: AwaitingTranscription}
}

func (i *Intake) State() IntakeState { return i.state }
func (i *Intake) Transcript() string { return i.transcript }
func (i *Intake) Draft() Draft       { return i.draft }

// Reason returns the rejection cause once the intake is in Rejected.
func (i *Intake) Reason() error { return i.reason }

// Bill returns the fully computed candidate once the intake awaits
// confirmation.
func (i *Intake) Bill() Bill { return i.bill }

func (i *Intake) reject(err error) error {
	i.reason = err
	i.state = Rejected
	return err
}

// Transcribe sends the recorded audio to the transcriber and stores the
// transcript.
func (i *Intake) Transcribe(ctx context.Context, tr Transcriber, audio io.Reader, filename string) error {
	if i.state != AwaitingTranscription {
		return fmt.Errorf("cannot transcribe while %s: %w", i.state, ErrInvalidInput)
	}
	text, err := tr.Transcribe(ctx, audio, filename)
	if err != nil {
		return i.reject(fmt.Errorf("%w: transcription: %v", ErrExternalCall, err))
	}
	slog.Debug("transcription complete", "transcript", text)
	i.transcript = text
	i.state = AwaitingExtraction
	return nil
}

// SetTranscript records a transcript the user typed directly, skipping the
// audio step.
func (i *Intake) SetTranscript(text string) error {
	if i.state != AwaitingTranscription {
		return fmt.Errorf("cannot set transcript while %s: %w", i.state, ErrInvalidInput)
	}
	i.transcript = text
	i.state = AwaitingExtraction
	return nil
}

// Extract asks the extraction model for a structured draft and parses its
// untrusted output.
func (i *Intake) Extract(ctx context.Context, ex Extractor) error {
	if i.state != AwaitingExtraction {
		return fmt.Errorf("cannot extract while %s: %w", i.state, ErrInvalidInput)
	}
	raw, err := ex.Extract(ctx, i.transcript)
	if err != nil {
		return i.reject(fmt.Errorf("%w: extraction: %v", ErrExternalCall, err))
	}
	slog.Debug("extraction complete", "raw", raw)
	draft, err := ParseDraft(raw)
	if err != nil {
		return i.reject(err)
	}
	i.draft = draft
	i.state = AwaitingValidation
	return nil
}

// Validate checks the draft against the trip and computes the candidate
// bill. On success the intake awaits confirmation; any validation failure is
// terminal.
func (i *Intake) Validate() (Bill, error) {
	if i.state != AwaitingValidation {
		return Bill{}, fmt.Errorf("cannot validate while %s: %w", i.state, ErrInvalidInput)
	}
	bill, err := i.trip.composeDraft(i.draft)
	if err != nil {
		return Bill{}, i.reject(err)
	}
	i.bill = bill
	i.state = AwaitingConfirmation
	return bill, nil
}

// Commit appends the confirmed bill to the trip.
func (i *Intake) Commit() (Bill, error) {
	if i.state != AwaitingConfirmation {
		return Bill{}, fmt.Errorf("cannot commit while %s: %w", i.state, ErrInvalidInput)
	}
	i.trip.AddBill(i.bill)
	i.state = Committed
	return i.bill, nil
}

// Cancel declines the candidate at confirmation time.
func (i *Intake) Cancel() {
	if i.state == AwaitingConfirmation {
		i.state = Cancelled
	}
}
