package tripsplit

import "errors"

// Sentinel errors for every failure the ledger and the intake flows can
// surface. Callers match with errors.Is; every one of them leaves the trip
// state unchanged.
var (
	// ErrInvalidInput reports a missing or out-of-range form field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSplitMismatch reports custom percentages that do not total 100.
	ErrSplitMismatch = errors.New("percentages must total 100")

	// ErrDraftIncomplete reports an extracted draft missing required fields.
	ErrDraftIncomplete = errors.New("incomplete bill draft")

	// ErrUnknownParticipant reports a name that is not part of the trip.
	ErrUnknownParticipant = errors.New("not part of the trip")

	// ErrIndexOutOfRange reports a delete target that does not exist.
	ErrIndexOutOfRange = errors.New("no such bill")

	// ErrAuthorizationDenied reports a wrong confirmation phrase on a
	// destructive operation.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// ErrExternalCall reports a transcription or extraction call failure.
	ErrExternalCall = errors.New("external call failed")
)
