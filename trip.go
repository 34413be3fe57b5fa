package tripsplit

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trip holds the complete state of one trip: its name, the ordered list of
// friends sharing expenses, and the bill ledger. It is read and written as a
// whole document through a Store.
type Trip struct {
	Name    string   `json:"tripName"`
	Friends []string `json:"friends"`
	Bills   []Bill   `json:"bills"`
}

// NewTrip creates an empty trip. The name must be non-empty.
func NewTrip(name string) (*Trip, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("trip name is empty: %w", ErrInvalidInput)
	}
	return &Trip{Name: name, Bills: []Bill{}}, nil
}

// AddFriend appends a friend to the trip. Names are kept as entered
// (case-sensitive) and must be unique.
func (t *Trip) AddFriend(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("friend name is empty: %w", ErrInvalidInput)
	}
	for _, f := range t.Friends {
		if f == name {
			return fmt.Errorf("friend %q already added: %w", name, ErrInvalidInput)
		}
	}
	t.Friends = append(t.Friends, name)
	return nil
}

// HasFriend reports whether name is a trip participant, matched exactly as
// entered.
func (t *Trip) HasFriend(name string) bool {
	for _, f := range t.Friends {
		if f == name {
			return true
		}
	}
	return false
}

// Participant resolves a possibly sloppily spelled name to the participant
// name as entered in the trip. Matching normalizes both sides; this is the
// sole identity rule, there is no fuzzy matching.
func (t *Trip) Participant(name string) (string, bool) {
	want := NormalizeName(name)
	for _, f := range t.Friends {
		if NormalizeName(f) == want {
			return f, true
		}
	}
	return "", false
}

// NormalizeName trims surrounding whitespace, upper-cases the first
// character and lower-cases the rest. Normalization is idempotent.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}
