package tripsplit

import (
	"fmt"
	"sort"
	"strings"
)

// This file implements the split engine: pure, deterministic functions
// computing per-person owed amounts. Shares are rounded to two decimal
// places, half away from zero, so the sum of shares can deviate from the
// total by at most 0.01 per participant.

// EvenSplit divides total equally among all participants.
func EvenSplit(total Money, participants []string) (map[string]Money, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("even split: no participants: %w", ErrInvalidInput)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("even split: total %s must be positive: %w", total.Fixed2(), ErrInvalidInput)
	}
	share := total.DivInt(len(participants)).Round2()
	owed := make(map[string]Money, len(participants))
	for _, p := range participants {
		owed[p] = share
	}
	return owed, nil
}

// PercentageSplit computes each participant's share of total from a
// percentage map. The percentages must total exactly 100; an all-zero map is
// the caller's signal that no custom split was requested and must not reach
// the engine.
func PercentageSplit(total Money, percentages map[string]Percent) (map[string]Money, error) {
	if len(percentages) == 0 {
		return nil, fmt.Errorf("percentage split: no percentages: %w", ErrInvalidInput)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("percentage split: total %s must be positive: %w", total.Fixed2(), ErrInvalidInput)
	}

	var sum Percent
	for name, p := range percentages {
		if p.IsNegative() {
			return nil, fmt.Errorf("percentage split: %s has negative share %s: %w", name, p, ErrInvalidInput)
		}
		sum = sum.Add(p)
	}
	if !sum.IsHundred() {
		return nil, fmt.Errorf("percentages total %s: %w", sum, ErrSplitMismatch)
	}

	owed := make(map[string]Money, len(percentages))
	for name, p := range percentages {
		owed[name] = p.Of(total)
	}
	return owed, nil
}

// owedNames returns the owed map keys in a stable order: trip participant
// order first, then any remaining names alphabetically.
func owedNames(owed map[string]Money, participants []string) []string {
	names := make([]string, 0, len(owed))
	seen := make(map[string]bool, len(owed))
	for _, p := range participants {
		if _, ok := owed[p]; ok {
			names = append(names, p)
			seen[p] = true
		}
	}
	var rest []string
	for name := range owed {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// formatOwed renders an owed map as "name: amount INR; name: amount INR",
// the form used in the CSV export.
func formatOwed(owed map[string]Money, participants []string) string {
	parts := make([]string, 0, len(owed))
	for _, name := range owedNames(owed, participants) {
		parts = append(parts, fmt.Sprintf("%s: %s %s", name, owed[name].Fixed2(), SettlementCurrency))
	}
	return strings.Join(parts, "; ")
}
