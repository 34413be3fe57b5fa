// Package tripsplit provides the core logic for a local-first, single-user
// trip expense splitter. It is designed to keep the full trip state in a
// small local document so the user has complete control and transparency
// over the ledger.
//
// The core functionalities include:
//   - Split Engine: pure functions turning a bill total and a split
//     specification (even or percentage) into exact per-person owed amounts.
//   - Bill Ledger: an ordered list of bills paid by one participant on
//     behalf of the group, with whole-record deletion only.
//   - Settlement: a derived per-participant net balance, recomputed from the
//     full bill history at full precision and rounded only for display.
//   - Bill Intake: validation and normalization of bills entered explicitly
//     or pre-filled from a transcribed, model-extracted free-text draft.
//   - Data Persistence: the trip document is read and written as a whole
//     through an injected key-value store, enabling in-memory testing.
//
// This package serves as the foundational logic for the `tsp` command-line
// tool; all amounts settle in a single settlement currency (INR).
package tripsplit
