package tripsplit

import "fmt"

// deletePhrase is the shared secret gating destructive operations. It is an
// abuse deterrent against accidental deletion, not an access control
// mechanism: the phrase is fixed and stored in the binary.
const deletePhrase = "iagreetodelete"

// Authorize checks the confirmation phrase entered for a destructive
// operation (deleting a bill, clearing the trip). A mismatch aborts the
// operation with no state change.
func Authorize(phrase string) error {
	if phrase != deletePhrase {
		return fmt.Errorf("wrong confirmation phrase: %w", ErrAuthorizationDenied)
	}
	return nil
}
