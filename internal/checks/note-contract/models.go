package notecontract

import "braindump-probe/internal/common/validation"

type Output struct {
	Intent  string
	Status  string
	Message string

	// Mismatch means the classifier picked a different intent for the note
	// input. Informational, not a failure.
	Mismatch bool
	Hint     string

	Result *validation.Result
}
