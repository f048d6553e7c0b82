package notecontract

import (
	"braindump-probe/internal/braindump"
	"braindump-probe/internal/common/validation"
)

// Common envelope every brain-dump response must carry.
const envelopeSchema = `{
	"type": "object",
	"properties": {
		"status": {"type": "string", "enum": ["SUCCESS", "NEEDS_CLARIFICATION"]},
		"intent": {"type": "string"},
		"message": {"type": "string"}
	},
	"required": ["status", "intent", "message"]
}`

// validateNoteContract checks the response envelope, and when the intent is
// "note", the note-specific invariant: SUCCESS status and a non-empty
// message. Structural looseness elsewhere is the server's business.
func validateNoteContract(resp *braindump.Response) *validation.Result {
	r := validation.AgainstSchema("note envelope", resp.Raw, envelopeSchema)

	if resp.Intent != braindump.IntentNote {
		return r
	}

	r.Check(resp.Status == braindump.StatusSuccess,
		`status is "SUCCESS" for note intent`,
		"got "+resp.Status)
	validation.RequireNonEmptyString(r, resp.Raw, "message")

	return r
}
