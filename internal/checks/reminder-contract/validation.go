package remindercontract

import (
	"fmt"

	"braindump-probe/internal/braindump"
	"braindump-probe/internal/common/validation"
)

const envelopeSchema = `{
	"type": "object",
	"properties": {
		"status": {"type": "string", "enum": ["SUCCESS", "NEEDS_CLARIFICATION"]},
		"intent": {"type": "string"},
		"message": {"type": "string"}
	},
	"required": ["status", "intent", "message"]
}`

// validateReminderContract checks the envelope plus the reminder addendum.
// The status decides the branch: SUCCESS needs a title and lexically
// well-formed time and date, NEEDS_CLARIFICATION needs the name of the
// missing field. Shapes only — "25:99" is the server's problem.
func validateReminderContract(resp *braindump.Response) *validation.Result {
	r := validation.AgainstSchema("reminder envelope", resp.Raw, envelopeSchema)

	if resp.Intent != braindump.IntentReminder {
		return r
	}

	switch resp.Status {
	case braindump.StatusSuccess:
		validation.RequireNonEmptyString(r, resp.Raw, "reminder_title")
		validation.RequireShape(r, resp.Raw, "reminder_time", validation.TimeShape, "HH:MM")
		validation.RequireShape(r, resp.Raw, "reminder_date", validation.DateShape, "YYYY-MM-DD")
	case braindump.StatusNeedsClarification:
		validation.RequireNonEmptyString(r, resp.Raw, "clarification_for")
	}

	return r
}

// validateExpectedStatus asserts the scenario-specific expectations: the
// missing-time input must ask for clarification on "time", the explicit-time
// input must succeed outright.
func validateExpectedStatus(r *validation.Result, resp *braindump.Response, scenario, wantStatus string) {
	r.Check(resp.Status == wantStatus,
		fmt.Sprintf("status is %q for %s", wantStatus, scenario),
		"got "+resp.Status)

	if wantStatus == braindump.StatusNeedsClarification && resp.Status == wantStatus {
		r.Check(resp.ClarificationFor == "time",
			`clarification_for names the missing "time" field`,
			fmt.Sprintf("got %q", resp.ClarificationFor))
	}
}
