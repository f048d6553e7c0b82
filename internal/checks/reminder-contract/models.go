package remindercontract

import "braindump-probe/internal/common/validation"

// ScenarioOutput is the outcome of one reminder submission.
type ScenarioOutput struct {
	Scenario string
	Input    string

	Intent           string
	Status           string
	ReminderTitle    string
	ReminderTime     string
	ReminderDate     string
	ClarificationFor string

	Mismatch bool
	Hint     string

	Result *validation.Result
}

// Output collects both reminder scenarios. Clarification runs first,
// Scheduled second; a fatal failure in the first leaves the second nil.
type Output struct {
	Clarification *ScenarioOutput
	Scheduled     *ScenarioOutput
}
