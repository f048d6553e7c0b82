package braindump

// Status values the service reports for a processed dump.
const (
	StatusSuccess            = "SUCCESS"
	StatusNeedsClarification = "NEEDS_CLARIFICATION"
)

// Intents the classifier assigns to free-text input.
const (
	IntentNote     = "note"
	IntentReminder = "reminder"
)

// DumpRequest is the body of POST /brain-dump. Constructed fresh per call.
type DumpRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// Response is the decoded classification result. Raw keeps the undecoded
// key set so validators can tell a missing field from an empty one.
type Response struct {
	Status           string `json:"status"`
	Intent           string `json:"intent"`
	Message          string `json:"message"`
	ReminderTitle    string `json:"reminder_title,omitempty"`
	ReminderTime     string `json:"reminder_time,omitempty"`
	ReminderDate     string `json:"reminder_date,omitempty"`
	ClarificationFor string `json:"clarification_for,omitempty"`

	Raw map[string]interface{} `json:"-"`
}

// Has reports whether the wire response carried the given key at all.
func (r *Response) Has(key string) bool {
	_, ok := r.Raw[key]
	return ok
}

// VerifyUserResult is the decoded body of GET /verify-user.
type VerifyUserResult struct {
	Registered      bool   `json:"registered"`
	RegistrationURL string `json:"registration_url,omitempty"`

	Raw map[string]interface{} `json:"-"`
}

// HealthResult is the decoded body of GET /health.
type HealthResult struct {
	Status string `json:"status"`

	Raw map[string]interface{} `json:"-"`
}
