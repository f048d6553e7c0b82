package remindercontract

import "time"

type Config struct {
	BaseURL string
	UserID  string
	// TextWithTime should classify as a reminder with an explicit time.
	TextWithTime string
	// TextWithoutTime should trigger a clarification request for "time".
	TextWithoutTime string
	Timeout         time.Duration
}
