package notecontract

import "time"

type Config struct {
	BaseURL string
	UserID  string
	Text    string
	Timeout time.Duration
}
