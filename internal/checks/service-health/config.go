package servicehealth

import "time"

type Config struct {
	BaseURL string
	Timeout time.Duration
}
