package userverification

import "time"

type Config struct {
	BaseURL string
	UserID  string
	Timeout time.Duration
}
