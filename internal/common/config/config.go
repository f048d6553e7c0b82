package config

import (
	"time"

	proberrors "braindump-probe/internal/common/errors"
)

// Config is the main probe configuration struct.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Probe   ProbeConfig   `mapstructure:"probe"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServiceConfig points the probe at the brain-dump service under test.
type ServiceConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// GetTimeout returns the configured request timeout as a duration.
func (s ServiceConfig) GetTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Millisecond
}

// ProbeConfig holds the test subject identifier and the sample inputs each
// check submits.
type ProbeConfig struct {
	UserID                  string `mapstructure:"user_id"`
	NoteText                string `mapstructure:"note_text"`
	ReminderTextWithTime    string `mapstructure:"reminder_text_with_time"`
	ReminderTextWithoutTime string `mapstructure:"reminder_text_without_time"`
	CheckHealth             bool   `mapstructure:"check_health"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate rejects configuration the probe cannot run with.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return proberrors.NewConfigInvalidError("service.base_url is required")
	}
	if c.Probe.UserID == "" {
		return proberrors.NewConfigInvalidError("probe.user_id is required")
	}
	if c.Service.Timeout <= 0 {
		return proberrors.NewConfigInvalidError("service.timeout must be positive")
	}
	return nil
}
