package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proberrors "braindump-probe/internal/common/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Service.BaseURL)
	assert.Positive(t, cfg.Service.Timeout)
	assert.NotEmpty(t, cfg.Probe.UserID)
	assert.NotEmpty(t, cfg.Probe.NoteText)
	assert.NotEmpty(t, cfg.Probe.ReminderTextWithTime)
	assert.NotEmpty(t, cfg.Probe.ReminderTextWithoutTime)
	assert.NotEmpty(t, cfg.Logging.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PROBE_SERVICE_BASE_URL", "http://example.test:9000")
	t.Setenv("PROBE_PROBE_USER_ID", "env_user")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://example.test:9000", cfg.Service.BaseURL)
	assert.Equal(t, "env_user", cfg.Probe.UserID)
}

func TestGetTimeout(t *testing.T) {
	s := ServiceConfig{Timeout: 1500}
	assert.Equal(t, "1.5s", s.GetTimeout().String())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Service: ServiceConfig{BaseURL: "http://localhost:8000", Timeout: 30000},
			Probe:   ProbeConfig{UserID: "probe_user"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"complete config", func(c *Config) {}, true},
		{"missing base url", func(c *Config) { c.Service.BaseURL = "" }, false},
		{"missing user id", func(c *Config) { c.Probe.UserID = "" }, false},
		{"non-positive timeout", func(c *Config) { c.Service.Timeout = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, proberrors.ErrCodeConfigInvalid, proberrors.CodeOf(err))
			}
		})
	}
}
