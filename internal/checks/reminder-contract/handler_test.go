package remindercontract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braindump-probe/internal/braindump"
	proberrors "braindump-probe/internal/common/errors"
	"braindump-probe/internal/common/logger"
)

const (
	textWithTime    = "Remind me to call the dentist tomorrow at 14:30"
	textWithoutTime = "Remind me to call the dentist"
)

func newTestHandler(t *testing.T, serverURL string) *Handler {
	t.Helper()
	return NewHandler(&Config{
		BaseURL:         serverURL,
		UserID:          "probe_user",
		TextWithTime:    textWithTime,
		TextWithoutTime: textWithoutTime,
		Timeout:         5 * time.Second,
	}, logger.NewTestLogger(t))
}

// reminderServer answers /brain-dump per submitted text, mimicking the
// classifier's two branches.
func reminderServer(t *testing.T, responses map[string]map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brain-dump", r.URL.Path)
		var req braindump.DumpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		body, ok := responses[req.Text]
		require.True(t, ok, "unexpected input %q", req.Text)
		json.NewEncoder(w).Encode(body)
	}))
}

func clarificationResponse() map[string]interface{} {
	return map[string]interface{}{
		"status":            "NEEDS_CLARIFICATION",
		"intent":            "reminder",
		"message":           "When should I remind you?",
		"reminder_title":    "call the dentist",
		"clarification_for": "time",
	}
}

func scheduledResponse() map[string]interface{} {
	return map[string]interface{}{
		"status":         "SUCCESS",
		"intent":         "reminder",
		"message":        "Reminder set for tomorrow at 14:30",
		"reminder_title": "call the dentist",
		"reminder_time":  "14:30",
		"reminder_date":  "2026-08-26",
	}
}

func TestExecute_BothScenariosSatisfied(t *testing.T) {
	server := reminderServer(t, map[string]map[string]interface{}{
		textWithoutTime: clarificationResponse(),
		textWithTime:    scheduledResponse(),
	})
	defer server.Close()

	out, err := newTestHandler(t, server.URL).Execute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, out.Clarification)
	assert.True(t, out.Clarification.Result.Valid())
	assert.Equal(t, braindump.StatusNeedsClarification, out.Clarification.Status)
	assert.Equal(t, "time", out.Clarification.ClarificationFor)

	require.NotNil(t, out.Scheduled)
	assert.True(t, out.Scheduled.Result.Valid())
	assert.Equal(t, "14:30", out.Scheduled.ReminderTime)
	assert.Equal(t, "2026-08-26", out.Scheduled.ReminderDate)
}

func TestExecute_OutOfRangeTimePassesLexically(t *testing.T) {
	scheduled := scheduledResponse()
	scheduled["reminder_time"] = "25:99" // shape-valid, range is the server's job
	server := reminderServer(t, map[string]map[string]interface{}{
		textWithoutTime: clarificationResponse(),
		textWithTime:    scheduled,
	})
	defer server.Close()

	_, err := newTestHandler(t, server.URL).Execute(context.Background())
	require.NoError(t, err)
}

func TestExecute_ScheduledViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{
			name:   "malformed reminder_time",
			mutate: func(m map[string]interface{}) { m["reminder_time"] = "2:30 pm" },
		},
		{
			name:   "malformed reminder_date",
			mutate: func(m map[string]interface{}) { m["reminder_date"] = "26/08/2026" },
		},
		{
			name:   "missing reminder_time",
			mutate: func(m map[string]interface{}) { delete(m, "reminder_time") },
		},
		{
			name:   "missing reminder_title",
			mutate: func(m map[string]interface{}) { delete(m, "reminder_title") },
		},
		{
			name:   "clarification expected but success shape missing entirely",
			mutate: func(m map[string]interface{}) { delete(m, "reminder_time"); delete(m, "reminder_date") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduled := scheduledResponse()
			tt.mutate(scheduled)
			server := reminderServer(t, map[string]map[string]interface{}{
				textWithoutTime: clarificationResponse(),
				textWithTime:    scheduled,
			})
			defer server.Close()

			out, err := newTestHandler(t, server.URL).Execute(context.Background())
			require.Error(t, err)
			assert.Equal(t, proberrors.ErrCodeContractViolation, proberrors.CodeOf(err))
			require.NotNil(t, out.Scheduled)
			assert.False(t, out.Scheduled.Result.Valid())
		})
	}
}

func TestExecute_ClarificationViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{
			name:   "missing clarification_for",
			mutate: func(m map[string]interface{}) { delete(m, "clarification_for") },
		},
		{
			name:   "empty clarification_for",
			mutate: func(m map[string]interface{}) { m["clarification_for"] = "" },
		},
		{
			name:   "clarification names the wrong field",
			mutate: func(m map[string]interface{}) { m["clarification_for"] = "date" },
		},
		{
			name:   "unexpected SUCCESS for missing-time input",
			mutate: func(m map[string]interface{}) { m["status"] = "SUCCESS" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clarification := clarificationResponse()
			tt.mutate(clarification)
			server := reminderServer(t, map[string]map[string]interface{}{
				textWithoutTime: clarification,
				textWithTime:    scheduledResponse(),
			})
			defer server.Close()

			out, err := newTestHandler(t, server.URL).Execute(context.Background())
			require.Error(t, err)
			assert.Equal(t, proberrors.ErrCodeContractViolation, proberrors.CodeOf(err))
			require.NotNil(t, out.Clarification)
			assert.False(t, out.Clarification.Result.Valid())
			assert.Nil(t, out.Scheduled, "first scenario failing must stop the second")
		})
	}
}

func TestExecute_IntentMismatchIsInformational(t *testing.T) {
	other := map[string]interface{}{
		"status":  "SUCCESS",
		"intent":  "other",
		"message": "Noted, but I could not tell what this is",
	}
	server := reminderServer(t, map[string]map[string]interface{}{
		textWithoutTime: other,
		textWithTime:    other,
	})
	defer server.Close()

	out, err := newTestHandler(t, server.URL).Execute(context.Background())
	require.NoError(t, err, "feature may still be rolling out; mismatch is a hint")
	assert.True(t, out.Clarification.Mismatch)
	assert.True(t, out.Scheduled.Mismatch)
	assert.NotEmpty(t, out.Clarification.Hint)
}

func TestValidateReminderContract_Idempotent(t *testing.T) {
	resp := &braindump.Response{
		Status: "SUCCESS",
		Intent: "reminder",
		Raw: map[string]interface{}{
			"status":        "SUCCESS",
			"intent":        "reminder",
			"message":       "set",
			"reminder_time": "bad",
		},
	}
	first := validateReminderContract(resp)
	second := validateReminderContract(resp)
	assert.Equal(t, first, second)
	assert.False(t, first.Valid())
}
