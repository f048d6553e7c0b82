package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name  string
		err   *ProbeError
		code  ErrorCode
		fatal bool
	}{
		{"transport", NewTransportError("/brain-dump", stderrors.New("connection refused")), ErrCodeTransport, true},
		{"http status", NewHTTPStatusError("/brain-dump", 503, "unavailable"), ErrCodeTransport, true},
		{"format", NewFormatError("/brain-dump", 200, "<html>"), ErrCodeFormat, true},
		{"contract", NewContractViolation("note-contract", "message is empty"), ErrCodeContractViolation, true},
		{"intent mismatch", NewIntentMismatch("note", "other"), ErrCodeIntentMismatch, false},
		{"config", NewConfigInvalidError("base_url missing"), ErrCodeConfigInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.fatal, tt.err.Fatal)
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
			assert.Equal(t, tt.code, CodeOf(tt.err))
			assert.Contains(t, tt.err.Error(), string(tt.code))
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestFormatError_CarriesStatusAndBody(t *testing.T) {
	err := NewFormatError("/verify-user", 502, "Bad Gateway")
	assert.Contains(t, err.Details, "502")
	assert.Contains(t, err.Details, "Bad Gateway")
}

func TestIsFatal_ForeignError(t *testing.T) {
	assert.True(t, IsFatal(stderrors.New("something else")))
	assert.False(t, IsFatal(nil))
}

func TestIsFatal_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("check failed: %w", NewIntentMismatch("reminder", "note"))
	assert.False(t, IsFatal(wrapped))
	assert.Equal(t, ErrCodeIntentMismatch, CodeOf(wrapped))
}

func TestCodeOf_ForeignError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(stderrors.New("plain")))
}
