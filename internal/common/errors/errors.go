// Package errors provides the standardized error taxonomy for probe runs.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized probe error codes.
type ErrorCode string

const (
	// ErrCodeTransport covers network failures and non-2xx responses.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeFormat covers response bodies that are not valid JSON.
	ErrCodeFormat ErrorCode = "FORMAT_ERROR"
	// ErrCodeContractViolation covers missing or malformed contract fields.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeIntentMismatch is informational: the response is well-formed
	// but classified under a different intent than the one under test.
	ErrCodeIntentMismatch ErrorCode = "INTENT_MISMATCH"
	// ErrCodeConfigInvalid covers unusable probe configuration.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// ProbeError represents a structured probe error. Fatal errors abort the
// run; non-fatal ones are logged as hints and the run continues.
type ProbeError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Fatal     bool      `json:"fatal"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ProbeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ProbeError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("ProbeError[%s]: %s", e.Code, e.Message)
}

// NewTransportError creates a fatal transport-level error.
func NewTransportError(endpoint string, err error) *ProbeError {
	return &ProbeError{
		Code:      ErrCodeTransport,
		Message:   fmt.Sprintf("request to %s failed", endpoint),
		Details:   err.Error(),
		Fatal:     true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHTTPStatusError creates a fatal transport error for a non-2xx response.
// The raw body is carried in the details for diagnosis.
func NewHTTPStatusError(endpoint string, statusCode int, body string) *ProbeError {
	return &ProbeError{
		Code:      ErrCodeTransport,
		Message:   fmt.Sprintf("%s returned HTTP %d", endpoint, statusCode),
		Details:   fmt.Sprintf("body: %s", body),
		Fatal:     true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFormatError creates a fatal error for an unparseable response body.
func NewFormatError(endpoint string, statusCode int, body string) *ProbeError {
	return &ProbeError{
		Code:      ErrCodeFormat,
		Message:   fmt.Sprintf("%s returned a body that is not valid JSON", endpoint),
		Details:   fmt.Sprintf("httpStatus: %d, body: %s", statusCode, body),
		Fatal:     true,
		Timestamp: time.Now().UTC(),
	}
}

// NewContractViolation creates a fatal error naming the violated assertions.
func NewContractViolation(check string, details string) *ProbeError {
	return &ProbeError{
		Code:      ErrCodeContractViolation,
		Message:   fmt.Sprintf("contract violated in %s", check),
		Details:   details,
		Fatal:     true,
		Timestamp: time.Now().UTC(),
	}
}

// NewIntentMismatch creates a non-fatal hint that the service classified the
// input under a different intent than expected.
func NewIntentMismatch(want, got string) *ProbeError {
	return &ProbeError{
		Code:      ErrCodeIntentMismatch,
		Message:   fmt.Sprintf("expected intent %q, service classified as %q", want, got),
		Details:   "response is well-formed; retry with different input",
		Fatal:     false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError creates a fatal configuration error.
func NewConfigInvalidError(details string) *ProbeError {
	return &ProbeError{
		Code:      ErrCodeConfigInvalid,
		Message:   "probe configuration is invalid",
		Details:   details,
		Fatal:     true,
		Timestamp: time.Now().UTC(),
	}
}

// IsFatal reports whether err should abort the run. Errors outside the
// taxonomy are treated as fatal.
func IsFatal(err error) bool {
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Fatal
	}
	return err != nil
}

// CodeOf extracts the probe error code, or empty string for foreign errors.
func CodeOf(err error) ErrorCode {
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}
