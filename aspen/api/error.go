package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResponseError is the only failure type the SDK surfaces. Every path ends
// here: local validation, signing rejection, remote 4xx/5xx and transport
// errors alike.
type ResponseError struct {
	EventID    string
	StatusCode int
	Message    string
	Content    map[string]any
	Err        error
}

func (r *ResponseError) Error() string {
	return fmt.Sprintf("aspen: event %s status %d: %s", r.EventID, r.StatusCode, r.Message)
}

func (r *ResponseError) Unwrap() error {
	return r.Err
}

// ContentInt64 reads an integer value from Content regardless of how the
// decoder represented the number.
func (r *ResponseError) ContentInt64(key string) (int64, bool) {
	v, ok := r.Content[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// ContentString reads a string value from Content.
func (r *ResponseError) ContentString(key string) (string, bool) {
	v, ok := r.Content[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// NewValidationError aggregates one or more local field defects into a single
// error. Callers handling it see every simultaneous defect in the message.
func NewValidationError(messages ...string) *ResponseError {
	return &ResponseError{
		EventID:    EvtValidationFailed,
		StatusCode: 400,
		Message:    strings.Join(messages, "\n"),
	}
}

// NewPolicyError signals a pin policy violation detected before submission.
// The server enforces the same policies again.
func NewPolicyError(message string) *ResponseError {
	return &ResponseError{
		EventID:    EvtPinPolicyViolation,
		StatusCode: 406,
		Message:    message,
	}
}
