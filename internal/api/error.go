package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a classified API failure: the backend answered with a non-2xx
// status and a decodable error envelope.
type Error struct {
	// Status is the HTTP status code.
	Status int

	// Code is the backend's machine code, stringified (the envelope allows
	// both numeric and string codes).
	Code string

	// Message is the human-readable message from the envelope.
	Message string

	// Errors maps field names to validation messages, when present.
	Errors map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// FieldError returns the field-level message for name, or "" when absent.
// Field-level messages take precedence over the generic message when shown
// next to the offending input.
func (e *Error) FieldError(name string) string {
	if e == nil {
		return ""
	}
	return e.Errors[name]
}

// errorEnvelope mirrors the failure envelope on the wire.
type errorEnvelope struct {
	Code    json.RawMessage   `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// codeString normalizes the envelope code, which may arrive as a JSON number
// or string.
func (env *errorEnvelope) codeString() string {
	return strings.Trim(string(env.Code), `"`)
}
