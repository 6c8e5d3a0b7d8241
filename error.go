package cvbot

import (
	"errors"
	"fmt"
)

// Application error codes. These map 1:1 to the error taxonomy the
// system exposes: configuration problems are fatal at construction,
// date and validation errors fail the offending record loudly, and
// provider errors propagate per-query to the caller.
const (
	ECONFIG     = "config"      // missing/empty anchor set or corpus
	EDATEFORMAT = "date_format" // unparseable date string
	EINTERNAL   = "internal"    // unexpected internal failure
	EINVALID    = "invalid"     // malformed record or argument
	ENOTFOUND   = "not_found"   // entity does not exist
	EPROVIDER   = "provider"    // embedding/LLM backend failure
)

// Error represents an application error. Application errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cvbot error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
