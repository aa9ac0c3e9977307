package scenario

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors raised by the scenario engine itself.
// Errors returned by step bodies are never wrapped in an Error.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a blank description or a missing
	// body, output or callback while assembling a scenario.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeInvalidState indicates a read of an invalid Ensure value.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"

	// ErrCodeKeyNotFound indicates a context lookup for an absent key.
	ErrCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"
)

// Error is the engine's error type.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Key is the context key for ErrCodeKeyNotFound.
	Key string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrStepAborted is reported to observers when a step body panics or stops
// its goroutine instead of returning. The panic itself keeps unwinding.
var ErrStepAborted = errors.New("step body did not return")

// IsInvalidArgument returns true if err is an ErrCodeInvalidArgument error.
func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsInvalidState returns true if err is an ErrCodeInvalidState error.
func IsInvalidState(err error) bool {
	return hasCode(err, ErrCodeInvalidState)
}

// IsKeyNotFound returns true if err is an ErrCodeKeyNotFound error.
func IsKeyNotFound(err error) bool {
	return hasCode(err, ErrCodeKeyNotFound)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

func newInvalidArgument(message string) *Error {
	return &Error{Code: ErrCodeInvalidArgument, Message: message}
}

func newInvalidState(message string) *Error {
	return &Error{Code: ErrCodeInvalidState, Message: message}
}

func newKeyNotFound(key string) *Error {
	return &Error{
		Code:    ErrCodeKeyNotFound,
		Message: fmt.Sprintf("the context data with key %q was not found", key),
		Key:     key,
	}
}
