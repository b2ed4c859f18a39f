package errors

import (
	"errors"
	"fmt"
)

// Common error types for better error handling
var (
	// Input errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmptyPayload      = errors.New("payload is empty")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrUnsupportedFormat = errors.New("unsupported payload format")

	// Identifier errors
	ErrInvalidURL = errors.New("invalid URL")
	ErrInvalidURI = errors.New("invalid URI")

	// Value errors
	ErrInvalidDuration  = errors.New("duration must not be negative")
	ErrInvalidImageSize = errors.New("image size must be positive")
	ErrInvalidPage      = errors.New("page out of range")
)

// Is reports whether any error in err's tree matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// UserError wraps an error with a user-friendly message
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func (e *UserError) UserMessage() string {
	return e.Message
}

// NewUserError creates a new user error
func NewUserError(err error, message string) *UserError {
	return &UserError{
		Err:     err,
		Message: message,
	}
}

// WrapUserError wraps an error with a user-friendly message
func WrapUserError(err error, format string, args ...interface{}) *UserError {
	return &UserError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetUserMessage extracts user-friendly message from error
func GetUserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}

	// Map common errors to user-friendly messages
	switch {
	case errors.Is(err, ErrEmptyPayload):
		return "Nothing to format: the input is empty"
	case errors.Is(err, ErrInvalidPayload):
		return "Could not read the input. Check that it is valid JSON or YAML"
	case errors.Is(err, ErrUnsupportedFormat):
		return "Unsupported input format. Use json or yaml"
	case errors.Is(err, ErrInvalidURL):
		return "Invalid URL. Please provide an open.spotify.com link"
	case errors.Is(err, ErrInvalidURI):
		return "Invalid URI. Expected spotify:<type>:<id>"
	case errors.Is(err, ErrInvalidDuration):
		return "Duration must be zero or more milliseconds"
	case errors.Is(err, ErrInvalidImageSize):
		return "Image size must be a positive number of pixels"
	case errors.Is(err, ErrInvalidPage):
		return "That page does not exist"
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input"
	default:
		return "An error occurred. Please try again"
	}
}
