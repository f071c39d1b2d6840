// Package error defines domain-specific errors for the Law Firm Ledger application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientNameRequired is returned when a client is created without a name.
	ErrClientNameRequired = errors.New("client name is required")

	// ErrInvalidClientEmail is returned when the client email is malformed.
	ErrInvalidClientEmail = errors.New("invalid client email")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLT-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeClientNotFound     ClientErrorCode = "CLT-010001"
	ErrCodeClientNameRequired ClientErrorCode = "CLT-010002"
	ErrCodeInvalidClientEmail ClientErrorCode = "CLT-010003"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
