package error

import "errors"

// Case domain errors.
var (
	// ErrCaseNotFound is returned when a case is not found in the system.
	ErrCaseNotFound = errors.New("case not found")

	// ErrCaseTitleRequired is returned when a case is created without a title.
	ErrCaseTitleRequired = errors.New("case title is required")

	// ErrInvalidCaseStatus is returned when the case status is not Open, Closed or Pending.
	ErrInvalidCaseStatus = errors.New("invalid case status")

	// ErrCaseClientNotFound is returned when the referenced client does not exist.
	ErrCaseClientNotFound = errors.New("client not found for case")
)

// CaseErrorCode defines error codes for case errors.
// Format: CSE-XXYYYY where XX is category and YYYY is specific error.
type CaseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCaseNotFound       CaseErrorCode = "CSE-010001"
	ErrCodeCaseTitleRequired  CaseErrorCode = "CSE-010002"
	ErrCodeInvalidCaseStatus  CaseErrorCode = "CSE-010003"
	ErrCodeCaseClientNotFound CaseErrorCode = "CSE-010004"
)

// CaseError represents a case error with code and message.
type CaseError struct {
	Code    CaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CaseError) Unwrap() error {
	return e.Err
}

// NewCaseError creates a new CaseError with the given code and message.
func NewCaseError(code CaseErrorCode, message string, err error) *CaseError {
	return &CaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
