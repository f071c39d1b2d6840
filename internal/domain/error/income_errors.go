package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrIncomeDescriptionRequired is returned when an income has no description.
	ErrIncomeDescriptionRequired = errors.New("income description is required")

	// ErrIncomeSourceRequired is returned when an income has no source.
	ErrIncomeSourceRequired = errors.New("income source is required")

	// ErrIncomeCaseNotFound is returned when the referenced case does not exist.
	ErrIncomeCaseNotFound = errors.New("case not found for income")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeNotFound            IncomeErrorCode = "INC-010001"
	ErrCodeIncomeDescriptionRequired IncomeErrorCode = "INC-010002"
	ErrCodeIncomeSourceRequired      IncomeErrorCode = "INC-010003"
	ErrCodeIncomeCaseNotFound        IncomeErrorCode = "INC-010004"
	ErrCodeInvalidIncomeAmount       IncomeErrorCode = "INC-010005"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
