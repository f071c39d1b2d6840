package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseDescriptionRequired is returned when an expense has no description.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")

	// ErrExpenseCategoryRequired is returned when an expense has no category.
	ErrExpenseCategoryRequired = errors.New("expense category is required")

	// ErrInvalidExpenseStatus is returned when the status is not Pending, Approved or Paid.
	ErrInvalidExpenseStatus = errors.New("invalid expense status")

	// ErrExpenseCaseNotFound is returned when the referenced case does not exist.
	ErrExpenseCaseNotFound = errors.New("case not found for expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound            ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseCategoryRequired    ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseStatus       ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseCaseNotFound        ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseAmount       ExpenseErrorCode = "EXP-010006"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
