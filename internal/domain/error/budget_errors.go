// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist or is not owned by the caller.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("limit must be greater than zero")

	// ErrBudgetCategoryNotFound is returned when the budget references an unknown category.
	ErrBudgetCategoryNotFound = errors.New("category not found")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetLimit     BudgetErrorCode = "BUD-010001"
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BUD-010002"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetMonth     BudgetErrorCode = "BUD-010004"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
