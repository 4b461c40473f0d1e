// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Recurring bill domain errors.
var (
	// ErrRecurringRuleNotFound is returned when a rule does not exist or is not owned by the caller.
	ErrRecurringRuleNotFound = errors.New("recurring rule not found")

	// ErrRecurringInstanceNotFound is returned when an instance does not exist or its rule is not owned by the caller.
	ErrRecurringInstanceNotFound = errors.New("recurring bill not found")

	// ErrInvalidDayOfMonth is returned when the due day is outside 1..31.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrInvalidRuleAmount is returned when the rule amount is zero or negative.
	ErrInvalidRuleAmount = errors.New("amount must be greater than zero")

	// ErrMissingRuleName is returned when the rule name is empty.
	ErrMissingRuleName = errors.New("name is required")

	// ErrRuleNameTooLong is returned when the rule name exceeds the maximum length.
	ErrRuleNameTooLong = errors.New("name too long")

	// ErrRuleCategoryNotFound is returned when the rule references an unknown category.
	ErrRuleCategoryNotFound = errors.New("category not found")

	// ErrInvalidPaymentAmount is returned when a payment is zero or negative.
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

	// ErrInstanceSkipped is returned when paying an instance that was skipped.
	ErrInstanceSkipped = errors.New("skipped bills cannot be paid")
)

// RecurringErrorCode defines error codes for recurring bill errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDayOfMonth    RecurringErrorCode = "REC-010001"
	ErrCodeInvalidRuleAmount    RecurringErrorCode = "REC-010002"
	ErrCodeMissingRuleFields    RecurringErrorCode = "REC-010003"
	ErrCodeRuleNameTooLong      RecurringErrorCode = "REC-010004"
	ErrCodeRuleCategoryNotFound RecurringErrorCode = "REC-010005"
	ErrCodeInvalidPayment       RecurringErrorCode = "REC-010006"

	// Lookup errors (02XXXX)
	ErrCodeRecurringRuleNotFound     RecurringErrorCode = "REC-020001"
	ErrCodeRecurringInstanceNotFound RecurringErrorCode = "REC-020002"

	// State errors (03XXXX)
	ErrCodeInstanceSkipped RecurringErrorCode = "REC-030001"
)

// RecurringError represents a recurring bill error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
