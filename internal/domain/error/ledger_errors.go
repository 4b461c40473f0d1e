// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Month ledger domain errors.
var (
	// ErrInvalidMonth is returned when a month key is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("month must have the format YYYY-MM")

	// ErrInvalidIncome is returned when a target income is negative.
	ErrInvalidIncome = errors.New("income must not be negative")

	// ErrLedgerNotFound is returned by persistence when no ledger row exists.
	ErrLedgerNotFound = errors.New("month ledger not found")
)

// LedgerErrorCode defines error codes for month ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth  LedgerErrorCode = "LED-010001"
	ErrCodeInvalidIncome LedgerErrorCode = "LED-010002"
)

// LedgerError represents a month ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
