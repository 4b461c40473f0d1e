// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the type is neither EXPENSE nor INCOME.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionDate is returned when the date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrTransactionCategoryNotFound is returned when the referenced category does not exist.
	ErrTransactionCategoryNotFound = errors.New("category not found")

	// ErrNoteTooLong is returned when the note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrInvalidTransactionFilter is returned for malformed listing parameters.
	ErrInvalidTransactionFilter = errors.New("invalid transaction filter")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010009"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010010"
	ErrCodeInvalidTransactionFilter TransactionErrorCode = "TXN-010013"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
