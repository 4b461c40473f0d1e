// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when the color is not a #RRGGBB hex value.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidCategoryKind is returned when the kind is neither EXPENSE nor INCOME.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrCategoryInUse is returned when deleting a category that is still referenced.
	ErrCategoryInUse = errors.New("category is used by transactions, budgets or recurring rules")

	// ErrDefaultCategoryReadOnly is returned when renaming, editing or deleting a seeded category.
	ErrDefaultCategoryReadOnly = errors.New("default categories cannot be changed")

	// ErrMissingCategoryName is returned when the name is empty.
	ErrMissingCategoryName = errors.New("category name is required")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidColorFormat    CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidCategoryKind   CategoryErrorCode = "CAT-010007"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"

	// State errors (02XXXX)
	ErrCodeCategoryInUse           CategoryErrorCode = "CAT-020001"
	ErrCodeDefaultCategoryReadOnly CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
