// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Saving goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or is not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidCurrentAmount is returned when the starting amount is negative.
	ErrInvalidCurrentAmount = errors.New("current amount must not be negative")

	// ErrInvalidGoalAmount is returned when an add or subtract amount is zero or negative.
	ErrInvalidGoalAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientGoalBalance is returned when subtracting more than the goal holds.
	ErrInsufficientGoalBalance = errors.New("insufficient funds in goal")

	// ErrMissingGoalTitle is returned when the title is empty.
	ErrMissingGoalTitle = errors.New("title is required")

	// ErrGoalTitleTooLong is returned when the title exceeds the maximum length.
	ErrGoalTitleTooLong = errors.New("title too long")

	// ErrInvalidGoalColor is returned when the color is not a hex color.
	ErrInvalidGoalColor = errors.New("invalid color format")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound         GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount  GoalErrorCode = "GOL-010003"
	ErrCodeInvalidCurrentAmount GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalAmount    GoalErrorCode = "GOL-010005"
	ErrCodeGoalTitleTooLong     GoalErrorCode = "GOL-010006"
	ErrCodeInvalidGoalColor     GoalErrorCode = "GOL-010007"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010008"
	ErrCodeInvalidGoalDeadline  GoalErrorCode = "GOL-010009"

	// Balance errors (02XXXX)
	ErrCodeInsufficientGoalBalance GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
