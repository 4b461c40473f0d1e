// Package goal contains saving goal use cases.
package goal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxGoalTitleLength is the maximum allowed length for goal titles.
const MaxGoalTitleLength = 100

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"title is required",
			domainerror.ErrMissingGoalTitle,
		)
	}
	if utf8.RuneCountInString(title) > MaxGoalTitleLength {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeGoalTitleTooLong,
			fmt.Sprintf("title must not exceed %d characters", MaxGoalTitleLength),
			domainerror.ErrGoalTitleTooLong,
		)
	}
	return title, nil
}

func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}

func validateColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalColor,
			"color must be a valid hex color (e.g., #3b82f6)",
			domainerror.ErrInvalidGoalColor,
		)
	}
	return nil
}

func validateMovement(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidGoalAmount,
		)
	}
	return nil
}

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
