// Package recurring contains recurring bill use cases: rule management,
// monthly instance generation and bill payment.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxRuleNameLength is the maximum allowed length for rule names.
const MaxRuleNameLength = 100

// RuleOutput is a rule with its category, when it has one.
type RuleOutput struct {
	Rule     *entity.RecurringRule
	Category *entity.Category
}

func validateRuleName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			"name is required",
			domainerror.ErrMissingRuleName,
		)
	}
	if utf8.RuneCountInString(name) > MaxRuleNameLength {
		return "", domainerror.NewRecurringError(
			domainerror.ErrCodeRuleNameTooLong,
			fmt.Sprintf("name must not exceed %d characters", MaxRuleNameLength),
			domainerror.ErrRuleNameTooLong,
		)
	}
	return name, nil
}

func validateRuleAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRuleAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidRuleAmount,
		)
	}
	return nil
}

func validateDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"day of month must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	return nil
}

// loadCategory resolves an optional category reference.
func loadCategory(ctx context.Context, repo adapter.CategoryRepository, id *uuid.UUID) (*entity.Category, error) {
	if id == nil {
		return nil, nil
	}
	category, err := repo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRuleCategoryNotFound,
				"category not found",
				domainerror.ErrRuleCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

func ruleNotFound() error {
	return domainerror.NewRecurringError(
		domainerror.ErrCodeRecurringRuleNotFound,
		"recurring rule not found",
		domainerror.ErrRecurringRuleNotFound,
	)
}

func instanceNotFound() error {
	return domainerror.NewRecurringError(
		domainerror.ErrCodeRecurringInstanceNotFound,
		"recurring bill not found",
		domainerror.ErrRecurringInstanceNotFound,
	)
}
