package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateRuleInput represents a partial rule update. Nil fields are unchanged.
// Existing instances keep the amount they were generated with.
type UpdateRuleInput struct {
	UserID        uuid.UUID
	RuleID        uuid.UUID
	Name          *string
	Amount        *decimal.Decimal
	DayOfMonth    *int
	CategoryID    *uuid.UUID
	ClearCategory bool
	Active        *bool
}

// UpdateRuleUseCase handles recurring rule updates.
type UpdateRuleUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpdateRuleUseCase creates a new UpdateRuleUseCase instance.
func NewUpdateRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the rule update.
func (uc *UpdateRuleUseCase) Execute(ctx context.Context, input UpdateRuleInput) (*RuleOutput, error) {
	rule, err := uc.ruleRepo.FindByID(ctx, input.RuleID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return nil, ruleNotFound()
		}
		return nil, fmt.Errorf("failed to find recurring rule: %w", err)
	}

	if input.Name != nil {
		name, err := validateRuleName(*input.Name)
		if err != nil {
			return nil, err
		}
		rule.Name = name
	}

	if input.Amount != nil {
		amount := input.Amount.Round(2)
		if err := validateRuleAmount(amount); err != nil {
			return nil, err
		}
		rule.Amount = amount
	}

	if input.DayOfMonth != nil {
		if err := validateDayOfMonth(*input.DayOfMonth); err != nil {
			return nil, err
		}
		rule.DayOfMonth = *input.DayOfMonth
	}

	switch {
	case input.ClearCategory:
		rule.CategoryID = nil
	case input.CategoryID != nil:
		rule.CategoryID = input.CategoryID
	}

	if input.Active != nil {
		rule.Active = *input.Active
	}

	category, err := loadCategory(ctx, uc.categoryRepo, rule.CategoryID)
	if err != nil {
		return nil, err
	}

	rule.UpdatedAt = uc.clock.Now()
	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to update recurring rule: %w", err)
	}

	return &RuleOutput{Rule: rule, Category: category}, nil
}
