package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateRuleInput represents the input for rule creation.
type CreateRuleInput struct {
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal
	DayOfMonth int
	CategoryID *uuid.UUID
	Active     *bool // Optional, defaults to true
}

// CreateRuleUseCase handles recurring rule creation.
type CreateRuleUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateRuleUseCase creates a new CreateRuleUseCase instance.
func NewCreateRuleUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the rule creation. Instances for the new rule appear the
// next time a current or future month is viewed.
func (uc *CreateRuleUseCase) Execute(ctx context.Context, input CreateRuleInput) (*RuleOutput, error) {
	name, err := validateRuleName(input.Name)
	if err != nil {
		return nil, err
	}
	input.Amount = input.Amount.Round(2)
	if err := validateRuleAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDayOfMonth(input.DayOfMonth); err != nil {
		return nil, err
	}

	category, err := loadCategory(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, err
	}

	rule := entity.NewRecurringRule(input.UserID, name, input.Amount, input.DayOfMonth, input.CategoryID, uc.clock.Now())
	if input.Active != nil {
		rule.Active = *input.Active
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create recurring rule: %w", err)
	}

	return &RuleOutput{Rule: rule, Category: category}, nil
}
