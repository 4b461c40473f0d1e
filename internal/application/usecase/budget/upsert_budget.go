// Package budget contains budget use cases: per-category monthly limits,
// spend aggregation and limit suggestions.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// UpsertBudgetInput represents the input for setting a category budget.
type UpsertBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      valueobject.MonthKey
	Limit      decimal.Decimal
}

// UpsertBudgetUseCase creates the budget for (user, category, month) or
// replaces its limit when it already exists.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*entity.BudgetWithSpend, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}
	input.Limit = input.Limit.Round(2)
	if err := validateLimit(input.Limit); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Month, input.Limit, uc.clock.Now())
	stored, err := uc.budgetRepo.Upsert(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &entity.BudgetWithSpend{Budget: stored, Category: category, Spent: decimal.Zero}, nil
}

func validateLimit(limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	return nil
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
