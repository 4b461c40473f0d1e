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
)

// UpdateBudgetInput represents the input for changing a budget's limit.
type UpdateBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
	Limit    decimal.Decimal
}

// UpdateBudgetUseCase handles budget limit changes.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute performs the update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*entity.Budget, error) {
	input.Limit = input.Limit.Round(2)
	if err := validateLimit(input.Limit); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound()
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	budget.Limit = input.Limit
	budget.UpdatedAt = uc.clock.Now()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}
