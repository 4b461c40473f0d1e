package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteBudgetUseCase handles budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes the budget when the user owns it.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, userID, budgetID uuid.UUID) error {
	if err := uc.budgetRepo.Delete(ctx, budgetID, userID); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return budgetNotFound()
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
