package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteGoalUseCase handles goal deletion. Mirror transactions written by
// earlier contributions stay in the ledger.
type DeleteGoalUseCase struct {
	goalRepo adapter.SavingGoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.SavingGoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, userID, goalID uuid.UUID) error {
	if err := uc.goalRepo.Delete(ctx, goalID, userID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return goalNotFound()
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
