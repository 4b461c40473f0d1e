package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListGoalsUseCase lists a user's goals, newest first.
type ListGoalsUseCase struct {
	goalRepo adapter.SavingGoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.SavingGoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	goals, err := uc.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}
