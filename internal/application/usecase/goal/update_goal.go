package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateGoalInput represents a partial goal update. Nil fields are unchanged.
// The current amount is not editable here; it moves through add and subtract.
type UpdateGoalInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	Title         *string
	TargetAmount  *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
	Color         *string
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.SavingGoalRepository
	clock    adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.SavingGoalRepository, clock adapter.Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*entity.SavingGoal, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		goal.Title = title
	}

	if input.TargetAmount != nil {
		target := input.TargetAmount.Round(2)
		if err := validateTarget(target); err != nil {
			return nil, err
		}
		goal.TargetAmount = target
	}

	switch {
	case input.ClearDeadline:
		goal.Deadline = nil
	case input.Deadline != nil:
		goal.Deadline = input.Deadline
	}

	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, err
		}
		goal.Color = *input.Color
	}

	goal.UpdatedAt = uc.clock.Now()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound()
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return goal, nil
}
