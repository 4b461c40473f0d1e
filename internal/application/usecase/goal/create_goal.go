package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount *decimal.Decimal // Optional, defaults to zero
	Deadline      *time.Time
	Color         string // Optional, defaults to DefaultGoalColor
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.SavingGoalRepository
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.SavingGoalRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal creation. A starting amount is recorded as is,
// without a mirror transaction.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*entity.SavingGoal, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	input.TargetAmount = input.TargetAmount.Round(2)
	if err := validateTarget(input.TargetAmount); err != nil {
		return nil, err
	}

	current := decimal.Zero
	if input.CurrentAmount != nil {
		current = input.CurrentAmount.Round(2)
		if current.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidCurrentAmount,
				"current amount must not be negative",
				domainerror.ErrInvalidCurrentAmount,
			)
		}
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultGoalColor
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	goal := entity.NewSavingGoal(input.UserID, title, input.TargetAmount, current, input.Deadline, color, uc.clock.Now())
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}
