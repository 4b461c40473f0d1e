package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SavingGoalRepository defines the interface for saving goal persistence operations.
type SavingGoalRepository interface {
	// Create creates a new goal.
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// FindByID retrieves a goal owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingGoal, error)

	// ListByUser retrieves all goals of a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error)

	// Update updates title, target, deadline and color.
	Update(ctx context.Context, goal *entity.SavingGoal) error

	// AdjustCurrentAmount adds delta to the current amount atomically. A
	// negative delta is applied only while the balance covers it; applied
	// reports whether the row changed.
	AdjustCurrentAmount(ctx context.Context, id, userID uuid.UUID, delta decimal.Decimal) (applied bool, err error)

	// Delete removes a goal owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
