package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert creates the budget or overwrites the limit of the existing
	// (user, category, month) row, and returns the stored row.
	Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error)

	// FindByID retrieves a budget owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// ListByUserAndMonth returns the month's budgets with their categories.
	// Spent is left zero.
	ListByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.BudgetWithSpend, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
