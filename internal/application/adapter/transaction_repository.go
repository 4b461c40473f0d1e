package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Date ranges are half-open: from is inclusive, to is exclusive.
type TransactionRepository interface {
	// Create creates a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// List retrieves transactions matching the filter, newest first.
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// ListExpensesByCategory retrieves a user's expenses in one category within the range.
	ListExpensesByCategory(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)

	// SumExpensesByCategory sums a user's expenses per category within the range.
	// Categories without expenses are absent from the map.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error)

	// SumByRecurringInstance sums every transaction linked to the instance.
	SumByRecurringInstance(ctx context.Context, instanceID uuid.UUID) (decimal.Decimal, error)

	// GetTotals calculates income and expense totals for a user within the range.
	GetTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.TransactionTotals, error)
}
