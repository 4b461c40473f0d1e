package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// MonthLedgerRepository defines the interface for month ledger persistence.
type MonthLedgerRepository interface {
	// FindByUserAndMonth returns ErrLedgerNotFound when no row exists.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthLedger, error)

	// CreateIfNotExists inserts the ledger unless (user, month) exists.
	CreateIfNotExists(ctx context.Context, ledger *entity.MonthLedger) (bool, error)

	// UpsertIncome creates the ledger or overwrites its income.
	UpsertIncome(ctx context.Context, ledger *entity.MonthLedger) error
}
