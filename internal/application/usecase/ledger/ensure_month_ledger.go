// Package ledger contains month ledger use cases: lazy ledger creation,
// target income and the monthly dashboard.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// InstanceGenerator materializes recurring instances for a month.
type InstanceGenerator interface {
	Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (int, error)
}

// EnsureMonthLedgerUseCase returns the ledger of a month, creating it for the
// current and future months.
type EnsureMonthLedgerUseCase struct {
	ledgerRepo adapter.MonthLedgerRepository
	instances  InstanceGenerator
	txManager  adapter.TransactionManager
	clock      adapter.Clock
}

// NewEnsureMonthLedgerUseCase creates a new EnsureMonthLedgerUseCase instance.
func NewEnsureMonthLedgerUseCase(
	ledgerRepo adapter.MonthLedgerRepository,
	instances InstanceGenerator,
	txManager adapter.TransactionManager,
	clock adapter.Clock,
) *EnsureMonthLedgerUseCase {
	return &EnsureMonthLedgerUseCase{
		ledgerRepo: ledgerRepo,
		instances:  instances,
		txManager:  txManager,
		clock:      clock,
	}
}

// Execute returns the existing ledger, or creates one with zero income and
// generates the month's recurring instances in the same transaction. For a
// past month without a ledger it returns nil and writes nothing; nil means no
// target income was set, not an error.
func (uc *EnsureMonthLedgerUseCase) Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthLedger, error) {
	var ledger *entity.MonthLedger

	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := uc.ledgerRepo.FindByUserAndMonth(ctx, userID, month)
		if err == nil {
			ledger = existing
			return nil
		}
		if !errors.Is(err, domainerror.ErrLedgerNotFound) {
			return fmt.Errorf("failed to find month ledger: %w", err)
		}

		now := uc.clock.Now()
		if month.Before(valueobject.MonthKeyOf(now)) {
			return nil
		}

		created, err := uc.ledgerRepo.CreateIfNotExists(ctx, entity.NewMonthLedger(userID, month, decimal.Zero, now))
		if err != nil {
			return fmt.Errorf("failed to create month ledger: %w", err)
		}

		if created {
			if _, err := uc.instances.Execute(ctx, userID, month); err != nil {
				return err
			}
			slog.InfoContext(ctx, "month ledger created", "user_id", userID, "month", month.String())
		}

		// Re-read so a ledger created by a concurrent request is returned too.
		ledger, err = uc.ledgerRepo.FindByUserAndMonth(ctx, userID, month)
		if err != nil {
			return fmt.Errorf("failed to load month ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ledger, nil
}
