package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// EnsureInstancesUseCase materializes one instance per active rule for a
// current or future month.
type EnsureInstancesUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	instanceRepo adapter.RecurringInstanceRepository
	txManager    adapter.TransactionManager
	clock        adapter.Clock
}

// NewEnsureInstancesUseCase creates a new EnsureInstancesUseCase instance.
func NewEnsureInstancesUseCase(
	ruleRepo adapter.RecurringRuleRepository,
	instanceRepo adapter.RecurringInstanceRepository,
	txManager adapter.TransactionManager,
	clock adapter.Clock,
) *EnsureInstancesUseCase {
	return &EnsureInstancesUseCase{
		ruleRepo:     ruleRepo,
		instanceRepo: instanceRepo,
		txManager:    txManager,
		clock:        clock,
	}
}

// Execute returns how many instances were created. Months before the current
// one are never filled in. Repeated and concurrent calls converge on one
// instance per (rule, month); an instance that already exists is not an error.
func (uc *EnsureInstancesUseCase) Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (int, error) {
	now := uc.clock.Now()
	if month.Before(valueobject.MonthKeyOf(now)) {
		return 0, nil
	}

	created := 0
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		rules, err := uc.ruleRepo.ListActiveByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list active rules: %w", err)
		}

		for _, rule := range rules {
			inserted, err := uc.instanceRepo.CreateIfNotExists(ctx, entity.NewRecurringInstance(rule, month, now))
			if err != nil {
				return fmt.Errorf("failed to create instance for rule %s: %w", rule.ID, err)
			}
			if inserted {
				created++
			} else {
				slog.DebugContext(ctx, "recurring instance already exists", "rule_id", rule.ID, "month", month.String())
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		slog.InfoContext(ctx, "recurring instances generated", "user_id", userID, "month", month.String(), "count", created)
	}
	return created, nil
}
