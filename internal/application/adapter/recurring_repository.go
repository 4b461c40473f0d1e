package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RecurringRuleRepository defines the interface for recurring rule persistence.
// Every lookup is scoped by the owning user; a foreign rule is not found.
type RecurringRuleRepository interface {
	Create(ctx context.Context, rule *entity.RecurringRule) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringRule, error)

	// ListByUser returns all of a user's rules ordered by day of month.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringRule, error)

	// ListActiveByUser returns only active rules.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringRule, error)

	Update(ctx context.Context, rule *entity.RecurringRule) error

	// Delete removes the rule and its instances. Linked transactions survive with the link cleared.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// RecurringInstanceRepository defines the interface for recurring instance persistence.
type RecurringInstanceRepository interface {
	// CreateIfNotExists inserts the instance unless one already exists for
	// (rule, month). It reports whether a row was inserted; an existing row is not an error.
	CreateIfNotExists(ctx context.Context, instance *entity.RecurringInstance) (bool, error)

	// FindByIDForUser retrieves an instance whose rule is owned by userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringInstance, error)

	// UpdateStatus sets the status of an instance.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InstanceStatus) error

	// ListBillsForMonth returns the user's instances for the month with rule,
	// category and the sum of linked payments. Ordering is left to the caller.
	ListBillsForMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.Bill, error)
}
