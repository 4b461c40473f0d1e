package recurring

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ListBillsUseCase returns the month's recurring bills, generating missing
// instances first when the month is current or future.
type ListBillsUseCase struct {
	ensureInstances *EnsureInstancesUseCase
	instanceRepo    adapter.RecurringInstanceRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(ensureInstances *EnsureInstancesUseCase, instanceRepo adapter.RecurringInstanceRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		ensureInstances: ensureInstances,
		instanceRepo:    instanceRepo,
	}
}

// Execute performs the listing.
func (uc *ListBillsUseCase) Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.Bill, error) {
	if _, err := uc.ensureInstances.Execute(ctx, userID, month); err != nil {
		return nil, err
	}

	bills, err := uc.instanceRepo.ListBillsForMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	SortBills(bills)
	return bills, nil
}

// SortBills orders open bills (DUE, PARTIAL) before settled ones, then by due
// day, then by name.
func SortBills(bills []*entity.Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		a, b := bills[i], bills[j]
		if ao, bo := a.Instance.Status.IsOpen(), b.Instance.Status.IsOpen(); ao != bo {
			return ao
		}
		if a.Rule.DayOfMonth != b.Rule.DayOfMonth {
			return a.Rule.DayOfMonth < b.Rule.DayOfMonth
		}
		return a.Rule.Name < b.Rule.Name
	})
}
