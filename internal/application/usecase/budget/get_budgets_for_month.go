package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// GetBudgetsForMonthUseCase loads a month's budgets with the actual spend of
// each category over the half-open month range.
type GetBudgetsForMonthUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetBudgetsForMonthUseCase creates a new GetBudgetsForMonthUseCase instance.
func NewGetBudgetsForMonthUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetBudgetsForMonthUseCase {
	return &GetBudgetsForMonthUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the aggregation.
func (uc *GetBudgetsForMonthUseCase) Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.BudgetWithSpend, error) {
	budgets, err := uc.budgetRepo.ListByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return budgets, nil
	}

	categoryIDs := make([]uuid.UUID, len(budgets))
	for i, b := range budgets {
		categoryIDs[i] = b.Budget.CategoryID
	}

	start, end := month.Range(uc.clock.Now().Location())
	spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, userID, categoryIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	for _, b := range budgets {
		b.Spent = decimal.Zero
		if total, ok := spent[b.Budget.CategoryID]; ok {
			b.Spent = total
		}
	}
	return budgets, nil
}
