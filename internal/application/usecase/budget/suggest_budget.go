package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// SuggestionWindowMonths is how many months before the target month are
// averaged.
const SuggestionWindowMonths = 3

// SuggestBudgetInput represents the input for a limit suggestion.
type SuggestBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      valueobject.MonthKey
}

// SuggestBudgetOutput carries the suggestion. Suggestion is nil when the
// category has no expenses in the window, which is different from zero.
type SuggestBudgetOutput struct {
	Suggestion   *decimal.Decimal
	MonthsSample int
}

// SuggestBudgetUseCase proposes a limit from recent spending.
type SuggestBudgetUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewSuggestBudgetUseCase creates a new SuggestBudgetUseCase instance.
func NewSuggestBudgetUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *SuggestBudgetUseCase {
	return &SuggestBudgetUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute averages the monthly expense totals of the category over the three
// months before the target month, counting only months that have expenses,
// and rounds to a whole amount.
func (uc *SuggestBudgetUseCase) Execute(ctx context.Context, input SuggestBudgetInput) (*SuggestBudgetOutput, error) {
	loc := uc.clock.Now().Location()
	from := input.Month.AddMonths(-SuggestionWindowMonths).Start(loc)
	to := input.Month.Start(loc)

	expenses, err := uc.transactionRepo.ListExpensesByCategory(ctx, input.UserID, input.CategoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if len(expenses) == 0 {
		return &SuggestBudgetOutput{}, nil
	}

	monthly := make(map[valueobject.MonthKey]decimal.Decimal)
	for _, e := range expenses {
		key := valueobject.MonthKeyOf(e.Date.In(loc))
		monthly[key] = monthly[key].Add(e.Amount)
	}

	sum := decimal.Zero
	for _, total := range monthly {
		sum = sum.Add(total)
	}
	average := sum.Div(decimal.NewFromInt(int64(len(monthly)))).Round(0)

	return &SuggestBudgetOutput{
		Suggestion:   &average,
		MonthsSample: len(monthly),
	}, nil
}
