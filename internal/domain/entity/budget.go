package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// Budget caps spending in one category for one month.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	MonthKey   valueobject.MonthKey
	Limit      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, month valueobject.MonthKey, limit decimal.Decimal, now time.Time) *Budget {
	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		MonthKey:   month,
		Limit:      limit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

var hundred = decimal.NewFromInt(100)

// BudgetWithSpend is a budget with the actual spend of its category and month.
type BudgetWithSpend struct {
	Budget   *Budget
	Category *Category
	Spent    decimal.Decimal
}

// Percentage returns spent as a percentage of the limit. It is not capped,
// so an overspent budget reports more than 100. A zero limit yields 0.
func (b *BudgetWithSpend) Percentage() decimal.Decimal {
	if !b.Budget.Limit.IsPositive() {
		return decimal.Zero
	}
	return b.Spent.Div(b.Budget.Limit).Mul(hundred)
}

// Remaining returns the limit minus spent; negative when over budget.
func (b *BudgetWithSpend) Remaining() decimal.Decimal {
	return b.Budget.Limit.Sub(b.Spent)
}
