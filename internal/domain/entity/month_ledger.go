package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// MonthLedger holds a user's target income for one month.
type MonthLedger struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MonthKey  valueobject.MonthKey
	Income    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthLedger creates a ledger with the given target income.
func NewMonthLedger(userID uuid.UUID, month valueobject.MonthKey, income decimal.Decimal, now time.Time) *MonthLedger {
	return &MonthLedger{
		ID:        uuid.New(),
		UserID:    userID,
		MonthKey:  month,
		Income:    income,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
