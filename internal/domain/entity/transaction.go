package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeIncome  TransactionType = "INCOME"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction is an immutable record of money movement.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Amount              decimal.Decimal
	Type                TransactionType
	CategoryID          *uuid.UUID
	Note                string
	Date                time.Time
	RecurringInstanceID *uuid.UUID
	CreatedAt           time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	note string,
	date time.Time,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Amount:     amount,
		Type:       transactionType,
		CategoryID: categoryID,
		Note:       note,
		Date:       date,
		CreatedAt:  now,
	}
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	UserID uuid.UUID
	From   *time.Time // inclusive
	To     *time.Time // exclusive
	Type   *TransactionType
	Limit  int
}

// TransactionTotals represents aggregated totals for a period.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// Net returns income minus expenses.
func (t TransactionTotals) Net() decimal.Decimal {
	return t.IncomeTotal.Sub(t.ExpenseTotal)
}
