package dto

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a transaction.
type CreateTransactionRequest struct {
	Amount     float64 `json:"amount" binding:"required"`
	Type       string  `json:"type" binding:"required,oneof=EXPENSE INCOME"`
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Note       string  `json:"note"`
	Date       *string `json:"date,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                  string            `json:"id"`
	Amount              string            `json:"amount"`
	Type                string            `json:"type"`
	CategoryID          *string           `json:"category_id"`
	Category            *CategoryResponse `json:"category,omitempty"`
	Note                string            `json:"note"`
	Date                string            `json:"date"`
	RecurringInstanceID *string           `json:"recurring_instance_id,omitempty"`
	CreatedAt           string            `json:"created_at"`
}

// TotalsResponse carries the actual income and expense sums of a period.
type TotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       *TotalsResponse       `json:"totals,omitempty"`
}

// ToTransactionResponse converts a transaction and its optional category.
func ToTransactionResponse(t *entity.Transaction, c *entity.Category) TransactionResponse {
	r := TransactionResponse{
		ID:        t.ID.String(),
		Amount:    Money(t.Amount),
		Type:      string(t.Type),
		Category:  ToCategoryRef(c),
		Note:      t.Note,
		Date:      FormatTime(t.Date),
		CreatedAt: FormatTime(t.CreatedAt),
	}
	if t.CategoryID != nil {
		id := t.CategoryID.String()
		r.CategoryID = &id
	}
	if t.RecurringInstanceID != nil {
		id := t.RecurringInstanceID.String()
		r.RecurringInstanceID = &id
	}
	return r
}

// ToTransactionList converts transactions joined with their categories.
func ToTransactionList(items []*entity.TransactionWithCategory) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToTransactionResponse(item.Transaction, item.Category))
	}
	return out
}

// ToTotalsResponse converts period totals; nil stays nil.
func ToTotalsResponse(t *entity.TransactionTotals) *TotalsResponse {
	if t == nil {
		return nil
	}
	return &TotalsResponse{
		Income:   Money(t.IncomeTotal),
		Expenses: Money(t.ExpenseTotal),
		Net:      Money(t.Net()),
	}
}
