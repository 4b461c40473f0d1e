package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a budget.
type UpsertBudgetRequest struct {
	CategoryID string  `json:"category_id" binding:"required,uuid"`
	Month      string  `json:"month" binding:"required"`
	Limit      float64 `json:"limit" binding:"required"`
}

// UpdateBudgetRequest represents the request body for changing a budget limit.
type UpdateBudgetRequest struct {
	Limit float64 `json:"limit" binding:"required"`
}

// BudgetResponse represents a budget in API responses. Spend fields are only
// present where the spend was computed.
type BudgetResponse struct {
	ID         string            `json:"id"`
	CategoryID string            `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Month      string            `json:"month"`
	Limit      string            `json:"limit"`
	Spent      *string           `json:"spent,omitempty"`
	Remaining  *string           `json:"remaining,omitempty"`
	Percentage *string           `json:"percentage,omitempty"`
}

// BudgetListResponse represents the response for a month's budgets.
type BudgetListResponse struct {
	Month   string           `json:"month"`
	Budgets []BudgetResponse `json:"budgets"`
}

// SuggestionResponse carries a suggested limit; null when there is no history.
type SuggestionResponse struct {
	CategoryID   string  `json:"category_id"`
	Month        string  `json:"month"`
	Suggestion   *string `json:"suggestion"`
	MonthsSample int     `json:"months_sample"`
}

// ToBudgetResponse converts a budget without spend.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		CategoryID: b.CategoryID.String(),
		Month:      b.MonthKey.String(),
		Limit:      Money(b.Limit),
	}
}

// ToBudgetWithSpendResponse converts a budget with its actual spend.
func ToBudgetWithSpendResponse(b *entity.BudgetWithSpend) BudgetResponse {
	r := ToBudgetResponse(b.Budget)
	r.Category = ToCategoryRef(b.Category)
	spent, remaining, pct := Money(b.Spent), Money(b.Remaining()), Money(b.Percentage())
	r.Spent, r.Remaining, r.Percentage = &spent, &remaining, &pct
	return r
}

// ToBudgetList converts budgets with spend.
func ToBudgetList(budgets []*entity.BudgetWithSpend) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, ToBudgetWithSpendResponse(b))
	}
	return out
}

// ToSuggestionResponse converts a suggestion.
func ToSuggestionResponse(in budget.SuggestBudgetInput, out *budget.SuggestBudgetOutput) SuggestionResponse {
	r := SuggestionResponse{
		CategoryID:   in.CategoryID.String(),
		Month:        in.Month.String(),
		MonthsSample: out.MonthsSample,
	}
	if out.Suggestion != nil {
		s := Money(*out.Suggestion)
		r.Suggestion = &s
	}
	return r
}
