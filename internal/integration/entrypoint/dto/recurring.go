package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateRuleRequest represents the request body for rule creation.
type CreateRuleRequest struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	DayOfMonth int     `json:"day_of_month" binding:"required"`
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Active     *bool   `json:"active,omitempty"`
}

// UpdateRuleRequest represents the request body for a partial rule update.
// ClearCategory detaches the category.
type UpdateRuleRequest struct {
	Name          *string  `json:"name,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	DayOfMonth    *int     `json:"day_of_month,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category"`
	Active        *bool    `json:"active,omitempty"`
}

// PayBillRequest represents the request body for paying a bill.
type PayBillRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Date   *string `json:"date,omitempty"`
}

// RuleResponse represents a recurring rule in API responses.
type RuleResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Amount     string            `json:"amount"`
	DayOfMonth int               `json:"day_of_month"`
	Interval   string            `json:"interval"`
	Active     bool              `json:"active"`
	CategoryID *string           `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// RuleListResponse represents the response for listing rules.
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// BillResponse represents a recurring instance with its rule and payments.
type BillResponse struct {
	ID         string            `json:"id"`
	RuleID     string            `json:"rule_id"`
	Name       string            `json:"name"`
	Month      string            `json:"month"`
	DayOfMonth int               `json:"day_of_month"`
	AmountDue  string            `json:"amount_due"`
	PaidAmount string            `json:"paid_amount"`
	Status     string            `json:"status"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// BillListResponse represents the response for listing a month's bills.
type BillListResponse struct {
	Month string         `json:"month"`
	Bills []BillResponse `json:"bills"`
}

// PayBillResponse represents the result of a payment.
type PayBillResponse struct {
	InstanceID  string              `json:"instance_id"`
	Status      string              `json:"status"`
	PaidAmount  string              `json:"paid_amount"`
	AmountDue   string              `json:"amount_due"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToRuleResponse converts a rule with its category.
func ToRuleResponse(r *recurring.RuleOutput) RuleResponse {
	resp := RuleResponse{
		ID:         r.Rule.ID.String(),
		Name:       r.Rule.Name,
		Amount:     Money(r.Rule.Amount),
		DayOfMonth: r.Rule.DayOfMonth,
		Interval:   string(r.Rule.Interval),
		Active:     r.Rule.Active,
		Category:   ToCategoryRef(r.Category),
	}
	if r.Rule.CategoryID != nil {
		id := r.Rule.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}

// ToRuleListResponse converts a list of rules.
func ToRuleListResponse(rules []*recurring.RuleOutput) RuleListResponse {
	out := RuleListResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, r := range rules {
		out.Rules = append(out.Rules, ToRuleResponse(r))
	}
	return out
}

// ToBillResponse converts a bill.
func ToBillResponse(b *entity.Bill) BillResponse {
	return BillResponse{
		ID:         b.Instance.ID.String(),
		RuleID:     b.Rule.ID.String(),
		Name:       b.Rule.Name,
		Month:      b.Instance.MonthKey.String(),
		DayOfMonth: b.Rule.DayOfMonth,
		AmountDue:  Money(b.Instance.AmountDue),
		PaidAmount: Money(b.PaidAmount),
		Status:     string(b.Instance.Status),
		Category:   ToCategoryRef(b.Category),
	}
}

// ToBillList converts bills preserving their order.
func ToBillList(bills []*entity.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, ToBillResponse(b))
	}
	return out
}

// ToPayBillResponse converts a payment result.
func ToPayBillResponse(out *recurring.PayBillOutput) PayBillResponse {
	return PayBillResponse{
		InstanceID:  out.Instance.ID.String(),
		Status:      string(out.Instance.Status),
		PaidAmount:  Money(out.PaidAmount),
		AmountDue:   Money(out.Instance.AmountDue),
		Transaction: ToTransactionResponse(out.Transaction, nil),
	}
}
