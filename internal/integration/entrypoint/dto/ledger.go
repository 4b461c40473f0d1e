package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/ledger"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SetIncomeRequest represents the request body for a month's target income.
type SetIncomeRequest struct {
	Income *float64 `json:"income" binding:"required"`
}

// LedgerResponse represents a month ledger. A past month without a ledger is
// rendered as null by the callers.
type LedgerResponse struct {
	ID     string `json:"id"`
	Month  string `json:"month"`
	Income string `json:"income"`
}

// MonthLedgerResponse wraps an optional ledger.
type MonthLedgerResponse struct {
	Month  string          `json:"month"`
	Ledger *LedgerResponse `json:"ledger"`
}

// DashboardResponse represents the month overview.
type DashboardResponse struct {
	Month              string                `json:"month"`
	Ledger             *LedgerResponse       `json:"ledger"`
	Bills              []BillResponse        `json:"bills"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	Goals              []GoalResponse        `json:"goals"`
	Budgets            []BudgetResponse      `json:"budgets"`
	Totals             *TotalsResponse       `json:"totals"`
}

// ToLedgerResponse converts a ledger; nil stays nil.
func ToLedgerResponse(l *entity.MonthLedger) *LedgerResponse {
	if l == nil {
		return nil
	}
	return &LedgerResponse{
		ID:     l.ID.String(),
		Month:  l.MonthKey.String(),
		Income: Money(l.Income),
	}
}

// ToDashboardResponse converts the month overview.
func ToDashboardResponse(out *ledger.DashboardOutput) DashboardResponse {
	return DashboardResponse{
		Month:              out.Month.String(),
		Ledger:             ToLedgerResponse(out.Ledger),
		Bills:              ToBillList(out.Bills),
		RecentTransactions: ToTransactionList(out.RecentTransactions),
		Goals:              ToGoalList(out.Goals),
		Budgets:            ToBudgetList(out.Budgets),
		Totals:             ToTotalsResponse(out.Totals),
	}
}
