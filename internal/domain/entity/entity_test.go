package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

var testNow = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

func TestRecurringInstance_StatusForPaid(t *testing.T) {
	rule := NewRecurringRule(uuid.New(), "Rent", decimal.NewFromInt(32000), 1, nil, testNow)
	inst := NewRecurringInstance(rule, valueobject.MustParseMonthKey("2024-02"), testNow)

	tests := []struct {
		name string
		paid string
		want InstanceStatus
	}{
		{name: "full payment", paid: "32000", want: InstanceStatusPaid},
		{name: "overpayment", paid: "40000", want: InstanceStatusPaid},
		{name: "within rounding tolerance", paid: "31680", want: InstanceStatusPaid},
		{name: "just below tolerance", paid: "31679.99", want: InstanceStatusPartial},
		{name: "half", paid: "16000", want: InstanceStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inst.StatusForPaid(decimal.RequireFromString(tt.paid)); got != tt.want {
				t.Errorf("StatusForPaid(%s) = %s, want %s", tt.paid, got, tt.want)
			}
		})
	}

	if inst.Status != InstanceStatusDue || !inst.AmountDue.Equal(rule.Amount) {
		t.Errorf("new instance should be DUE with the rule amount, got %s %s", inst.Status, inst.AmountDue)
	}
}

func TestBudgetWithSpend_Percentage(t *testing.T) {
	month := valueobject.MustParseMonthKey("2024-02")

	b := &BudgetWithSpend{
		Budget: NewBudget(uuid.New(), uuid.New(), month, decimal.NewFromInt(1000), testNow),
		Spent:  decimal.NewFromInt(250),
	}
	if !b.Percentage().Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25, got %s", b.Percentage())
	}

	b.Spent = decimal.NewFromInt(1500)
	if !b.Percentage().Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected uncapped 150, got %s", b.Percentage())
	}
	if !b.Remaining().Equal(decimal.NewFromInt(-500)) {
		t.Errorf("expected -500 remaining, got %s", b.Remaining())
	}

	b.Budget.Limit = decimal.Zero
	if !b.Percentage().IsZero() {
		t.Errorf("expected 0 for zero limit, got %s", b.Percentage())
	}
}

func TestSavingGoal_DerivedState(t *testing.T) {
	g := NewSavingGoal(uuid.New(), "New Phone", decimal.NewFromInt(50000), decimal.NewFromInt(15000), nil, DefaultGoalColor, testNow)

	if g.Completed() {
		t.Error("goal should not be completed")
	}
	if !g.Progress().Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected 30%% progress, got %s", g.Progress())
	}
	if g.CanWithdraw(decimal.NewFromInt(20000)) {
		t.Error("should not withdraw more than current amount")
	}
	if !g.CanWithdraw(decimal.NewFromInt(15000)) {
		t.Error("should withdraw the full current amount")
	}

	g.CurrentAmount = decimal.NewFromInt(60000)
	if !g.Completed() || !g.Progress().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected completed at 100%%, got %s", g.Progress())
	}

	if g.SavingsNote() != "Savings: New Phone" || g.WithdrawalNote() != "Withdrawal from savings: New Phone" {
		t.Error("unexpected mirror notes")
	}
}

func TestTransactionTotals_Net(t *testing.T) {
	totals := TransactionTotals{
		IncomeTotal:  decimal.NewFromInt(50000),
		ExpenseTotal: decimal.NewFromInt(44000),
	}
	if !totals.Net().Equal(decimal.NewFromInt(6000)) {
		t.Errorf("expected 6000, got %s", totals.Net())
	}
}
