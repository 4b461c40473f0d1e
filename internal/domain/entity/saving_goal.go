package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultGoalColor is used when a goal is created without a color.
const DefaultGoalColor = "#3b82f6"

// SavingGoal tracks progress toward a target amount.
type SavingGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Color         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingGoal creates a new SavingGoal entity.
func NewSavingGoal(userID uuid.UUID, title string, target, current decimal.Decimal, deadline *time.Time, color string, now time.Time) *SavingGoal {
	return &SavingGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Color:         color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Completed reports whether the target has been reached.
func (g *SavingGoal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns the completion percentage, capped at 100.
func (g *SavingGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	p := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// CanWithdraw reports whether amount can be taken out without going negative.
func (g *SavingGoal) CanWithdraw(amount decimal.Decimal) bool {
	return g.CurrentAmount.GreaterThanOrEqual(amount)
}

// SavingsNote is the mirror transaction note for a contribution.
func (g *SavingGoal) SavingsNote() string {
	return "Savings: " + g.Title
}

// WithdrawalNote is the mirror transaction note for a withdrawal.
func (g *SavingGoal) WithdrawalNote() string {
	return "Withdrawal from savings: " + g.Title
}
