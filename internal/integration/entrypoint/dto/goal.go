package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/goal"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string   `json:"title" binding:"required"`
	TargetAmount  float64  `json:"target_amount" binding:"required"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	Color         string   `json:"color"`
}

// UpdateGoalRequest represents the request body for a partial goal update.
type UpdateGoalRequest struct {
	Title         *string  `json:"title,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	ClearDeadline bool     `json:"clear_deadline"`
	Color         *string  `json:"color,omitempty"`
}

// GoalMovementRequest represents the request body for adding to or taking
// from a goal.
type GoalMovementRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// GoalResponse represents a saving goal in API responses.
type GoalResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  string  `json:"target_amount"`
	CurrentAmount string  `json:"current_amount"`
	Deadline      *string `json:"deadline"`
	Color         string  `json:"color"`
	Completed     bool    `json:"completed"`
	Progress      string  `json:"progress"`
	CreatedAt     string  `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalMovementResponse carries the goal after a movement and its mirror
// transaction.
type GoalMovementResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToGoalResponse converts a domain SavingGoal to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingGoal) GoalResponse {
	r := GoalResponse{
		ID:            g.ID.String(),
		Title:         g.Title,
		TargetAmount:  Money(g.TargetAmount),
		CurrentAmount: Money(g.CurrentAmount),
		Color:         g.Color,
		Completed:     g.Completed(),
		Progress:      Money(g.Progress()),
		CreatedAt:     FormatTime(g.CreatedAt),
	}
	if g.Deadline != nil {
		d := g.Deadline.Format(DateLayout)
		r.Deadline = &d
	}
	return r
}

// ToGoalList converts a list of goals.
func ToGoalList(goals []*entity.SavingGoal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, ToGoalResponse(g))
	}
	return out
}

// ToGoalMovementResponse converts the result of AddToGoal or SubtractFromGoal.
func ToGoalMovementResponse(out *goal.AdjustGoalOutput) GoalMovementResponse {
	return GoalMovementResponse{
		Goal:        ToGoalResponse(out.Goal),
		Transaction: ToTransactionResponse(out.Transaction, nil),
	}
}
