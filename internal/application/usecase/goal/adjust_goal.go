package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SavingsCategoryProvider returns the category that tags goal movements.
type SavingsCategoryProvider interface {
	Execute(ctx context.Context) (*entity.Category, error)
}

// AdjustGoalInput represents a contribution to or withdrawal from a goal.
type AdjustGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// AdjustGoalOutput carries the goal after the movement and its mirror
// transaction.
type AdjustGoalOutput struct {
	Goal        *entity.SavingGoal
	Transaction *entity.Transaction
}

// AdjustGoalUseCase moves money into or out of a saving goal. Every movement
// is mirrored by a transaction in the "Savings" category, and both writes
// commit or roll back together.
type AdjustGoalUseCase struct {
	goalRepo        adapter.SavingGoalRepository
	transactionRepo adapter.TransactionRepository
	savings         SavingsCategoryProvider
	txManager       adapter.TransactionManager
	clock           adapter.Clock
}

// NewAdjustGoalUseCase creates a new AdjustGoalUseCase instance.
func NewAdjustGoalUseCase(
	goalRepo adapter.SavingGoalRepository,
	transactionRepo adapter.TransactionRepository,
	savings SavingsCategoryProvider,
	txManager adapter.TransactionManager,
	clock adapter.Clock,
) *AdjustGoalUseCase {
	return &AdjustGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		savings:         savings,
		txManager:       txManager,
		clock:           clock,
	}
}

// Add contributes to the goal and records an EXPENSE.
func (uc *AdjustGoalUseCase) Add(ctx context.Context, input AdjustGoalInput) (*AdjustGoalOutput, error) {
	return uc.adjust(ctx, input, false)
}

// Subtract withdraws from the goal and records an INCOME. It fails with an
// insufficient balance error, leaving the goal untouched, when the goal holds
// less than the amount.
func (uc *AdjustGoalUseCase) Subtract(ctx context.Context, input AdjustGoalInput) (*AdjustGoalOutput, error) {
	return uc.adjust(ctx, input, true)
}

func (uc *AdjustGoalUseCase) adjust(ctx context.Context, input AdjustGoalInput, withdraw bool) (*AdjustGoalOutput, error) {
	amount := input.Amount.Round(2)
	if err := validateMovement(amount); err != nil {
		return nil, err
	}

	var output *AdjustGoalOutput
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return goalNotFound()
			}
			return fmt.Errorf("failed to find goal: %w", err)
		}

		if withdraw && !goal.CanWithdraw(amount) {
			return insufficientBalance()
		}

		category, err := uc.savings.Execute(ctx)
		if err != nil {
			return err
		}

		txType, note, delta := entity.TransactionTypeExpense, goal.SavingsNote(), amount
		if withdraw {
			txType, note, delta = entity.TransactionTypeIncome, goal.WithdrawalNote(), amount.Neg()
		}

		now := uc.clock.Now()
		transaction := entity.NewTransaction(input.UserID, amount, txType, &category.ID, note, now, now)
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to record mirror transaction: %w", err)
		}

		applied, err := uc.goalRepo.AdjustCurrentAmount(ctx, goal.ID, input.UserID, delta)
		if err != nil {
			return fmt.Errorf("failed to adjust goal: %w", err)
		}
		if !applied {
			// A concurrent withdrawal drained the goal after the read above.
			return insufficientBalance()
		}

		updated, err := uc.goalRepo.FindByID(ctx, goal.ID, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to reload goal: %w", err)
		}

		output = &AdjustGoalOutput{Goal: updated, Transaction: transaction}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "saving goal adjusted",
		"user_id", input.UserID,
		"goal_id", input.GoalID,
		"withdraw", withdraw,
		"amount", amount.String(),
	)
	return output, nil
}

func insufficientBalance() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInsufficientGoalBalance,
		"insufficient funds in goal",
		domainerror.ErrInsufficientGoalBalance,
	)
}
