package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// PayBillInput represents a payment against a recurring instance.
type PayBillInput struct {
	UserID     uuid.UUID
	InstanceID uuid.UUID
	Amount     decimal.Decimal
	Date       *time.Time // Optional, defaults to now
}

// PayBillOutput represents the outcome of a payment.
type PayBillOutput struct {
	Instance    *entity.RecurringInstance
	Transaction *entity.Transaction
	PaidAmount  decimal.Decimal
}

// PayBillUseCase records a payment and recomputes the instance status.
type PayBillUseCase struct {
	instanceRepo    adapter.RecurringInstanceRepository
	ruleRepo        adapter.RecurringRuleRepository
	transactionRepo adapter.TransactionRepository
	txManager       adapter.TransactionManager
	clock           adapter.Clock
}

// NewPayBillUseCase creates a new PayBillUseCase instance.
func NewPayBillUseCase(
	instanceRepo adapter.RecurringInstanceRepository,
	ruleRepo adapter.RecurringRuleRepository,
	transactionRepo adapter.TransactionRepository,
	txManager adapter.TransactionManager,
	clock adapter.Clock,
) *PayBillUseCase {
	return &PayBillUseCase{
		instanceRepo:    instanceRepo,
		ruleRepo:        ruleRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		clock:           clock,
	}
}

// Execute writes an EXPENSE linked to the instance, then sums every payment
// linked to it and marks it PAID once the total reaches 99% of the amount due.
// All writes happen in one transaction.
func (uc *PayBillUseCase) Execute(ctx context.Context, input PayBillInput) (*PayBillOutput, error) {
	input.Amount = input.Amount.Round(2)
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidPayment,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	now := uc.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	var output *PayBillOutput
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		instance, err := uc.instanceRepo.FindByIDForUser(ctx, input.InstanceID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrRecurringInstanceNotFound) {
				return instanceNotFound()
			}
			return fmt.Errorf("failed to find recurring instance: %w", err)
		}

		if instance.Status == entity.InstanceStatusSkipped {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInstanceSkipped,
				"skipped bills cannot be paid",
				domainerror.ErrInstanceSkipped,
			)
		}

		rule, err := uc.ruleRepo.FindByID(ctx, instance.RuleID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
				return instanceNotFound()
			}
			return fmt.Errorf("failed to find recurring rule: %w", err)
		}

		transaction := entity.NewTransaction(
			input.UserID,
			input.Amount,
			entity.TransactionTypeExpense,
			rule.CategoryID,
			"Payment for "+rule.Name,
			date,
			now,
		)
		transaction.RecurringInstanceID = &instance.ID

		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		totalPaid, err := uc.transactionRepo.SumByRecurringInstance(ctx, instance.ID)
		if err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}

		instance.Status = instance.StatusForPaid(totalPaid)
		if err := uc.instanceRepo.UpdateStatus(ctx, instance.ID, instance.Status); err != nil {
			return fmt.Errorf("failed to update bill status: %w", err)
		}

		output = &PayBillOutput{
			Instance:    instance,
			Transaction: transaction,
			PaidAmount:  totalPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "bill payment recorded",
		"user_id", input.UserID,
		"instance_id", input.InstanceID,
		"status", output.Instance.Status,
	)
	return output, nil
}
