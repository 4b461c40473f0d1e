package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// SetMonthlyIncomeInput represents the input for setting a target income.
type SetMonthlyIncomeInput struct {
	UserID uuid.UUID
	Month  valueobject.MonthKey
	Income decimal.Decimal
}

// SetMonthlyIncomeUseCase upserts the target income of a month. Unlike
// EnsureMonthLedgerUseCase it accepts past months.
type SetMonthlyIncomeUseCase struct {
	ledgerRepo adapter.MonthLedgerRepository
	clock      adapter.Clock
}

// NewSetMonthlyIncomeUseCase creates a new SetMonthlyIncomeUseCase instance.
func NewSetMonthlyIncomeUseCase(ledgerRepo adapter.MonthLedgerRepository, clock adapter.Clock) *SetMonthlyIncomeUseCase {
	return &SetMonthlyIncomeUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
	}
}

// Execute performs the upsert.
func (uc *SetMonthlyIncomeUseCase) Execute(ctx context.Context, input SetMonthlyIncomeInput) (*entity.MonthLedger, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonth,
			"month must have the format YYYY-MM",
			domainerror.ErrInvalidMonth,
		)
	}
	input.Income = input.Income.Round(2)
	if input.Income.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidIncome,
			"income must not be negative",
			domainerror.ErrInvalidIncome,
		)
	}

	ledger := entity.NewMonthLedger(input.UserID, input.Month, input.Income, uc.clock.Now())
	if err := uc.ledgerRepo.UpsertIncome(ctx, ledger); err != nil {
		return nil, fmt.Errorf("failed to set monthly income: %w", err)
	}

	stored, err := uc.ledgerRepo.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month ledger: %w", err)
	}
	return stored, nil
}
