package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

const (
	// DefaultListLimit is used when no limit is requested.
	DefaultListLimit = 50
	// MaxListLimit caps a single listing.
	MaxListLimit = 500
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Month  *valueobject.MonthKey // Optional, restricts to the month range
	Type   *entity.TransactionType
	Limit  int
}

// ListTransactionsOutput represents the output of listing transactions.
// Totals are only computed when a month is given.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
	Totals       *entity.TransactionTotals
}

// ListTransactionsUseCase lists a user's transactions, newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'EXPENSE' or 'INCOME'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	limit := input.Limit
	switch {
	case limit < 0:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionFilter,
			"limit must not be negative",
			domainerror.ErrInvalidTransactionFilter,
		)
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	filter := entity.TransactionFilter{
		UserID: input.UserID,
		Type:   input.Type,
		Limit:  limit,
	}

	output := &ListTransactionsOutput{}

	if input.Month != nil {
		start, end := input.Month.Range(uc.clock.Now().Location())
		filter.From = &start
		filter.To = &end

		totals, err := uc.transactionRepo.GetTotals(ctx, input.UserID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get totals: %w", err)
		}
		output.Totals = totals
	}

	transactions, err := uc.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	output.Transactions = transactions

	return output, nil
}
