// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxNoteLength is the maximum allowed length for transaction notes.
const MaxNoteLength = 1000

// AddTransactionInput represents the input for recording a transaction.
type AddTransactionInput struct {
	UserID     uuid.UUID
	Amount     decimal.Decimal
	Type       entity.TransactionType
	CategoryID *uuid.UUID
	Note       string
	Date       *time.Time // Optional, defaults to now
}

// AddTransactionOutput represents the output of recording a transaction.
type AddTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// AddTransactionUseCase appends a transaction to the user's ledger.
type AddTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	clock           adapter.Clock
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		clock:           clock,
	}
}

// Execute performs the transaction creation.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	input.Amount = input.Amount.Round(2)
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'EXPENSE' or 'INCOME'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if utf8.RuneCountInString(input.Note) > MaxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	now := uc.clock.Now()
	date := now
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date is invalid",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		date = *input.Date
	}

	var category *entity.Category
	if input.CategoryID != nil {
		found, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnCategoryNotFound,
					"category not found",
					domainerror.ErrTransactionCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		category = found
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Amount,
		input.Type,
		input.CategoryID,
		input.Note,
		date,
		now,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &AddTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: transaction,
			Category:    category,
		},
	}, nil
}
