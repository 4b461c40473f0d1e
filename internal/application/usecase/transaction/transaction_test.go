package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/testutil"
)

func TestAddTransaction(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewAddTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db), testutil.Clock())
	ctx := context.Background()
	userID := testutil.CreateUser(t, db, "ledger@example.com")
	category := testutil.CreateCategory(t, db, "Groceries", entity.CategoryKindExpense)

	t.Run("defaults the date to now", func(t *testing.T) {
		out, err := uc.Execute(ctx, AddTransactionInput{
			UserID:     userID,
			Amount:     decimal.RequireFromString("12.50"),
			Type:       entity.TransactionTypeExpense,
			CategoryID: &category.ID,
			Note:       "weekly shop",
		})
		require.NoError(t, err)
		assert.True(t, out.Transaction.Transaction.Date.Equal(testutil.Now))
		assert.Equal(t, "Groceries", out.Transaction.Category.Name)
	})

	tests := []struct {
		name  string
		input AddTransactionInput
		want  error
	}{
		{
			name:  "zero amount",
			input: AddTransactionInput{UserID: userID, Amount: decimal.Zero, Type: entity.TransactionTypeExpense},
			want:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:  "sub-cent amount",
			input: AddTransactionInput{UserID: userID, Amount: decimal.RequireFromString("0.004"), Type: entity.TransactionTypeExpense},
			want:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:  "negative amount",
			input: AddTransactionInput{UserID: userID, Amount: decimal.NewFromInt(-5), Type: entity.TransactionTypeIncome},
			want:  domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:  "unknown type",
			input: AddTransactionInput{UserID: userID, Amount: decimal.NewFromInt(5), Type: "TRANSFER"},
			want:  domainerror.ErrInvalidTransactionType,
		},
		{
			name:  "note too long",
			input: AddTransactionInput{UserID: userID, Amount: decimal.NewFromInt(5), Type: entity.TransactionTypeIncome, Note: strings.Repeat("x", MaxNoteLength+1)},
			want:  domainerror.ErrNoteTooLong,
		},
		{
			name: "missing category",
			input: AddTransactionInput{UserID: userID, Amount: decimal.NewFromInt(5), Type: entity.TransactionTypeExpense, CategoryID: func() *uuid.UUID {
				id := uuid.New()
				return &id
			}()},
			want: domainerror.ErrTransactionCategoryNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)

			var txnErr *domainerror.TransactionError
			assert.True(t, errors.As(err, &txnErr))
		})
	}
}

func TestListTransactions_MonthRangeIsHalfOpen(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewListTransactionsUseCase(persistence.NewTransactionRepository(db), testutil.Clock())
	ctx := context.Background()
	userID := testutil.CreateUser(t, db, "range@example.com")
	otherID := testutil.CreateUser(t, db, "other@example.com")

	inside := testutil.CreateTransaction(t, db, userID, nil, entity.TransactionTypeExpense, "40", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC))
	testutil.CreateTransaction(t, db, userID, nil, entity.TransactionTypeExpense, "60", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	first := testutil.CreateTransaction(t, db, userID, nil, entity.TransactionTypeIncome, "100", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateTransaction(t, db, otherID, nil, entity.TransactionTypeExpense, "999", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	month := valueobject.MustParseMonthKey("2024-02")
	out, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Month: &month})
	require.NoError(t, err)

	require.Len(t, out.Transactions, 2)
	assert.Equal(t, inside.ID, out.Transactions[0].Transaction.ID, "newest first")
	assert.Equal(t, first.ID, out.Transactions[1].Transaction.ID)

	require.NotNil(t, out.Totals)
	assert.Equal(t, "100.00", out.Totals.IncomeTotal.StringFixed(2))
	assert.Equal(t, "40.00", out.Totals.ExpenseTotal.StringFixed(2))
	assert.Equal(t, "60.00", out.Totals.Net().StringFixed(2))
}

func TestListTransactions_TypeAndLimit(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewListTransactionsUseCase(persistence.NewTransactionRepository(db), testutil.Clock())
	ctx := context.Background()
	userID := testutil.CreateUser(t, db, "limit@example.com")

	for i := 1; i <= 3; i++ {
		testutil.CreateTransaction(t, db, userID, nil, entity.TransactionTypeExpense, "1", testutil.Now.AddDate(0, 0, -i))
	}
	testutil.CreateTransaction(t, db, userID, nil, entity.TransactionTypeIncome, "1", testutil.Now)

	expense := entity.TransactionTypeExpense
	out, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Type: &expense, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Transactions, 2)
	assert.Nil(t, out.Totals)

	_, err = uc.Execute(ctx, ListTransactionsInput{UserID: userID, Limit: -1})
	assert.ErrorIs(t, err, domainerror.ErrInvalidTransactionFilter)
}
