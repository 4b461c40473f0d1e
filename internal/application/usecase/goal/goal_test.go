package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/testutil"
)

func newAdjust(db *gorm.DB) *AdjustGoalUseCase {
	clock := testutil.Clock()
	return NewAdjustGoalUseCase(
		persistence.NewSavingGoalRepository(db),
		persistence.NewTransactionRepository(db),
		category.NewSavingsCategoryUseCase(persistence.NewCategoryRepository(db), clock),
		persistence.NewTransactionManager(db),
		clock,
	)
}

func currentAmount(t *testing.T, db *gorm.DB, goal *entity.SavingGoal) string {
	t.Helper()

	var m model.SavingGoalModel
	require.NoError(t, db.First(&m, "id = ?", goal.ID).Error)
	return m.CurrentAmount.StringFixed(2)
}

func TestAddToGoal_MirrorsExpense(t *testing.T) {
	db := testutil.NewDB(t)
	userID := testutil.CreateUser(t, db, "saver@example.com")
	goal := testutil.CreateGoal(t, db, userID, "Laptop", "50000", "15000")

	out, err := newAdjust(db).Add(context.Background(), AdjustGoalInput{UserID: userID, GoalID: goal.ID, Amount: decimal.NewFromInt(5000)})
	require.NoError(t, err)

	assert.Equal(t, "20000.00", out.Goal.CurrentAmount.StringFixed(2))
	assert.Equal(t, "20000.00", currentAmount(t, db, goal))
	assert.Equal(t, entity.TransactionTypeExpense, out.Transaction.Type)
	assert.Equal(t, "Savings: Laptop", out.Transaction.Note)

	var savings model.CategoryModel
	require.NoError(t, db.First(&savings, "name = ?", entity.SavingsCategoryName).Error)
	assert.Equal(t, int64(1), testutil.Count(t, db, &model.TransactionModel{}, "type = ? AND category_id = ?", "EXPENSE", savings.ID))
	assert.Equal(t, int64(1), testutil.Count(t, db, &model.TransactionModel{}, ""))
}

func TestSubtractFromGoal_InsufficientBalance(t *testing.T) {
	db := testutil.NewDB(t)
	userID := testutil.CreateUser(t, db, "short@example.com")
	goal := testutil.CreateGoal(t, db, userID, "Car", "50000", "15000")

	_, err := newAdjust(db).Subtract(context.Background(), AdjustGoalInput{UserID: userID, GoalID: goal.ID, Amount: decimal.NewFromInt(20000)})

	var goalErr *domainerror.GoalError
	require.True(t, errors.As(err, &goalErr))
	assert.Equal(t, domainerror.ErrCodeInsufficientGoalBalance, goalErr.Code)
	assert.Equal(t, "15000.00", currentAmount(t, db, goal))
	assert.Zero(t, testutil.Count(t, db, &model.TransactionModel{}, ""))
}

func TestSubtractFromGoal_MirrorsIncome(t *testing.T) {
	db := testutil.NewDB(t)
	userID := testutil.CreateUser(t, db, "withdraw@example.com")
	goal := testutil.CreateGoal(t, db, userID, "Trip", "1000", "400")

	out, err := newAdjust(db).Subtract(context.Background(), AdjustGoalInput{UserID: userID, GoalID: goal.ID, Amount: decimal.NewFromInt(400)})
	require.NoError(t, err)

	assert.True(t, out.Goal.CurrentAmount.IsZero())
	assert.Equal(t, entity.TransactionTypeIncome, out.Transaction.Type)
	assert.Equal(t, "Withdrawal from savings: Trip", out.Transaction.Note)
}

func TestAdjustGoal_Rejections(t *testing.T) {
	db := testutil.NewDB(t)
	ownerID := testutil.CreateUser(t, db, "owner@example.com")
	strangerID := testutil.CreateUser(t, db, "stranger@example.com")
	goal := testutil.CreateGoal(t, db, ownerID, "House", "100", "50")
	uc := newAdjust(db)
	ctx := context.Background()

	_, err := uc.Add(ctx, AdjustGoalInput{UserID: strangerID, GoalID: goal.ID, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

	_, err = uc.Add(ctx, AdjustGoalInput{UserID: ownerID, GoalID: goal.ID, Amount: decimal.Zero})
	assert.ErrorIs(t, err, domainerror.ErrInvalidGoalAmount)

	_, err = uc.Subtract(ctx, AdjustGoalInput{UserID: ownerID, GoalID: goal.ID, Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domainerror.ErrInvalidGoalAmount)

	_, err = uc.Add(ctx, AdjustGoalInput{UserID: ownerID, GoalID: goal.ID, Amount: decimal.RequireFromString("0.004")})
	assert.ErrorIs(t, err, domainerror.ErrInvalidGoalAmount)

	assert.Equal(t, "50.00", currentAmount(t, db, goal))
	assert.Zero(t, testutil.Count(t, db, &model.TransactionModel{}, ""))
}

func TestGoalLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := persistence.NewSavingGoalRepository(db)
	clock := testutil.Clock()
	userID := testutil.CreateUser(t, db, "life@example.com")

	created, err := NewCreateGoalUseCase(repo, clock).Execute(ctx, CreateGoalInput{
		UserID:       userID,
		Title:        "Emergency fund",
		TargetAmount: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultGoalColor, created.Color)
	assert.True(t, created.CurrentAmount.IsZero())
	assert.False(t, created.Completed())

	deadline := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	target := decimal.NewFromInt(1000)
	updated, err := NewUpdateGoalUseCase(repo, clock).Execute(ctx, UpdateGoalInput{
		UserID:       userID,
		GoalID:       created.ID,
		TargetAmount: &target,
		Deadline:     &deadline,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Deadline)

	fetched, err := NewGetGoalUseCase(repo).Execute(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", fetched.TargetAmount.StringFixed(2))
	assert.True(t, fetched.Deadline.Equal(deadline))

	goals, err := NewListGoalsUseCase(repo).Execute(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, goals, 1)

	require.NoError(t, NewDeleteGoalUseCase(repo).Execute(ctx, userID, created.ID))
	assert.ErrorIs(t, NewDeleteGoalUseCase(repo).Execute(ctx, userID, created.ID), domainerror.ErrGoalNotFound)
}

func TestCreateGoal_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewCreateGoalUseCase(persistence.NewSavingGoalRepository(db), testutil.Clock())
	userID := testutil.CreateUser(t, db, "valid@example.com")
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name  string
		input CreateGoalInput
		want  error
	}{
		{name: "missing title", input: CreateGoalInput{UserID: userID, TargetAmount: decimal.NewFromInt(1)}, want: domainerror.ErrMissingGoalTitle},
		{name: "zero target", input: CreateGoalInput{UserID: userID, Title: "A", TargetAmount: decimal.Zero}, want: domainerror.ErrInvalidTargetAmount},
		{name: "sub-cent target", input: CreateGoalInput{UserID: userID, Title: "A", TargetAmount: decimal.RequireFromString("0.004")}, want: domainerror.ErrInvalidTargetAmount},
		{name: "negative current", input: CreateGoalInput{UserID: userID, Title: "A", TargetAmount: decimal.NewFromInt(1), CurrentAmount: &negative}, want: domainerror.ErrInvalidCurrentAmount},
		{name: "bad color", input: CreateGoalInput{UserID: userID, Title: "A", TargetAmount: decimal.NewFromInt(1), Color: "blue"}, want: domainerror.ErrInvalidGoalColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
