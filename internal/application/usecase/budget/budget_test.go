package budget

import (
	"context"
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
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestGetBudgetsForMonth_Percentage(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	budgetRepo := persistence.NewBudgetRepository(db)
	clock := testutil.Clock()
	userID := testutil.CreateUser(t, db, "budget@example.com")
	otherID := testutil.CreateUser(t, db, "other@example.com")
	food := testutil.CreateCategory(t, db, "Food", entity.CategoryKindExpense)
	fun := testutil.CreateCategory(t, db, "Fun", entity.CategoryKindExpense)
	month := valueobject.MustParseMonthKey("2024-02")

	upsert := NewUpsertBudgetUseCase(budgetRepo, persistence.NewCategoryRepository(db), clock)
	_, err := upsert.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: food.ID, Month: month, Limit: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	_, err = upsert.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: fun.ID, Month: month, Limit: decimal.NewFromInt(100)})
	require.NoError(t, err)

	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "100", date(2024, 2, 1))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "150", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "500", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeIncome, "700", date(2024, 2, 10))
	testutil.CreateTransaction(t, db, otherID, &food.ID, entity.TransactionTypeExpense, "800", date(2024, 2, 10))
	testutil.CreateTransaction(t, db, userID, &fun.ID, entity.TransactionTypeExpense, "150", date(2024, 2, 10))

	budgets, err := NewGetBudgetsForMonthUseCase(budgetRepo, persistence.NewTransactionRepository(db), clock).Execute(ctx, userID, month)
	require.NoError(t, err)
	require.Len(t, budgets, 2)

	byName := map[string]*entity.BudgetWithSpend{}
	for _, b := range budgets {
		byName[b.Category.Name] = b
	}

	assert.Equal(t, "250.00", byName["Food"].Spent.StringFixed(2))
	assert.True(t, byName["Food"].Percentage().Equal(decimal.NewFromInt(25)), "got %s", byName["Food"].Percentage())
	assert.True(t, byName["Fun"].Percentage().Equal(decimal.NewFromInt(150)), "over budget is not capped")
	assert.Equal(t, "-50.00", byName["Fun"].Remaining().StringFixed(2))
}

func TestUpsertBudget_ReplacesLimit(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	uc := NewUpsertBudgetUseCase(persistence.NewBudgetRepository(db), persistence.NewCategoryRepository(db), testutil.Clock())
	userID := testutil.CreateUser(t, db, "upsert@example.com")
	category := testutil.CreateCategory(t, db, "Rent", entity.CategoryKindExpense)
	month := valueobject.MustParseMonthKey("2024-03")

	first, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: category.ID, Month: month, Limit: decimal.NewFromInt(500)})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: category.ID, Month: month, Limit: decimal.NewFromInt(750)})
	require.NoError(t, err)

	assert.Equal(t, first.Budget.ID, second.Budget.ID)
	assert.Equal(t, "750.00", second.Budget.Limit.StringFixed(2))
	assert.Equal(t, int64(1), testutil.Count(t, db, &model.BudgetModel{}, ""))

	_, err = uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: category.ID, Month: month, Limit: decimal.Zero})
	assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetLimit)

	_, err = uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: category.ID, Month: month, Limit: decimal.RequireFromString("0.004")})
	assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetLimit)
	assert.Equal(t, "750.00", second.Budget.Limit.StringFixed(2))

	_, err = uc.Execute(ctx, UpsertBudgetInput{UserID: userID, CategoryID: uuid.New(), Month: month, Limit: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domainerror.ErrBudgetCategoryNotFound)
}

func TestUpdateAndDeleteBudget_OwnerScoped(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	budgetRepo := persistence.NewBudgetRepository(db)
	clock := testutil.Clock()
	ownerID := testutil.CreateUser(t, db, "owner@example.com")
	strangerID := testutil.CreateUser(t, db, "stranger@example.com")
	category := testutil.CreateCategory(t, db, "Taxi", entity.CategoryKindExpense)

	created, err := NewUpsertBudgetUseCase(budgetRepo, persistence.NewCategoryRepository(db), clock).Execute(ctx, UpsertBudgetInput{
		UserID: ownerID, CategoryID: category.ID, Month: valueobject.MustParseMonthKey("2024-02"), Limit: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	update := NewUpdateBudgetUseCase(budgetRepo, clock)
	_, err = update.Execute(ctx, UpdateBudgetInput{UserID: strangerID, BudgetID: created.Budget.ID, Limit: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)

	updated, err := update.Execute(ctx, UpdateBudgetInput{UserID: ownerID, BudgetID: created.Budget.ID, Limit: decimal.RequireFromString("450.5")})
	require.NoError(t, err)
	assert.Equal(t, "450.50", updated.Limit.StringFixed(2))

	remove := NewDeleteBudgetUseCase(budgetRepo)
	assert.ErrorIs(t, remove.Execute(ctx, strangerID, created.Budget.ID), domainerror.ErrBudgetNotFound)
	require.NoError(t, remove.Execute(ctx, ownerID, created.Budget.ID))
	assert.Zero(t, testutil.Count(t, db, &model.BudgetModel{}, ""))
}

func TestSuggestBudget(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	uc := NewSuggestBudgetUseCase(persistence.NewTransactionRepository(db), testutil.Clock())
	userID := testutil.CreateUser(t, db, "suggest@example.com")
	food := testutil.CreateCategory(t, db, "Food", entity.CategoryKindExpense)
	empty := testutil.CreateCategory(t, db, "Empty", entity.CategoryKindExpense)
	target := valueobject.MustParseMonthKey("2024-04")

	// January has two expenses (total 300), March one (total 101).
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "100", date(2024, 1, 5))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "200", date(2024, 1, 25))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "101", date(2024, 3, 31))
	// Outside the window or not an expense.
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "9999", date(2023, 12, 31))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "9999", date(2024, 4, 1))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeIncome, "9999", date(2024, 2, 1))

	out, err := uc.Execute(ctx, SuggestBudgetInput{UserID: userID, CategoryID: food.ID, Month: target})
	require.NoError(t, err)
	require.NotNil(t, out.Suggestion)
	// (300 + 101) / 2 = 200.5, rounded to 201.
	assert.Equal(t, "201", out.Suggestion.String())
	assert.Equal(t, 2, out.MonthsSample)

	out, err = uc.Execute(ctx, SuggestBudgetInput{UserID: userID, CategoryID: empty.ID, Month: target})
	require.NoError(t, err)
	assert.Nil(t, out.Suggestion, "no history means no suggestion, not zero")
}

func TestSuggestBudget_GroupsByLocalCalendar(t *testing.T) {
	db := testutil.NewDB(t)
	loc := time.FixedZone("EAT", 3*60*60)
	uc := NewSuggestBudgetUseCase(persistence.NewTransactionRepository(db), testutil.FixedClock{T: testutil.Now.In(loc)})
	userID := testutil.CreateUser(t, db, "local@example.com")
	food := testutil.CreateCategory(t, db, "Food", entity.CategoryKindExpense)

	// 22:00 UTC on Jan 31 is already February 1st in EAT.
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "100", time.Date(2024, 1, 31, 22, 0, 0, 0, time.UTC))
	testutil.CreateTransaction(t, db, userID, &food.ID, entity.TransactionTypeExpense, "300", time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))

	out, err := uc.Execute(context.Background(), SuggestBudgetInput{UserID: userID, CategoryID: food.ID, Month: valueobject.MustParseMonthKey("2024-03")})
	require.NoError(t, err)
	require.NotNil(t, out.Suggestion)
	assert.Equal(t, 1, out.MonthsSample)
	assert.Equal(t, "400", out.Suggestion.String())
}
