package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/testutil"
)

type fixture struct {
	db        *gorm.DB
	ensure    *EnsureMonthLedgerUseCase
	income    *SetMonthlyIncomeUseCase
	dashboard *GetDashboardUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	clock := testutil.Clock()
	txManager := persistence.NewTransactionManager(db)
	ledgerRepo := persistence.NewMonthLedgerRepository(db)
	instanceRepo := persistence.NewRecurringInstanceRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	instances := recurring.NewEnsureInstancesUseCase(persistence.NewRecurringRuleRepository(db), instanceRepo, txManager, clock)
	ensure := NewEnsureMonthLedgerUseCase(ledgerRepo, instances, txManager, clock)

	return &fixture{
		db:     db,
		ensure: ensure,
		income: NewSetMonthlyIncomeUseCase(ledgerRepo, clock),
		dashboard: NewGetDashboardUseCase(
			ensure,
			recurring.NewListBillsUseCase(instances, instanceRepo),
			transactionRepo,
			persistence.NewSavingGoalRepository(db),
			budget.NewGetBudgetsForMonthUseCase(persistence.NewBudgetRepository(db), transactionRepo, clock),
			clock,
		),
	}
}

func TestEnsureMonthLedger_PastMonthReturnsNil(t *testing.T) {
	f := newFixture(t)
	userID := testutil.CreateUser(t, f.db, "past@example.com")
	testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, nil)

	ledger, err := f.ensure.Execute(context.Background(), userID, valueobject.MustParseMonthKey("2024-01"))
	require.NoError(t, err)
	assert.Nil(t, ledger)

	assert.Zero(t, testutil.Count(t, f.db, &model.MonthLedgerModel{}, ""))
	assert.Zero(t, testutil.Count(t, f.db, &model.RecurringInstanceModel{}, ""))
}

func TestEnsureMonthLedger_CreatesLedgerAndInstances(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "current@example.com")
	testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, nil)
	testutil.CreateRule(t, f.db, userID, "Internet", "90", 12, nil)

	for _, month := range []string{"2024-02", "2024-07"} {
		mk := valueobject.MustParseMonthKey(month)

		first, err := f.ensure.Execute(ctx, userID, mk)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.True(t, first.Income.IsZero())

		second, err := f.ensure.Execute(ctx, userID, mk)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		assert.Equal(t, int64(1), testutil.Count(t, f.db, &model.MonthLedgerModel{}, "month_key = ?", month))
		assert.Equal(t, int64(2), testutil.Count(t, f.db, &model.RecurringInstanceModel{}, "month_key = ?", month))
	}
}

func TestSetMonthlyIncome_UpsertsAnyMonth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "income@example.com")
	past := valueobject.MustParseMonthKey("2023-11")

	ledger, err := f.income.Execute(ctx, SetMonthlyIncomeInput{UserID: userID, Month: past, Income: decimal.NewFromInt(40000)})
	require.NoError(t, err)
	assert.Equal(t, "40000.00", ledger.Income.StringFixed(2))

	ledger, err = f.income.Execute(ctx, SetMonthlyIncomeInput{UserID: userID, Month: past, Income: decimal.NewFromInt(42000)})
	require.NoError(t, err)
	assert.Equal(t, "42000.00", ledger.Income.StringFixed(2))
	assert.Equal(t, int64(1), testutil.Count(t, f.db, &model.MonthLedgerModel{}, ""))

	// A back-filled past ledger is returned by ensure.
	ensured, err := f.ensure.Execute(ctx, userID, past)
	require.NoError(t, err)
	require.NotNil(t, ensured)
	assert.Equal(t, ledger.ID, ensured.ID)

	_, err = f.income.Execute(ctx, SetMonthlyIncomeInput{UserID: userID, Month: past, Income: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domainerror.ErrInvalidIncome)
}

func TestGetDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "dash@example.com")
	otherID := testutil.CreateUser(t, f.db, "other@example.com")
	food := testutil.CreateCategory(t, f.db, "Food", entity.CategoryKindExpense)
	testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, nil)
	testutil.CreateGoal(t, f.db, userID, "Bike", "500", "100")
	require.NoError(t, f.db.Create(model.BudgetFromEntity(entity.NewBudget(userID, food.ID, valueobject.MustParseMonthKey("2024-02"), decimal.NewFromInt(200), testutil.Now))).Error)

	for day := 1; day <= 6; day++ {
		testutil.CreateTransaction(t, f.db, userID, &food.ID, entity.TransactionTypeExpense, "10", time.Date(2024, 2, day, 9, 0, 0, 0, time.UTC))
	}
	testutil.CreateTransaction(t, f.db, userID, nil, entity.TransactionTypeIncome, "500", time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC))
	testutil.CreateTransaction(t, f.db, userID, nil, entity.TransactionTypeIncome, "999", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	testutil.CreateTransaction(t, f.db, otherID, nil, entity.TransactionTypeExpense, "777", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))

	out, err := f.dashboard.Execute(ctx, userID, valueobject.MustParseMonthKey("2024-02"))
	require.NoError(t, err)

	require.NotNil(t, out.Ledger)
	require.Len(t, out.Bills, 1)
	assert.Equal(t, "Rent", out.Bills[0].Rule.Name)
	require.Len(t, out.RecentTransactions, RecentTransactionsLimit)
	assert.Equal(t, 6, out.RecentTransactions[0].Transaction.Date.Day(), "most recent first")
	require.Len(t, out.Goals, 1)
	require.Len(t, out.Budgets, 1)
	assert.Equal(t, "60.00", out.Budgets[0].Spent.StringFixed(2))
	assert.True(t, out.Budgets[0].Percentage().Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "500.00", out.Totals.IncomeTotal.StringFixed(2))
	assert.Equal(t, "60.00", out.Totals.ExpenseTotal.StringFixed(2))
	assert.Equal(t, "440.00", out.Totals.Net().StringFixed(2))
}

func TestGetDashboard_PastMonthHasNoLedger(t *testing.T) {
	f := newFixture(t)
	userID := testutil.CreateUser(t, f.db, "old@example.com")

	out, err := f.dashboard.Execute(context.Background(), userID, valueobject.MustParseMonthKey("2023-06"))
	require.NoError(t, err)
	assert.Nil(t, out.Ledger)
	assert.Empty(t, out.Bills)
	assert.Empty(t, out.Budgets)
	assert.True(t, out.Totals.IncomeTotal.IsZero())
}
