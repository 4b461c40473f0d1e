package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/testutil"
)

type fixture struct {
	db       *gorm.DB
	ensure   *EnsureInstancesUseCase
	listBill *ListBillsUseCase
	pay      *PayBillUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	ruleRepo := persistence.NewRecurringRuleRepository(db)
	instanceRepo := persistence.NewRecurringInstanceRepository(db)
	txManager := persistence.NewTransactionManager(db)
	clock := testutil.Clock()

	ensure := NewEnsureInstancesUseCase(ruleRepo, instanceRepo, txManager, clock)
	return &fixture{
		db:       db,
		ensure:   ensure,
		listBill: NewListBillsUseCase(ensure, instanceRepo),
		pay:      NewPayBillUseCase(instanceRepo, ruleRepo, persistence.NewTransactionRepository(db), txManager, clock),
	}
}

func (f *fixture) onlyBill(t *testing.T, userID uuid.UUID, month string) *entity.Bill {
	t.Helper()

	bills, err := f.listBill.Execute(context.Background(), userID, valueobject.MustParseMonthKey(month))
	require.NoError(t, err)
	require.Len(t, bills, 1)
	return bills[0]
}

func TestEnsureInstances_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "bills@example.com")
	rent := testutil.CreateRule(t, f.db, userID, "Rent", "31680", 1, nil)
	testutil.CreateRule(t, f.db, userID, "Internet", "900", 10, nil)

	for _, month := range []string{"2024-02", "2024-05"} {
		mk := valueobject.MustParseMonthKey(month)

		created, err := f.ensure.Execute(ctx, userID, mk)
		require.NoError(t, err)
		assert.Equal(t, 2, created)

		created, err = f.ensure.Execute(ctx, userID, mk)
		require.NoError(t, err)
		assert.Zero(t, created)

		assert.Equal(t, int64(1), testutil.Count(t, f.db, &model.RecurringInstanceModel{}, "rule_id = ? AND month_key = ?", rent.ID, month))
	}

	var instance model.RecurringInstanceModel
	require.NoError(t, f.db.Where("rule_id = ? AND month_key = ?", rent.ID, "2024-02").First(&instance).Error)
	assert.Equal(t, string(entity.InstanceStatusDue), instance.Status)
	assert.Equal(t, "31680.00", instance.AmountDue.StringFixed(2))
}

func TestEnsureInstances_SkipsPastMonthsAndInactiveRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "past@example.com")
	testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, nil)
	paused := testutil.CreateRule(t, f.db, userID, "Gym", "50", 5, nil)
	require.NoError(t, f.db.Model(&model.RecurringRuleModel{}).Where("id = ?", paused.ID).Update("active", false).Error)

	created, err := f.ensure.Execute(ctx, userID, valueobject.MustParseMonthKey("2024-01"))
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Zero(t, testutil.Count(t, f.db, &model.RecurringInstanceModel{}, ""))

	created, err = f.ensure.Execute(ctx, userID, valueobject.MustParseMonthKey("2024-02"))
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestPayBill_FullAndPartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "payer@example.com")
	category := testutil.CreateCategory(t, f.db, "Housing", entity.CategoryKindExpense)
	testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, &category.ID)

	bill := f.onlyBill(t, userID, "2024-02")

	out, err := f.pay.Execute(ctx, PayBillInput{UserID: userID, InstanceID: bill.Instance.ID, Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, entity.InstanceStatusPartial, out.Instance.Status)
	assert.Equal(t, "Payment for Rent", out.Transaction.Note)
	assert.Equal(t, entity.TransactionTypeExpense, out.Transaction.Type)
	require.NotNil(t, out.Transaction.CategoryID)
	assert.Equal(t, category.ID, *out.Transaction.CategoryID)

	// 500 + 495 = 995, which is within the 99% tolerance of 1000.
	out, err = f.pay.Execute(ctx, PayBillInput{UserID: userID, InstanceID: bill.Instance.ID, Amount: decimal.NewFromInt(495)})
	require.NoError(t, err)
	assert.Equal(t, entity.InstanceStatusPaid, out.Instance.Status)
	assert.Equal(t, "995.00", out.PaidAmount.StringFixed(2))

	listed := f.onlyBill(t, userID, "2024-02")
	assert.Equal(t, entity.InstanceStatusPaid, listed.Instance.Status)
	assert.Equal(t, "995.00", listed.PaidAmount.StringFixed(2))
	assert.Equal(t, "Housing", listed.Category.Name)
}

func TestPayBill_FullAmountIsPaid(t *testing.T) {
	f := newFixture(t)
	userID := testutil.CreateUser(t, f.db, "full@example.com")
	testutil.CreateRule(t, f.db, userID, "Microfinance", "31680", 5, nil)
	bill := f.onlyBill(t, userID, "2024-02")

	out, err := f.pay.Execute(context.Background(), PayBillInput{UserID: userID, InstanceID: bill.Instance.ID, Amount: bill.Instance.AmountDue})
	require.NoError(t, err)
	assert.Equal(t, entity.InstanceStatusPaid, out.Instance.Status)
}

func TestPayBill_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID := testutil.CreateUser(t, f.db, "owner@example.com")
	strangerID := testutil.CreateUser(t, f.db, "stranger@example.com")
	testutil.CreateRule(t, f.db, ownerID, "Rent", "1000", 1, nil)
	bill := f.onlyBill(t, ownerID, "2024-02")

	t.Run("other user's bill is not found", func(t *testing.T) {
		_, err := f.pay.Execute(ctx, PayBillInput{UserID: strangerID, InstanceID: bill.Instance.ID, Amount: decimal.NewFromInt(10)})
		var recErr *domainerror.RecurringError
		require.True(t, errors.As(err, &recErr))
		assert.Equal(t, domainerror.ErrCodeRecurringInstanceNotFound, recErr.Code)
		assert.Zero(t, testutil.Count(t, f.db, &model.TransactionModel{}, ""))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := f.pay.Execute(ctx, PayBillInput{UserID: ownerID, InstanceID: bill.Instance.ID, Amount: decimal.Zero})
		assert.ErrorIs(t, err, domainerror.ErrInvalidPaymentAmount)
	})

	t.Run("amount rounds to zero", func(t *testing.T) {
		_, err := f.pay.Execute(ctx, PayBillInput{UserID: ownerID, InstanceID: bill.Instance.ID, Amount: decimal.RequireFromString("0.004")})
		assert.ErrorIs(t, err, domainerror.ErrInvalidPaymentAmount)
		assert.Zero(t, testutil.Count(t, f.db, &model.TransactionModel{}, ""))
	})

	t.Run("skipped bill", func(t *testing.T) {
		require.NoError(t, f.db.Model(&model.RecurringInstanceModel{}).Where("id = ?", bill.Instance.ID).Update("status", string(entity.InstanceStatusSkipped)).Error)

		_, err := f.pay.Execute(ctx, PayBillInput{UserID: ownerID, InstanceID: bill.Instance.ID, Amount: decimal.NewFromInt(10)})
		assert.ErrorIs(t, err, domainerror.ErrInstanceSkipped)
		assert.Zero(t, testutil.Count(t, f.db, &model.TransactionModel{}, ""))
	})
}

func TestListBills_OpenFirstThenDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "order@example.com")
	testutil.CreateRule(t, f.db, userID, "Internet", "900", 10, nil)
	testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, nil)
	testutil.CreateRule(t, f.db, userID, "Church", "200", 10, nil)

	bills, err := f.listBill.Execute(ctx, userID, valueobject.MustParseMonthKey("2024-02"))
	require.NoError(t, err)
	require.Len(t, bills, 3)

	// Settle Rent so it drops to the end.
	_, err = f.pay.Execute(ctx, PayBillInput{UserID: userID, InstanceID: bills[0].Instance.ID, Amount: decimal.NewFromInt(1000)})
	require.NoError(t, err)

	bills, err = f.listBill.Execute(ctx, userID, valueobject.MustParseMonthKey("2024-02"))
	require.NoError(t, err)

	names := make([]string, len(bills))
	for i, b := range bills {
		names[i] = b.Rule.Name
	}
	assert.Equal(t, []string{"Church", "Internet", "Rent"}, names)
}

func TestSortBills(t *testing.T) {
	bill := func(name string, day int, status entity.InstanceStatus) *entity.Bill {
		return &entity.Bill{
			Instance: &entity.RecurringInstance{Status: status},
			Rule:     &entity.RecurringRule{Name: name, DayOfMonth: day},
		}
	}
	bills := []*entity.Bill{
		bill("Skipped", 1, entity.InstanceStatusSkipped),
		bill("Paid", 2, entity.InstanceStatusPaid),
		bill("Late", 28, entity.InstanceStatusDue),
		bill("Partial", 3, entity.InstanceStatusPartial),
	}

	SortBills(bills)

	want := []string{"Partial", "Late", "Skipped", "Paid"}
	for i, name := range want {
		assert.Equal(t, name, bills[i].Rule.Name)
	}
}

func TestRuleLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	ruleRepo := persistence.NewRecurringRuleRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	clock := testutil.Clock()
	userID := testutil.CreateUser(t, db, "rules@example.com")
	category := testutil.CreateCategory(t, db, "Utilities", entity.CategoryKindExpense)

	created, err := NewCreateRuleUseCase(ruleRepo, categoryRepo, clock).Execute(ctx, CreateRuleInput{
		UserID:     userID,
		Name:       " Water ",
		Amount:     decimal.RequireFromString("120.50"),
		DayOfMonth: 15,
		CategoryID: &category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Water", created.Rule.Name)
	assert.True(t, created.Rule.Active)
	assert.Equal(t, entity.RecurringIntervalMonthly, created.Rule.Interval)

	day := 20
	inactive := false
	updated, err := NewUpdateRuleUseCase(ruleRepo, categoryRepo, clock).Execute(ctx, UpdateRuleInput{
		UserID:        userID,
		RuleID:        created.Rule.ID,
		DayOfMonth:    &day,
		Active:        &inactive,
		ClearCategory: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Rule.DayOfMonth)
	assert.False(t, updated.Rule.Active)
	assert.Nil(t, updated.Category)

	rules, err := NewListRulesUseCase(ruleRepo, categoryRepo).Execute(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.False(t, rules[0].Rule.Active)

	strangerID := testutil.CreateUser(t, db, "stranger@example.com")
	err = NewDeleteRuleUseCase(ruleRepo).Execute(ctx, DeleteRuleInput{UserID: strangerID, RuleID: created.Rule.ID})
	assert.ErrorIs(t, err, domainerror.ErrRecurringRuleNotFound)

	require.NoError(t, NewDeleteRuleUseCase(ruleRepo).Execute(ctx, DeleteRuleInput{UserID: userID, RuleID: created.Rule.ID}))
	assert.Zero(t, testutil.Count(t, db, &model.RecurringRuleModel{}, ""))
}

func TestCreateRule_Validation(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewCreateRuleUseCase(persistence.NewRecurringRuleRepository(db), persistence.NewCategoryRepository(db), testutil.Clock())
	userID := testutil.CreateUser(t, db, "v@example.com")
	missing := uuid.New()

	tests := []struct {
		name  string
		input CreateRuleInput
		want  error
	}{
		{name: "blank name", input: CreateRuleInput{UserID: userID, Name: " ", Amount: decimal.NewFromInt(1), DayOfMonth: 1}, want: domainerror.ErrMissingRuleName},
		{name: "zero amount", input: CreateRuleInput{UserID: userID, Name: "A", Amount: decimal.Zero, DayOfMonth: 1}, want: domainerror.ErrInvalidRuleAmount},
		{name: "sub-cent amount", input: CreateRuleInput{UserID: userID, Name: "A", Amount: decimal.RequireFromString("0.004"), DayOfMonth: 1}, want: domainerror.ErrInvalidRuleAmount},
		{name: "day 0", input: CreateRuleInput{UserID: userID, Name: "A", Amount: decimal.NewFromInt(1), DayOfMonth: 0}, want: domainerror.ErrInvalidDayOfMonth},
		{name: "day 32", input: CreateRuleInput{UserID: userID, Name: "A", Amount: decimal.NewFromInt(1), DayOfMonth: 32}, want: domainerror.ErrInvalidDayOfMonth},
		{name: "unknown category", input: CreateRuleInput{UserID: userID, Name: "A", Amount: decimal.NewFromInt(1), DayOfMonth: 1, CategoryID: &missing}, want: domainerror.ErrRuleCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeleteRule_KeepsPaymentsWithoutLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "unlink@example.com")
	rule := testutil.CreateRule(t, f.db, userID, "Rent", "1000", 1, nil)
	bill := f.onlyBill(t, userID, "2024-02")

	_, err := f.pay.Execute(ctx, PayBillInput{
		UserID:     userID,
		InstanceID: bill.Instance.ID,
		Amount:     decimal.NewFromInt(1000),
		Date:       func() *time.Time { d := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC); return &d }(),
	})
	require.NoError(t, err)

	require.NoError(t, NewDeleteRuleUseCase(persistence.NewRecurringRuleRepository(f.db)).Execute(ctx, DeleteRuleInput{UserID: userID, RuleID: rule.ID}))

	assert.Zero(t, testutil.Count(t, f.db, &model.RecurringInstanceModel{}, ""))
	assert.Equal(t, int64(1), testutil.Count(t, f.db, &model.TransactionModel{}, "recurring_instance_id IS NULL"))
}
