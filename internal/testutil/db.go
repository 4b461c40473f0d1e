// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// Now is the instant every test clock is fixed at: mid February 2024, UTC.
var Now = time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

// FixedClock is a clock that always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.T }

// Clock returns a clock fixed at Now.
func Clock() FixedClock {
	return FixedClock{T: Now}
}

// NewDB opens a private in-memory sqlite database migrated from the models.
// The single connection keeps the database alive for the whole test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// CreateUser inserts a user and returns its ID.
func CreateUser(t testing.TB, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := entity.NewUser(email, "Test User", "not-a-real-hash", Now)
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

// CreateCategory inserts a category and returns it.
func CreateCategory(t testing.TB, db *gorm.DB, name string, kind entity.CategoryKind) *entity.Category {
	t.Helper()

	category := entity.NewCategory(name, entity.DefaultCategoryIcon, entity.DefaultCategoryColor, kind, false, Now)
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

// CreateTransaction inserts a transaction dated at date.
func CreateTransaction(t testing.TB, db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID, txType entity.TransactionType, amount string, date time.Time) *entity.Transaction {
	t.Helper()

	transaction := entity.NewTransaction(userID, decimal.RequireFromString(amount), txType, categoryID, "", date, Now)
	if err := db.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return transaction
}

// CreateRule inserts an active recurring rule.
func CreateRule(t testing.TB, db *gorm.DB, userID uuid.UUID, name, amount string, day int, categoryID *uuid.UUID) *entity.RecurringRule {
	t.Helper()

	rule := entity.NewRecurringRule(userID, name, decimal.RequireFromString(amount), day, categoryID, Now)
	if err := db.Omit("Category").Create(model.RecurringRuleFromEntity(rule)).Error; err != nil {
		t.Fatalf("create rule: %v", err)
	}
	return rule
}

// CreateGoal inserts a saving goal.
func CreateGoal(t testing.TB, db *gorm.DB, userID uuid.UUID, title, target, current string) *entity.SavingGoal {
	t.Helper()

	goal := entity.NewSavingGoal(userID, title, decimal.RequireFromString(target), decimal.RequireFromString(current), nil, entity.DefaultGoalColor, Now)
	if err := db.Create(model.SavingGoalFromEntity(goal)).Error; err != nil {
		t.Fatalf("create goal: %v", err)
	}
	return goal
}

// Count returns the number of rows of m matching the condition.
func Count(t testing.TB, db *gorm.DB, m any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := db.Model(m)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
