package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// BudgetModel represents the budgets table. (user_id, category_id, month_key) is unique.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category_month,priority:1"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category_month,priority:2;index"`
	MonthKey   string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_category_month,priority:3"`
	Limit      decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	month, _ := valueobject.ParseMonthKey(m.MonthKey)
	return &entity.Budget{
		ID:         m.ID,
		UserID:     m.UserID,
		CategoryID: m.CategoryID,
		MonthKey:   month,
		Limit:      m.Limit,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		UserID:     budget.UserID,
		CategoryID: budget.CategoryID,
		MonthKey:   budget.MonthKey.String(),
		Limit:      budget.Limit,
		CreatedAt:  budget.CreatedAt.UTC(),
		UpdatedAt:  budget.UpdatedAt.UTC(),
	}
}
