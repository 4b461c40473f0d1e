package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Date is a full timestamp so that month boundaries stay exact.
type TransactionModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type                string          `gorm:"type:varchar(10);not null;index"`
	CategoryID          *uuid.UUID      `gorm:"type:uuid;index"`
	Note                string          `gorm:"type:text"`
	Date                time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2"`
	RecurringInstanceID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt           time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                  m.ID,
		UserID:              m.UserID,
		Amount:              m.Amount,
		Type:                entity.TransactionType(m.Type),
		CategoryID:          m.CategoryID,
		Note:                m.Note,
		Date:                m.Date,
		RecurringInstanceID: m.RecurringInstanceID,
		CreatedAt:           m.CreatedAt,
	}
}

// ToEntityWithCategory converts the model and its preloaded category.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{Transaction: m.ToEntity()}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                  t.ID,
		UserID:              t.UserID,
		Amount:              t.Amount,
		Type:                string(t.Type),
		CategoryID:          t.CategoryID,
		Note:                t.Note,
		Date:                t.Date.UTC(),
		RecurringInstanceID: t.RecurringInstanceID,
		CreatedAt:           t.CreatedAt.UTC(),
	}
}
