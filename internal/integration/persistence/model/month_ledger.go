package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// MonthLedgerModel represents the month_ledgers table. (user_id, month_key) is unique.
type MonthLedgerModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_month_ledger_user_month,priority:1"`
	MonthKey  string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_month_ledger_user_month,priority:2"`
	Income    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MonthLedgerModel.
func (MonthLedgerModel) TableName() string {
	return "month_ledgers"
}

// ToEntity converts a MonthLedgerModel to a domain entity.
func (m *MonthLedgerModel) ToEntity() *entity.MonthLedger {
	month, _ := valueobject.ParseMonthKey(m.MonthKey)
	return &entity.MonthLedger{
		ID:        m.ID,
		UserID:    m.UserID,
		MonthKey:  month,
		Income:    m.Income,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MonthLedgerFromEntity creates a MonthLedgerModel from a domain entity.
func MonthLedgerFromEntity(ledger *entity.MonthLedger) *MonthLedgerModel {
	return &MonthLedgerModel{
		ID:        ledger.ID,
		UserID:    ledger.UserID,
		MonthKey:  ledger.MonthKey.String(),
		Income:    ledger.Income,
		CreatedAt: ledger.CreatedAt.UTC(),
		UpdatedAt: ledger.UpdatedAt.UTC(),
	}
}
