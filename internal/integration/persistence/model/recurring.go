package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RecurringRuleModel represents the recurring_rules table in the database.
type RecurringRuleModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DayOfMonth int             `gorm:"not null"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Active     bool            `gorm:"not null"`
	Interval   string          `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the RecurringRuleModel.
func (RecurringRuleModel) TableName() string {
	return "recurring_rules"
}

// ToEntity converts a RecurringRuleModel to a domain RecurringRule entity.
func (m *RecurringRuleModel) ToEntity() *entity.RecurringRule {
	return &entity.RecurringRule{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		DayOfMonth: m.DayOfMonth,
		CategoryID: m.CategoryID,
		Active:     m.Active,
		Interval:   entity.RecurringInterval(m.Interval),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// RecurringRuleFromEntity creates a RecurringRuleModel from a domain entity.
func RecurringRuleFromEntity(rule *entity.RecurringRule) *RecurringRuleModel {
	return &RecurringRuleModel{
		ID:         rule.ID,
		UserID:     rule.UserID,
		Name:       rule.Name,
		Amount:     rule.Amount,
		DayOfMonth: rule.DayOfMonth,
		CategoryID: rule.CategoryID,
		Active:     rule.Active,
		Interval:   string(rule.Interval),
		CreatedAt:  rule.CreatedAt.UTC(),
		UpdatedAt:  rule.UpdatedAt.UTC(),
	}
}

// RecurringInstanceModel represents the recurring_instances table.
// (rule_id, month_key) is unique.
type RecurringInstanceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RuleID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_recurring_instance_rule_month,priority:1"`
	MonthKey  string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_recurring_instance_rule_month,priority:2;index"`
	AmountDue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status    string          `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	Rule *RecurringRuleModel `gorm:"foreignKey:RuleID"`
}

// TableName returns the table name for the RecurringInstanceModel.
func (RecurringInstanceModel) TableName() string {
	return "recurring_instances"
}

// ToEntity converts a RecurringInstanceModel to a domain entity.
func (m *RecurringInstanceModel) ToEntity() *entity.RecurringInstance {
	month, _ := valueobject.ParseMonthKey(m.MonthKey)
	return &entity.RecurringInstance{
		ID:        m.ID,
		RuleID:    m.RuleID,
		MonthKey:  month,
		AmountDue: m.AmountDue,
		Status:    entity.InstanceStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// RecurringInstanceFromEntity creates a RecurringInstanceModel from a domain entity.
func RecurringInstanceFromEntity(instance *entity.RecurringInstance) *RecurringInstanceModel {
	return &RecurringInstanceModel{
		ID:        instance.ID,
		RuleID:    instance.RuleID,
		MonthKey:  instance.MonthKey.String(),
		AmountDue: instance.AmountDue,
		Status:    string(instance.Status),
		CreatedAt: instance.CreatedAt.UTC(),
		UpdatedAt: instance.UpdatedAt.UTC(),
	}
}
