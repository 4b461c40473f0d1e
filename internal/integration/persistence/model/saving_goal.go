package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SavingGoalModel represents the saving_goals table in the database.
type SavingGoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline      *time.Time
	Color         string    `gorm:"type:varchar(7);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the SavingGoalModel.
func (SavingGoalModel) TableName() string {
	return "saving_goals"
}

// ToEntity converts a SavingGoalModel to a domain SavingGoal entity.
func (m *SavingGoalModel) ToEntity() *entity.SavingGoal {
	return &entity.SavingGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline,
		Color:         m.Color,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SavingGoalFromEntity creates a SavingGoalModel from a domain SavingGoal entity.
func SavingGoalFromEntity(goal *entity.SavingGoal) *SavingGoalModel {
	var deadline *time.Time
	if goal.Deadline != nil {
		d := goal.Deadline.UTC()
		deadline = &d
	}

	return &SavingGoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      deadline,
		Color:         goal.Color,
		CreatedAt:     goal.CreatedAt.UTC(),
		UpdatedAt:     goal.UpdatedAt.UTC(),
	}
}
