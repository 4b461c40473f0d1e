package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// savingGoalRepository implements the adapter.SavingGoalRepository interface.
type savingGoalRepository struct {
	db *gorm.DB
}

// NewSavingGoalRepository creates a new saving goal repository instance.
func NewSavingGoalRepository(db *gorm.DB) adapter.SavingGoalRepository {
	return &savingGoalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *savingGoalRepository) Create(ctx context.Context, goal *entity.SavingGoal) error {
	return conn(ctx, r.db).Create(model.SavingGoalFromEntity(goal)).Error
}

// FindByID retrieves a goal owned by userID.
func (r *savingGoalRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingGoal, error) {
	var goalModel model.SavingGoalModel
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// ListByUser retrieves all goals for a given user, newest first.
func (r *savingGoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	var goalModels []model.SavingGoalModel
	result := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingGoal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update updates the editable fields of a goal. The current amount only moves
// through AdjustCurrentAmount.
func (r *savingGoalRepository) Update(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := model.SavingGoalFromEntity(goal)
	result := conn(ctx, r.db).
		Model(&model.SavingGoalModel{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Select("title", "target_amount", "deadline", "color", "updated_at").
		Updates(goalModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// AdjustCurrentAmount adds delta to the current amount in one statement.
// A withdrawal only applies while the balance covers it.
func (r *savingGoalRepository) AdjustCurrentAmount(ctx context.Context, id, userID uuid.UUID, delta decimal.Decimal) (bool, error) {
	query := conn(ctx, r.db).
		Model(&model.SavingGoalModel{}).
		Where("id = ? AND user_id = ?", id, userID)
	if delta.IsNegative() {
		query = query.Where("current_amount >= ?", delta.Neg())
	}

	result := query.Updates(map[string]any{
		"current_amount": gorm.Expr("current_amount + ?", delta),
		"updated_at":     time.Now().UTC(),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a goal owned by userID.
func (r *savingGoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.SavingGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
