package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget or overwrites the limit of the existing row.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	db := conn(ctx, r.db)
	budgetModel := model.BudgetFromEntity(budget)
	budgetModel.UpdatedAt = time.Now().UTC()

	err := db.
		Omit("Category").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
		}).
		Create(budgetModel).Error
	if err != nil {
		return nil, err
	}

	var stored model.BudgetModel
	err = db.
		Where("user_id = ? AND category_id = ? AND month_key = ?", budget.UserID, budget.CategoryID, budget.MonthKey.String()).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return stored.ToEntity(), nil
}

// FindByID retrieves a budget owned by userID.
func (r *budgetRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// ListByUserAndMonth returns the month's budgets with their categories.
func (r *budgetRepository) ListByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.BudgetWithSpend, error) {
	var budgetModels []model.BudgetModel
	err := conn(ctx, r.db).
		Preload("Category").
		Where("user_id = ? AND month_key = ?", userID, month.String()).
		Order("created_at ASC").
		Find(&budgetModels).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]*entity.BudgetWithSpend, len(budgetModels))
	for i := range budgetModels {
		b := &entity.BudgetWithSpend{Budget: budgetModels[i].ToEntity()}
		if budgetModels[i].Category != nil {
			b.Category = budgetModels[i].Category.ToEntity()
		}
		budgets[i] = b
	}
	return budgets, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	return conn(ctx, r.db).Omit("Category").Save(model.BudgetFromEntity(budget)).Error
}

// Delete removes a budget owned by userID.
func (r *budgetRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
