package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	result := conn(ctx, r.db).Create(model.CategoryFromEntity(category))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}

// CreateIfNotExists inserts the category unless the name is taken.
func (r *categoryRepository) CreateIfNotExists(ctx context.Context, category *entity.Category) (bool, error) {
	result := conn(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(model.CategoryFromEntity(category))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByName retrieves a category by its exact name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := conn(ctx, r.db).Where("name = ?", name).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// List returns categories, defaults first then alphabetically.
func (r *categoryRepository) List(ctx context.Context, kind *entity.CategoryKind) ([]*entity.Category, error) {
	query := conn(ctx, r.db).Model(&model.CategoryModel{})
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var categoryModels []model.CategoryModel
	if err := query.Order("is_default DESC").Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := conn(ctx, r.db).Save(model.CategoryFromEntity(category))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// IsInUse reports whether a transaction, budget or recurring rule references the category.
func (r *categoryRepository) IsInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, m := range []any{&model.TransactionModel{}, &model.BudgetModel{}, &model.RecurringRuleModel{}} {
		var count int64
		if err := conn(ctx, r.db).Model(m).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
