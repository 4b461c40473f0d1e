package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
// Nil fields are left unchanged.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Icon       *string
	Color      *string
	Kind       *entity.CategoryKind
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, notFound(input.CategoryID)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.IsDefault {
		return nil, defaultReadOnly()
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		category.Name = name
	}

	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, err
		}
		category.Color = *input.Color
	}

	if input.Icon != nil {
		if err := validateIcon(*input.Icon); err != nil {
			return nil, err
		}
		category.Icon = *input.Icon
	}

	if input.Kind != nil {
		if err := validateKind(*input.Kind); err != nil {
			return nil, err
		}
		category.Kind = *input.Kind
	}

	category.UpdatedAt = uc.clock.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				fmt.Sprintf("a category named %q already exists", category.Name),
				domainerror.ErrCategoryNameExists,
			)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
