package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Icon  string // Optional, defaults to DefaultCategoryIcon
	Color string // Optional, defaults to DefaultCategoryColor
	Kind  entity.CategoryKind
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	if err := validateIcon(icon); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.CategoryKindExpense
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}

	category := entity.NewCategory(name, icon, color, kind, false, uc.clock.Now())
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				fmt.Sprintf("a category named %q already exists", name),
				domainerror.ErrCategoryNameExists,
			)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
