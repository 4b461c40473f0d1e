package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SavingsCategoryUseCase returns the "Savings" category, creating it on first use.
type SavingsCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewSavingsCategoryUseCase creates a new SavingsCategoryUseCase instance.
func NewSavingsCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *SavingsCategoryUseCase {
	return &SavingsCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute inserts the category unless a row named "Savings" exists, then
// reads it back by name. Concurrent callers all end up with the same row.
func (uc *SavingsCategoryUseCase) Execute(ctx context.Context) (*entity.Category, error) {
	if _, err := uc.categoryRepo.CreateIfNotExists(ctx, entity.NewSavingsCategory(uc.clock.Now())); err != nil {
		return nil, fmt.Errorf("failed to create savings category: %w", err)
	}

	category, err := uc.categoryRepo.FindByName(ctx, entity.SavingsCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings category: %w", err)
	}
	return category, nil
}
