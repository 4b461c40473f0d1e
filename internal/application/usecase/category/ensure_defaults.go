package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// EnsureDefaultCategoriesUseCase seeds the default category set. Existing
// categories with a default name are left untouched, so it is safe to run on
// every start.
type EnsureDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewEnsureDefaultCategoriesUseCase creates a new EnsureDefaultCategoriesUseCase instance.
func NewEnsureDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *EnsureDefaultCategoriesUseCase {
	return &EnsureDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute inserts the missing defaults and returns how many were created.
func (uc *EnsureDefaultCategoriesUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	created := 0

	for _, d := range entity.DefaultCategories {
		category := entity.NewCategory(d.Name, d.Icon, d.Color, d.Kind, true, now)
		inserted, err := uc.categoryRepo.CreateIfNotExists(ctx, category)
		if err != nil {
			return created, fmt.Errorf("failed to seed category %q: %w", d.Name, err)
		}
		if inserted {
			created++
		}
	}

	if created > 0 {
		slog.InfoContext(ctx, "default categories created", "count", created)
	}
	return created, nil
}
