package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	txManager    adapter.TransactionManager
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, txManager adapter.TransactionManager) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		txManager:    txManager,
	}
}

// Execute deletes the category unless it is a default one or a transaction,
// budget or recurring rule still uses it.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	return uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return notFound(input.CategoryID)
			}
			return fmt.Errorf("failed to find category: %w", err)
		}
		if category.IsDefault {
			return defaultReadOnly()
		}

		inUse, err := uc.categoryRepo.IsInUse(ctx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to check category usage: %w", err)
		}
		if inUse {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"cannot delete category that is used in transactions, budgets, or recurring rules",
				domainerror.ErrCategoryInUse,
			)
		}

		if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return notFound(input.CategoryID)
			}
			return fmt.Errorf("failed to delete category: %w", err)
		}

		slog.InfoContext(ctx, "category deleted", "category_id", input.CategoryID)
		return nil
	})
}
