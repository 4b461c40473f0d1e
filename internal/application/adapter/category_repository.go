package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Categories are global, so no method is scoped by user.
type CategoryRepository interface {
	// Create creates a new category. A taken name yields ErrCategoryNameExists.
	Create(ctx context.Context, category *entity.Category) error

	// CreateIfNotExists inserts the category unless one with the same name
	// exists. It reports whether a row was inserted.
	CreateIfNotExists(ctx context.Context, category *entity.Category) (bool, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// List returns categories, defaults first then by name. A nil kind lists all.
	List(ctx context.Context, kind *entity.CategoryKind) ([]*entity.Category, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id uuid.UUID) error

	// IsInUse reports whether any transaction, budget or recurring rule references the category.
	IsInUse(ctx context.Context, id uuid.UUID) (bool, error)
}
