package dto

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Kind  string `json:"kind" binding:"omitempty,oneof=EXPENSE INCOME"`
}

// UpdateCategoryRequest represents the request body for a partial category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
	Kind  *string `json:"kind,omitempty" binding:"omitempty,oneof=EXPENSE INCOME"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Kind      string `json:"kind"`
	IsDefault bool   `json:"is_default"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Kind:      string(c.Kind),
		IsDefault: c.IsDefault,
	}
}

// ToCategoryRef converts an optional category, keeping nil as nil.
func ToCategoryRef(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	r := ToCategoryResponse(c)
	return &r
}

// ToCategoryListResponse converts a list of categories.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		out.Categories = append(out.Categories, ToCategoryResponse(c))
	}
	return out
}
