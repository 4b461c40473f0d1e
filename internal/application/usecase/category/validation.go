// Package category contains category-related use cases.
package category

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
	// MaxIconLength is the maximum allowed length for icon names.
	MaxIconLength = 50
)

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			domainerror.ErrMissingCategoryName,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

func validateColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex color (e.g., #FF5733)",
			domainerror.ErrInvalidColorFormat,
		)
	}
	return nil
}

func validateIcon(icon string) error {
	if utf8.RuneCountInString(icon) > MaxIconLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			fmt.Sprintf("icon must not exceed %d characters", MaxIconLength),
			domainerror.ErrMissingCategoryName,
		)
	}
	return nil
}

func validateKind(kind entity.CategoryKind) error {
	if !kind.IsValid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"kind must be 'EXPENSE' or 'INCOME'",
			domainerror.ErrInvalidCategoryKind,
		)
	}
	return nil
}

func notFound(id fmt.Stringer) error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		fmt.Sprintf("category %s not found", id),
		domainerror.ErrCategoryNotFound,
	)
}

func defaultReadOnly() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeDefaultCategoryReadOnly,
		"default categories cannot be changed",
		domainerror.ErrDefaultCategoryReadOnly,
	)
}
