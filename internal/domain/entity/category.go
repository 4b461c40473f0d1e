package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind classifies a category as expense or income.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "EXPENSE"
	CategoryKindIncome  CategoryKind = "INCOME"
)

// IsValid reports whether k is a known kind.
func (k CategoryKind) IsValid() bool {
	return k == CategoryKindExpense || k == CategoryKindIncome
}

const (
	// DefaultCategoryColor is the color applied when none is given.
	DefaultCategoryColor = "#64748b"

	// DefaultCategoryIcon is the icon applied when none is given.
	DefaultCategoryIcon = "tag"

	// SavingsCategoryName names the category that tags goal contributions.
	SavingsCategoryName  = "Savings"
	SavingsCategoryColor = "#10b981"
	SavingsCategoryIcon  = "piggy-bank"
)

// Category is a shared label attached to transactions, budgets and recurring
// rules. Categories are global; the name is unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	Kind      CategoryKind
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Defaulting of color and icon happens in the use case before calling this.
func NewCategory(name, icon, color string, kind CategoryKind, isDefault bool, now time.Time) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		Kind:      kind,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSavingsCategory builds the category used to tag saving goal movements.
func NewSavingsCategory(now time.Time) *Category {
	return NewCategory(SavingsCategoryName, SavingsCategoryIcon, SavingsCategoryColor, CategoryKindExpense, false, now)
}

// DefaultCategory describes one entry of the seeded category set.
type DefaultCategory struct {
	Name  string
	Icon  string
	Color string
	Kind  CategoryKind
}

// DefaultCategories is the category set every installation starts with.
var DefaultCategories = []DefaultCategory{
	{Name: "Rent", Icon: "home", Color: "#ef4444", Kind: CategoryKindExpense},
	{Name: "Microfinance", Icon: "landmark", Color: "#f97316", Kind: CategoryKindExpense},
	{Name: "Taxi/Ride", Icon: "car", Color: "#eab308", Kind: CategoryKindExpense},
	{Name: "Cafe/Food", Icon: "coffee", Color: "#22c55e", Kind: CategoryKindExpense},
	{Name: "Church", Icon: "church", Color: "#06b6d4", Kind: CategoryKindExpense},
	{Name: "Family Support", Icon: "users", Color: "#3b82f6", Kind: CategoryKindExpense},
	{Name: "Internet", Icon: "wifi", Color: "#8b5cf6", Kind: CategoryKindExpense},
	{Name: "Other", Icon: "more-horizontal", Color: "#64748b", Kind: CategoryKindExpense},
	{Name: "Salary", Icon: "briefcase", Color: "#22c55e", Kind: CategoryKindIncome},
	{Name: "Business", Icon: "store", Color: "#3b82f6", Kind: CategoryKindIncome},
	{Name: "Freelance", Icon: "laptop", Color: "#a855f7", Kind: CategoryKindIncome},
	{Name: "Gift", Icon: "gift", Color: "#ec4899", Kind: CategoryKindIncome},
}
