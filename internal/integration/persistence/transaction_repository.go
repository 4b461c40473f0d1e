package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return conn(ctx, r.db).Omit("Category").Create(model.TransactionFromEntity(transaction)).Error
}

// List retrieves transactions matching the filter, newest first.
func (r *transactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	query := conn(ctx, r.db).
		Model(&model.TransactionModel{}).
		Preload("Category").
		Where("user_id = ?", filter.UserID)

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("date < ?", filter.To.UTC())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var transactionModels []model.TransactionModel
	if err := query.Order("date DESC").Order("created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	result := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i := range transactionModels {
		result[i] = transactionModels[i].ToEntityWithCategory()
	}
	return result, nil
}

// ListExpensesByCategory retrieves a user's expenses in one category within [from, to).
func (r *transactionRepository) ListExpensesByCategory(ctx context.Context, userID, categoryID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	err := conn(ctx, r.db).
		Where("user_id = ? AND category_id = ? AND type = ?", userID, categoryID, string(entity.TransactionTypeExpense)).
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&transactionModels).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// SumExpensesByCategory sums a user's expenses per category within [from, to).
func (r *transactionRepository) SumExpensesByCategory(ctx context.Context, userID uuid.UUID, categoryIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	sums := make(map[uuid.UUID]decimal.Decimal, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return sums, nil
	}

	var rows []struct {
		CategoryID uuid.UUID
		Total      decimal.Decimal
	}
	err := conn(ctx, r.db).
		Model(&model.TransactionModel{}).
		Select("category_id, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeExpense)).
		Where("category_id IN ?", categoryIDs).
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		sums[row.CategoryID] = row.Total
	}
	return sums, nil
}

// SumByRecurringInstance sums every transaction linked to the instance.
func (r *transactionRepository) SumByRecurringInstance(ctx context.Context, instanceID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := conn(ctx, r.db).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("recurring_instance_id = ?", instanceID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// GetTotals calculates income and expense totals for a user within [from, to).
func (r *transactionRepository) GetTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.TransactionTotals, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	err := conn(ctx, r.db).
		Model(&model.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("date >= ? AND date < ?", from.UTC(), to.UTC()).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := &entity.TransactionTotals{IncomeTotal: decimal.Zero, ExpenseTotal: decimal.Zero}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = row.Total
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = row.Total
		}
	}
	return totals, nil
}
