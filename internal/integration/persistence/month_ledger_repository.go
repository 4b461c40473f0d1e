package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// monthLedgerRepository implements the adapter.MonthLedgerRepository interface.
type monthLedgerRepository struct {
	db *gorm.DB
}

// NewMonthLedgerRepository creates a new month ledger repository instance.
func NewMonthLedgerRepository(db *gorm.DB) adapter.MonthLedgerRepository {
	return &monthLedgerRepository{
		db: db,
	}
}

// FindByUserAndMonth retrieves the ledger for (user, month).
func (r *monthLedgerRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*entity.MonthLedger, error) {
	var ledgerModel model.MonthLedgerModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND month_key = ?", userID, month.String()).
		First(&ledgerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLedgerNotFound
		}
		return nil, result.Error
	}
	return ledgerModel.ToEntity(), nil
}

// CreateIfNotExists inserts the ledger unless (user, month) exists.
func (r *monthLedgerRepository) CreateIfNotExists(ctx context.Context, ledger *entity.MonthLedger) (bool, error) {
	result := conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_key"}},
			DoNothing: true,
		}).
		Create(model.MonthLedgerFromEntity(ledger))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpsertIncome creates the ledger or overwrites its income.
func (r *monthLedgerRepository) UpsertIncome(ctx context.Context, ledger *entity.MonthLedger) error {
	ledgerModel := model.MonthLedgerFromEntity(ledger)
	ledgerModel.UpdatedAt = time.Now().UTC()

	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"income", "updated_at"}),
		}).
		Create(ledgerModel).Error
}
