package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// recurringRuleRepository implements the adapter.RecurringRuleRepository interface.
type recurringRuleRepository struct {
	db *gorm.DB
}

// NewRecurringRuleRepository creates a new recurring rule repository instance.
func NewRecurringRuleRepository(db *gorm.DB) adapter.RecurringRuleRepository {
	return &recurringRuleRepository{
		db: db,
	}
}

// Create creates a new recurring rule in the database.
func (r *recurringRuleRepository) Create(ctx context.Context, rule *entity.RecurringRule) error {
	return conn(ctx, r.db).Omit("Category").Create(model.RecurringRuleFromEntity(rule)).Error
}

// FindByID retrieves a rule owned by userID.
func (r *recurringRuleRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringRule, error) {
	var ruleModel model.RecurringRuleModel
	result := conn(ctx, r.db).Where("id = ? AND user_id = ?", id, userID).First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// ListByUser returns all of a user's rules ordered by day of month.
func (r *recurringRuleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringRule, error) {
	return r.list(conn(ctx, r.db).Where("user_id = ?", userID))
}

// ListActiveByUser returns a user's active rules ordered by day of month.
func (r *recurringRuleRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringRule, error) {
	return r.list(conn(ctx, r.db).Where("user_id = ? AND active = ?", userID, true))
}

func (r *recurringRuleRepository) list(query *gorm.DB) ([]*entity.RecurringRule, error) {
	var ruleModels []model.RecurringRuleModel
	if err := query.Order("day_of_month ASC").Order("name ASC").Find(&ruleModels).Error; err != nil {
		return nil, err
	}

	rules := make([]*entity.RecurringRule, len(ruleModels))
	for i := range ruleModels {
		rules[i] = ruleModels[i].ToEntity()
	}
	return rules, nil
}

// Update updates an existing rule in the database.
func (r *recurringRuleRepository) Update(ctx context.Context, rule *entity.RecurringRule) error {
	return conn(ctx, r.db).Omit("Category").Save(model.RecurringRuleFromEntity(rule)).Error
}

// Delete removes the rule and its instances, clearing the instance link on payments.
func (r *recurringRuleRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var ruleModel model.RecurringRuleModel
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&ruleModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrRecurringRuleNotFound
			}
			return err
		}

		instanceIDs := tx.Model(&model.RecurringInstanceModel{}).Select("id").Where("rule_id = ?", id)
		if err := tx.Model(&model.TransactionModel{}).
			Where("recurring_instance_id IN (?)", instanceIDs).
			Update("recurring_instance_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("rule_id = ?", id).Delete(&model.RecurringInstanceModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&ruleModel).Error
	})
}

// recurringInstanceRepository implements the adapter.RecurringInstanceRepository interface.
type recurringInstanceRepository struct {
	db *gorm.DB
}

// NewRecurringInstanceRepository creates a new recurring instance repository instance.
func NewRecurringInstanceRepository(db *gorm.DB) adapter.RecurringInstanceRepository {
	return &recurringInstanceRepository{
		db: db,
	}
}

// CreateIfNotExists inserts the instance unless (rule, month) already exists.
func (r *recurringInstanceRepository) CreateIfNotExists(ctx context.Context, instance *entity.RecurringInstance) (bool, error) {
	result := conn(ctx, r.db).
		Omit("Rule").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rule_id"}, {Name: "month_key"}},
			DoNothing: true,
		}).
		Create(model.RecurringInstanceFromEntity(instance))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByIDForUser retrieves an instance whose rule is owned by userID.
func (r *recurringInstanceRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringInstance, error) {
	var instanceModel model.RecurringInstanceModel
	result := conn(ctx, r.db).
		Select("recurring_instances.*").
		Joins("JOIN recurring_rules ON recurring_rules.id = recurring_instances.rule_id").
		Where("recurring_instances.id = ? AND recurring_rules.user_id = ?", id, userID).
		First(&instanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringInstanceNotFound
		}
		return nil, result.Error
	}
	return instanceModel.ToEntity(), nil
}

// UpdateStatus sets the status of an instance.
func (r *recurringInstanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InstanceStatus) error {
	return conn(ctx, r.db).
		Model(&model.RecurringInstanceModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// ListBillsForMonth returns the user's instances for the month with rule, category and paid sum.
func (r *recurringInstanceRepository) ListBillsForMonth(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.Bill, error) {
	db := conn(ctx, r.db)

	var instanceModels []model.RecurringInstanceModel
	err := db.
		Select("recurring_instances.*").
		Joins("JOIN recurring_rules ON recurring_rules.id = recurring_instances.rule_id").
		Where("recurring_rules.user_id = ? AND recurring_instances.month_key = ?", userID, month.String()).
		Preload("Rule.Category").
		Find(&instanceModels).Error
	if err != nil {
		return nil, err
	}
	if len(instanceModels) == 0 {
		return []*entity.Bill{}, nil
	}

	ids := make([]uuid.UUID, len(instanceModels))
	for i := range instanceModels {
		ids[i] = instanceModels[i].ID
	}

	var paidRows []struct {
		RecurringInstanceID uuid.UUID
		Total               decimal.Decimal
	}
	err = db.
		Model(&model.TransactionModel{}).
		Select("recurring_instance_id, COALESCE(SUM(amount), 0) as total").
		Where("recurring_instance_id IN ?", ids).
		Group("recurring_instance_id").
		Scan(&paidRows).Error
	if err != nil {
		return nil, err
	}

	paid := make(map[uuid.UUID]decimal.Decimal, len(paidRows))
	for _, row := range paidRows {
		paid[row.RecurringInstanceID] = row.Total
	}

	bills := make([]*entity.Bill, len(instanceModels))
	for i := range instanceModels {
		m := &instanceModels[i]
		bill := &entity.Bill{
			Instance:   m.ToEntity(),
			PaidAmount: decimal.Zero,
		}
		if total, ok := paid[m.ID]; ok {
			bill.PaidAmount = total
		}
		if m.Rule != nil {
			bill.Rule = m.Rule.ToEntity()
			if m.Rule.Category != nil {
				bill.Category = m.Rule.Category.ToEntity()
			}
		}
		bills[i] = bill
	}
	return bills, nil
}
