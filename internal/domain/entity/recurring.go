package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RecurringInterval is the repetition period of a rule. Only monthly exists.
type RecurringInterval string

const RecurringIntervalMonthly RecurringInterval = "MONTHLY"

// RecurringRule is a user-defined monthly obligation.
type RecurringRule struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal
	DayOfMonth int
	CategoryID *uuid.UUID
	Active     bool
	Interval   RecurringInterval
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewRecurringRule creates an active monthly rule.
func NewRecurringRule(userID uuid.UUID, name string, amount decimal.Decimal, dayOfMonth int, categoryID *uuid.UUID, now time.Time) *RecurringRule {
	return &RecurringRule{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		DayOfMonth: dayOfMonth,
		CategoryID: categoryID,
		Active:     true,
		Interval:   RecurringIntervalMonthly,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// InstanceStatus is the payment state of a recurring instance.
type InstanceStatus string

const (
	InstanceStatusDue     InstanceStatus = "DUE"
	InstanceStatusPartial InstanceStatus = "PARTIAL"
	InstanceStatusPaid    InstanceStatus = "PAID"
	InstanceStatusSkipped InstanceStatus = "SKIPPED"
)

// IsOpen reports whether the instance still awaits payment.
func (s InstanceStatus) IsOpen() bool {
	return s == InstanceStatusDue || s == InstanceStatusPartial
}

// PaidThreshold is the fraction of the amount due that counts as fully paid.
var PaidThreshold = decimal.RequireFromString("0.99")

// RecurringInstance is the materialization of a rule for one month.
// There is at most one per (RuleID, MonthKey).
type RecurringInstance struct {
	ID        uuid.UUID
	RuleID    uuid.UUID
	MonthKey  valueobject.MonthKey
	AmountDue decimal.Decimal
	Status    InstanceStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecurringInstance creates a DUE instance for rule in month.
func NewRecurringInstance(rule *RecurringRule, month valueobject.MonthKey, now time.Time) *RecurringInstance {
	return &RecurringInstance{
		ID:        uuid.New(),
		RuleID:    rule.ID,
		MonthKey:  month,
		AmountDue: rule.Amount,
		Status:    InstanceStatusDue,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StatusForPaid derives the status from the total paid so far.
func (i *RecurringInstance) StatusForPaid(totalPaid decimal.Decimal) InstanceStatus {
	if totalPaid.GreaterThanOrEqual(i.AmountDue.Mul(PaidThreshold)) {
		return InstanceStatusPaid
	}
	return InstanceStatusPartial
}

// Bill is a recurring instance joined with its rule, category and the sum of
// linked payments.
type Bill struct {
	Instance   *RecurringInstance
	Rule       *RecurringRule
	Category   *Category
	PaidAmount decimal.Decimal
}
