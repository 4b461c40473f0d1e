package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteRuleInput represents the input for rule deletion.
type DeleteRuleInput struct {
	UserID uuid.UUID
	RuleID uuid.UUID
}

// DeleteRuleUseCase removes a rule together with its instances. Payments made
// against those instances stay in the ledger without the bill link.
type DeleteRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewDeleteRuleUseCase creates a new DeleteRuleUseCase instance.
func NewDeleteRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the rule deletion.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, input DeleteRuleInput) error {
	if err := uc.ruleRepo.Delete(ctx, input.RuleID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return ruleNotFound()
		}
		return fmt.Errorf("failed to delete recurring rule: %w", err)
	}

	slog.InfoContext(ctx, "recurring rule deleted", "user_id", input.UserID, "rule_id", input.RuleID)
	return nil
}
