package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListRulesUseCase lists a user's rules ordered by due day.
type ListRulesUseCase struct {
	ruleRepo     adapter.RecurringRuleRepository
	categoryRepo adapter.CategoryRepository
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleRepo adapter.RecurringRuleRepository, categoryRepo adapter.CategoryRepository) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the listing.
func (uc *ListRulesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*RuleOutput, error) {
	rules, err := uc.ruleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}

	// Categories are global and few; one listing avoids a lookup per rule.
	categories, err := uc.categoryRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	outputs := make([]*RuleOutput, len(rules))
	for i, rule := range rules {
		output := &RuleOutput{Rule: rule}
		if rule.CategoryID != nil {
			output.Category = byID[*rule.CategoryID]
		}
		outputs[i] = output
	}
	return outputs, nil
}
