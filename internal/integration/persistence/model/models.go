package model

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&RecurringRuleModel{},
		&RecurringInstanceModel{},
		&TransactionModel{},
		&MonthLedgerModel{},
		&BudgetModel{},
		&SavingGoalModel{},
	}
}
