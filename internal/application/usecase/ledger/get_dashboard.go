package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RecentTransactionsLimit is how many of the month's transactions the
// dashboard shows.
const RecentTransactionsLimit = 5

// BudgetLoader loads a month's budgets with spend.
type BudgetLoader interface {
	Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.BudgetWithSpend, error)
}

// BillLister lists a month's recurring bills in display order.
type BillLister interface {
	Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) ([]*entity.Bill, error)
}

// DashboardOutput is everything the month overview shows.
type DashboardOutput struct {
	Month              valueobject.MonthKey
	Ledger             *entity.MonthLedger // nil for a past month without a ledger
	Bills              []*entity.Bill
	RecentTransactions []*entity.TransactionWithCategory
	Goals              []*entity.SavingGoal
	Budgets            []*entity.BudgetWithSpend
	Totals             *entity.TransactionTotals
}

// GetDashboardUseCase assembles the month overview.
type GetDashboardUseCase struct {
	ensureLedger    *EnsureMonthLedgerUseCase
	bills           BillLister
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.SavingGoalRepository
	budgets         BudgetLoader
	clock           adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	ensureLedger *EnsureMonthLedgerUseCase,
	bills BillLister,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.SavingGoalRepository,
	budgets BudgetLoader,
	clock adapter.Clock,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ensureLedger:    ensureLedger,
		bills:           bills,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		budgets:         budgets,
		clock:           clock,
	}
}

// Execute ensures the ledger first, then loads the remaining sections
// concurrently. Totals are actual transaction sums over the month range.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, userID uuid.UUID, month valueobject.MonthKey) (*DashboardOutput, error) {
	ledger, err := uc.ensureLedger.Execute(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	start, end := month.Range(uc.clock.Now().Location())
	output := &DashboardOutput{Month: month, Ledger: ledger}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bills, err := uc.bills.Execute(gctx, userID, month)
		if err != nil {
			return err
		}
		output.Bills = bills
		return nil
	})

	g.Go(func() error {
		recent, err := uc.transactionRepo.List(gctx, entity.TransactionFilter{
			UserID: userID,
			From:   &start,
			To:     &end,
			Limit:  RecentTransactionsLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to list recent transactions: %w", err)
		}
		output.RecentTransactions = recent
		return nil
	})

	g.Go(func() error {
		goals, err := uc.goalRepo.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		output.Goals = goals
		return nil
	})

	g.Go(func() error {
		budgets, err := uc.budgets.Execute(gctx, userID, month)
		if err != nil {
			return err
		}
		output.Budgets = budgets
		return nil
	})

	g.Go(func() error {
		totals, err := uc.transactionRepo.GetTotals(gctx, userID, start, end)
		if err != nil {
			return fmt.Errorf("failed to get totals: %w", err)
		}
		output.Totals = totals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return output, nil
}
