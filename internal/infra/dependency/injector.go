// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/account"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/goal"
	"github.com/expense-tracker/backend/internal/application/usecase/ledger"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/ratelimit"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Clock  adapter.Clock
	Router *router.Router

	ensureDefaults *category.EnsureDefaultCategoriesUseCase
	memoryStore    *ratelimit.MemoryStore
}

// Option overrides a default collaborator.
type Option func(*options)

type options struct {
	clock        adapter.Clock
	redis        redis.UniversalClient
	passwordCost int
}

// WithClock replaces the system clock (tests pin "today" with it).
func WithClock(clock adapter.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithRedis backs the login rate limiter with Redis and adds a cache health check.
func WithRedis(client redis.UniversalClient) Option {
	return func(o *options) { o.redis = client }
}

// WithPasswordCost sets the bcrypt cost.
func WithPasswordCost(cost int) Option {
	return func(o *options) { o.passwordCost = cost }
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *db.Database, opts ...Option) (*Injector, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.clock == nil {
		loc, err := cfg.App.Location()
		if err != nil {
			return nil, err
		}
		o.clock = adapters.NewSystemClock(loc)
	}
	clock := o.clock
	gdb := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gdb)
	tokenRepo := persistence.NewTokenRepository(gdb)
	categoryRepo := persistence.NewCategoryRepository(gdb)
	transactionRepo := persistence.NewTransactionRepository(gdb)
	ruleRepo := persistence.NewRecurringRuleRepository(gdb)
	instanceRepo := persistence.NewRecurringInstanceRepository(gdb)
	ledgerRepo := persistence.NewMonthLedgerRepository(gdb)
	budgetRepo := persistence.NewBudgetRepository(gdb)
	goalRepo := persistence.NewSavingGoalRepository(gdb)
	txManager := persistence.NewTransactionManager(gdb)

	// Services
	passwordService := adapters.NewPasswordService(o.passwordCost)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Auth and account
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)
	accountController := controller.NewAccountController(
		account.NewGetProfileUseCase(userRepo),
		account.NewUpdateProfileUseCase(userRepo, clock),
		account.NewChangePasswordUseCase(userRepo, passwordService, tokenService, clock),
	)

	// Categories
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo, clock),
		category.NewUpdateCategoryUseCase(categoryRepo, clock),
		category.NewDeleteCategoryUseCase(categoryRepo, txManager),
	)
	savingsCategory := category.NewSavingsCategoryUseCase(categoryRepo, clock)

	// Transactions
	transactionController := controller.NewTransactionController(
		transaction.NewAddTransactionUseCase(transactionRepo, categoryRepo, clock),
		transaction.NewListTransactionsUseCase(transactionRepo, clock),
		clock,
	)

	// Recurring bills
	ensureInstances := recurring.NewEnsureInstancesUseCase(ruleRepo, instanceRepo, txManager, clock)
	listBills := recurring.NewListBillsUseCase(ensureInstances, instanceRepo)
	recurringController := controller.NewRecurringController(
		recurring.NewListRulesUseCase(ruleRepo, categoryRepo),
		recurring.NewCreateRuleUseCase(ruleRepo, categoryRepo, clock),
		recurring.NewUpdateRuleUseCase(ruleRepo, categoryRepo, clock),
		recurring.NewDeleteRuleUseCase(ruleRepo),
		listBills,
		recurring.NewPayBillUseCase(instanceRepo, ruleRepo, transactionRepo, txManager, clock),
		clock,
	)

	// Budgets
	budgetsForMonth := budget.NewGetBudgetsForMonthUseCase(budgetRepo, transactionRepo, clock)
	budgetController := controller.NewBudgetController(
		budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo, clock),
		budget.NewUpdateBudgetUseCase(budgetRepo, clock),
		budget.NewDeleteBudgetUseCase(budgetRepo),
		budgetsForMonth,
		budget.NewSuggestBudgetUseCase(transactionRepo, clock),
	)

	// Month ledger and dashboard
	ensureLedger := ledger.NewEnsureMonthLedgerUseCase(ledgerRepo, ensureInstances, txManager, clock)
	ledgerController := controller.NewLedgerController(
		ensureLedger,
		ledger.NewSetMonthlyIncomeUseCase(ledgerRepo, clock),
		ledger.NewGetDashboardUseCase(ensureLedger, listBills, transactionRepo, goalRepo, budgetsForMonth, clock),
	)

	// Saving goals
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo),
		goal.NewCreateGoalUseCase(goalRepo, clock),
		goal.NewGetGoalUseCase(goalRepo),
		goal.NewUpdateGoalUseCase(goalRepo, clock),
		goal.NewDeleteGoalUseCase(goalRepo),
		goal.NewAdjustGoalUseCase(goalRepo, transactionRepo, savingsCategory, txManager, clock),
		clock,
	)

	// Health
	var cacheCheck controller.HealthCheck
	var memoryStore *ratelimit.MemoryStore
	var limiterStore adapter.RateLimitStore
	if o.redis == nil {
		memoryStore = ratelimit.NewMemoryStore()
		limiterStore = memoryStore
	} else {
		client := o.redis
		cacheCheck = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		limiterStore = ratelimit.NewRedisStore(client)
	}
	healthController := controller.NewHealthController(database.Ping, cacheCheck)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(
		limiterStore,
		"login",
		cfg.RateLimit.LoginAttempts,
		cfg.RateLimit.LoginWindow,
	)
	if cfg.IsTest() {
		loginRateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		recurringController,
		ledgerController,
		budgetController,
		goalController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:         cfg,
		Clock:          clock,
		Router:         r,
		ensureDefaults: category.NewEnsureDefaultCategoriesUseCase(categoryRepo, clock),
		memoryStore:    memoryStore,
	}, nil
}

// SeedDefaults inserts the default categories that are not present yet.
func (i *Injector) SeedDefaults(ctx context.Context) error {
	created, err := i.ensureDefaults.Execute(ctx)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Default categories ensured", "created", created)
	return nil
}

// RunBackground starts housekeeping goroutines that stop with ctx.
func (i *Injector) RunBackground(ctx context.Context) {
	if i.memoryStore != nil {
		go i.memoryStore.RunCleanup(ctx, i.Config.RateLimit.LoginWindow+time.Minute)
	}
}
