// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	recurringController   *controller.RecurringController
	ledgerController      *controller.LedgerController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	ledgerController *controller.LedgerController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		recurringController:   recurringController,
		ledgerController:      ledgerController,
		budgetController:      budgetController,
		goalController:        goalController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery.
	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the /api/v1 routes. Everything outside /auth sits
// behind the auth middleware.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	account := protected.Group("/account")
	{
		account.GET("", r.accountController.Get)
		account.PATCH("", r.accountController.Update)
		account.POST("/password", r.accountController.ChangePassword)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
	}

	rules := protected.Group("/recurring-rules")
	{
		rules.GET("", r.recurringController.ListRules)
		rules.POST("", r.recurringController.CreateRule)
		rules.PATCH("/:id", r.recurringController.UpdateRule)
		rules.DELETE("/:id", r.recurringController.DeleteRule)
	}

	protected.POST("/bills/:id/pay", r.recurringController.PayBill)

	months := protected.Group("/months/:month")
	{
		months.GET("/bills", r.recurringController.ListBills)
		months.GET("/ledger", r.ledgerController.Get)
		months.PUT("/income", r.ledgerController.SetIncome)
		months.GET("/dashboard", r.ledgerController.Dashboard)
		months.GET("/budgets", r.budgetController.ListForMonth)
		months.GET("/budgets/suggestion", r.budgetController.Suggest)
	}

	budgets := protected.Group("/budgets")
	{
		budgets.POST("", r.budgetController.Upsert)
		budgets.PATCH("/:id", r.budgetController.Update)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.POST("/:id/add", r.goalController.Add)
		goals.POST("/:id/subtract", r.goalController.Subtract)
	}
}
