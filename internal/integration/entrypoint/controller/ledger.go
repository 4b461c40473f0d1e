package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/ledger"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles the per-month endpoints: ledger, target income and
// dashboard.
type LedgerController struct {
	ensureUseCase    *ledger.EnsureMonthLedgerUseCase
	incomeUseCase    *ledger.SetMonthlyIncomeUseCase
	dashboardUseCase *ledger.GetDashboardUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	ensureUseCase *ledger.EnsureMonthLedgerUseCase,
	incomeUseCase *ledger.SetMonthlyIncomeUseCase,
	dashboardUseCase *ledger.GetDashboardUseCase,
) *LedgerController {
	return &LedgerController{
		ensureUseCase:    ensureUseCase,
		incomeUseCase:    incomeUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// Get handles GET /months/:month/ledger requests. A past month that never had
// a ledger answers 200 with a null ledger.
func (c *LedgerController) Get(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	month, ok := pathMonth(ctx)
	if !ok {
		return
	}

	l, err := c.ensureUseCase.Execute(ctx.Request.Context(), userID, month)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthLedgerResponse{
		Month:  month.String(),
		Ledger: dto.ToLedgerResponse(l),
	})
}

// SetIncome handles PUT /months/:month/income requests.
func (c *LedgerController) SetIncome(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	month, ok := pathMonth(ctx)
	if !ok {
		return
	}

	var req dto.SetIncomeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	l, err := c.incomeUseCase.Execute(ctx.Request.Context(), ledger.SetMonthlyIncomeInput{
		UserID: userID,
		Month:  month,
		Income: dto.Amount(*req.Income),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthLedgerResponse{
		Month:  month.String(),
		Ledger: dto.ToLedgerResponse(l),
	})
}

// Dashboard handles GET /months/:month/dashboard requests.
func (c *LedgerController) Dashboard(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	month, ok := pathMonth(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), userID, month)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
