package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	upsertUseCase  *budget.UpsertBudgetUseCase
	updateUseCase  *budget.UpdateBudgetUseCase
	deleteUseCase  *budget.DeleteBudgetUseCase
	monthUseCase   *budget.GetBudgetsForMonthUseCase
	suggestUseCase *budget.SuggestBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	monthUseCase *budget.GetBudgetsForMonthUseCase,
	suggestUseCase *budget.SuggestBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase:  upsertUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		monthUseCase:   monthUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// ListForMonth handles GET /months/:month/budgets requests.
func (c *BudgetController) ListForMonth(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	month, ok := pathMonth(ctx)
	if !ok {
		return
	}

	budgets, err := c.monthUseCase.Execute(ctx.Request.Context(), userID, month)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetListResponse{
		Month:   month.String(),
		Budgets: dto.ToBudgetList(budgets),
	})
}

// Suggest handles GET /months/:month/budgets/suggestion?category_id= requests.
func (c *BudgetController) Suggest(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	month, ok := pathMonth(ctx)
	if !ok {
		return
	}

	categoryID, err := uuid.Parse(ctx.Query("category_id"))
	if err != nil {
		badRequest(ctx, "category_id is required")
		return
	}

	input := budget.SuggestBudgetInput{UserID: userID, CategoryID: categoryID, Month: month}
	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionResponse(input, output))
}

// Upsert handles POST /budgets requests. Setting a budget twice for the same
// category and month replaces the limit.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if !bindJSON(ctx, &req) {
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id")
		return
	}
	month, err := valueobject.ParseMonthKey(req.Month)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must have the format YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidBudgetMonth),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      month,
		Limit:      dto.Amount(req.Limit),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetWithSpendResponse(output))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if !bindJSON(ctx, &req) {
		return
	}

	b, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		UserID:   userID,
		BudgetID: id,
		Limit:    dto.Amount(req.Limit),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(b))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), userID, id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
