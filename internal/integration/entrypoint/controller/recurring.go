package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// RecurringController handles recurring rules and the monthly bills they
// generate.
type RecurringController struct {
	listRulesUseCase  *recurring.ListRulesUseCase
	createRuleUseCase *recurring.CreateRuleUseCase
	updateRuleUseCase *recurring.UpdateRuleUseCase
	deleteRuleUseCase *recurring.DeleteRuleUseCase
	listBillsUseCase  *recurring.ListBillsUseCase
	payBillUseCase    *recurring.PayBillUseCase
	clock             adapter.Clock
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listRulesUseCase *recurring.ListRulesUseCase,
	createRuleUseCase *recurring.CreateRuleUseCase,
	updateRuleUseCase *recurring.UpdateRuleUseCase,
	deleteRuleUseCase *recurring.DeleteRuleUseCase,
	listBillsUseCase *recurring.ListBillsUseCase,
	payBillUseCase *recurring.PayBillUseCase,
	clock adapter.Clock,
) *RecurringController {
	return &RecurringController{
		listRulesUseCase:  listRulesUseCase,
		createRuleUseCase: createRuleUseCase,
		updateRuleUseCase: updateRuleUseCase,
		deleteRuleUseCase: deleteRuleUseCase,
		listBillsUseCase:  listBillsUseCase,
		payBillUseCase:    payBillUseCase,
		clock:             clock,
	}
}

// ListRules handles GET /recurring-rules requests.
func (c *RecurringController) ListRules(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	rules, err := c.listRulesUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRuleListResponse(rules))
}

// CreateRule handles POST /recurring-rules requests.
func (c *RecurringController) CreateRule(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateRuleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	categoryID, ok := optionalID(ctx, req.CategoryID)
	if !ok {
		return
	}

	output, err := c.createRuleUseCase.Execute(ctx.Request.Context(), recurring.CreateRuleInput{
		UserID:     userID,
		Name:       req.Name,
		Amount:     dto.Amount(req.Amount),
		DayOfMonth: req.DayOfMonth,
		CategoryID: categoryID,
		Active:     req.Active,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRuleResponse(output))
}

// UpdateRule handles PATCH /recurring-rules/:id requests. Instances already
// generated keep their amount.
func (c *RecurringController) UpdateRule(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	ruleID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRuleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	categoryID, ok := optionalID(ctx, req.CategoryID)
	if !ok {
		return
	}

	input := recurring.UpdateRuleInput{
		UserID:        userID,
		RuleID:        ruleID,
		Name:          req.Name,
		DayOfMonth:    req.DayOfMonth,
		CategoryID:    categoryID,
		ClearCategory: req.ClearCategory,
		Active:        req.Active,
	}
	if req.Amount != nil {
		amount := dto.Amount(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateRuleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRuleResponse(output))
}

// DeleteRule handles DELETE /recurring-rules/:id requests.
func (c *RecurringController) DeleteRule(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	ruleID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteRuleUseCase.Execute(ctx.Request.Context(), recurring.DeleteRuleInput{UserID: userID, RuleID: ruleID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListBills handles GET /months/:month/bills requests.
func (c *RecurringController) ListBills(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	month, ok := pathMonth(ctx)
	if !ok {
		return
	}

	bills, err := c.listBillsUseCase.Execute(ctx.Request.Context(), userID, month)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BillListResponse{
		Month: month.String(),
		Bills: dto.ToBillList(bills),
	})
}

// PayBill handles POST /bills/:id/pay requests.
func (c *RecurringController) PayBill(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	instanceID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.PayBillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := recurring.PayBillInput{
		UserID:     userID,
		InstanceID: instanceID,
		Amount:     dto.Amount(req.Amount),
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date, c.clock.Now().Location())
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		input.Date = &date
	}

	output, err := c.payBillUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayBillResponse(output))
}
