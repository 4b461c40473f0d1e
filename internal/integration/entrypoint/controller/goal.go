package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/goal"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles saving goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
	adjustUseCase *goal.AdjustGoalUseCase
	clock         adapter.Clock
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	adjustUseCase *goal.AdjustGoalUseCase,
	clock adapter.Clock,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		adjustUseCase: adjustUseCase,
		clock:         clock,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	goals, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: dto.ToGoalList(goals)})
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	g, err := c.getUseCase.Execute(ctx.Request.Context(), userID, id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Title:        req.Title,
		TargetAmount: dto.Amount(req.TargetAmount),
		Color:        req.Color,
	}
	if req.CurrentAmount != nil {
		current := dto.Amount(*req.CurrentAmount)
		input.CurrentAmount = &current
	}
	if req.Deadline != nil {
		deadline, ok := c.parseDeadline(ctx, *req.Deadline)
		if !ok {
			return
		}
		input.Deadline = &deadline
	}

	g, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(g))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := goal.UpdateGoalInput{
		UserID:        userID,
		GoalID:        id,
		Title:         req.Title,
		ClearDeadline: req.ClearDeadline,
		Color:         req.Color,
	}
	if req.TargetAmount != nil {
		target := dto.Amount(*req.TargetAmount)
		input.TargetAmount = &target
	}
	if req.Deadline != nil {
		deadline, ok := c.parseDeadline(ctx, *req.Deadline)
		if !ok {
			return
		}
		input.Deadline = &deadline
	}

	g, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
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

// Add handles POST /goals/:id/add requests.
func (c *GoalController) Add(ctx *gin.Context) {
	c.adjust(ctx, c.adjustUseCase.Add)
}

// Subtract handles POST /goals/:id/subtract requests. Taking more than the
// current amount answers 422 and changes nothing.
func (c *GoalController) Subtract(ctx *gin.Context) {
	c.adjust(ctx, c.adjustUseCase.Subtract)
}

type goalMovement func(ctx context.Context, input goal.AdjustGoalInput) (*goal.AdjustGoalOutput, error)

func (c *GoalController) adjust(ctx *gin.Context, move goalMovement) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.GoalMovementRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := move(ctx.Request.Context(), goal.AdjustGoalInput{
		UserID: userID,
		GoalID: id,
		Amount: dto.Amount(req.Amount),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalMovementResponse(output))
}

func (c *GoalController) parseDeadline(ctx *gin.Context, s string) (time.Time, bool) {
	deadline, err := dto.ParseDate(s, c.clock.Now().Location())
	if err != nil {
		badRequest(ctx, err.Error())
		return time.Time{}, false
	}
	return deadline, true
}
