package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	addUseCase  *transaction.AddTransactionUseCase
	listUseCase *transaction.ListTransactionsUseCase
	clock       adapter.Clock
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	addUseCase *transaction.AddTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	clock adapter.Clock,
) *TransactionController {
	return &TransactionController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
		clock:       clock,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	categoryID, ok := optionalID(ctx, req.CategoryID)
	if !ok {
		return
	}

	input := transaction.AddTransactionInput{
		UserID:     userID,
		Amount:     dto.Amount(req.Amount),
		Type:       entity.TransactionType(req.Type),
		CategoryID: categoryID,
		Note:       req.Note,
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date, c.clock.Now().Location())
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		input.Date = &date
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction.Transaction, output.Transaction.Category))
}

// List handles GET /transactions requests. Query parameters: month (YYYY-MM),
// type (EXPENSE|INCOME) and limit.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{UserID: userID}

	if m := ctx.Query("month"); m != "" {
		month, err := valueobject.ParseMonthKey(m)
		if err != nil {
			badRequest(ctx, "month must have the format YYYY-MM")
			return
		}
		input.Month = &month
	}
	if t := ctx.Query("type"); t != "" {
		txType := entity.TransactionType(t)
		input.Type = &txType
	}
	if l := ctx.Query("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil {
			badRequest(ctx, "limit must be a number")
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: dto.ToTransactionList(output.Transactions),
		Totals:       dto.ToTotalsResponse(output.Totals),
	})
}
