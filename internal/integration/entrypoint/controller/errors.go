// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ErrCodeInvalidRequest marks a body or path parameter that could not be parsed.
const ErrCodeInvalidRequest = "REQ-010001"

var (
	notFoundErrors = []error{
		domainerror.ErrCategoryNotFound,
		domainerror.ErrRecurringRuleNotFound,
		domainerror.ErrRecurringInstanceNotFound,
		domainerror.ErrGoalNotFound,
		domainerror.ErrBudgetNotFound,
		domainerror.ErrLedgerNotFound,
	}
	conflictErrors = []error{
		domainerror.ErrCategoryNameExists,
		domainerror.ErrCategoryInUse,
		domainerror.ErrDefaultCategoryReadOnly,
		domainerror.ErrEmailAlreadyExists,
	}
	unauthorizedErrors = []error{
		domainerror.ErrInvalidCredentials,
		domainerror.ErrInvalidToken,
		domainerror.ErrExpiredToken,
		domainerror.ErrUnauthenticated,
		domainerror.ErrUserNotFound,
	}
)

// handleError writes the response for a use case error. Typed domain errors
// keep their code and message; anything else is an internal error.
func handleError(ctx *gin.Context, err error) {
	code, message, ok := describe(err)
	if !ok {
		slog.ErrorContext(ctx.Request.Context(), "request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(statusFor(err), dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func statusFor(err error) int {
	switch {
	case isAny(err, unauthorizedErrors):
		return http.StatusUnauthorized
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case errors.Is(err, domainerror.ErrInsufficientGoalBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func describe(err error) (code, message string, ok bool) {
	var (
		authErr        *domainerror.AuthError
		categoryErr    *domainerror.CategoryError
		transactionErr *domainerror.TransactionError
		recurringErr   *domainerror.RecurringError
		ledgerErr      *domainerror.LedgerError
		budgetErr      *domainerror.BudgetError
		goalErr        *domainerror.GoalError
	)

	switch {
	case errors.As(err, &authErr):
		return string(authErr.Code), authErr.Message, true
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code), categoryErr.Message, true
	case errors.As(err, &transactionErr):
		return string(transactionErr.Code), transactionErr.Message, true
	case errors.As(err, &recurringErr):
		return string(recurringErr.Code), recurringErr.Message, true
	case errors.As(err, &ledgerErr):
		return string(ledgerErr.Code), ledgerErr.Message, true
	case errors.As(err, &budgetErr):
		return string(budgetErr.Code), budgetErr.Message, true
	case errors.As(err, &goalErr):
		return string(goalErr.Code), goalErr.Message, true
	default:
		return "", "", false
	}
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  ErrCodeInvalidRequest,
	})
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    ErrCodeInvalidRequest,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// pathID parses the :id path parameter.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// pathMonth parses the :month path parameter.
func pathMonth(ctx *gin.Context) (valueobject.MonthKey, bool) {
	month, err := valueobject.ParseMonthKey(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must have the format YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return valueobject.MonthKey{}, false
	}
	return month, true
}

// optionalID parses an optional uuid string from a request body.
func optionalID(ctx *gin.Context, s *string) (*uuid.UUID, bool) {
	if s == nil {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		badRequest(ctx, "Invalid category_id")
		return nil, false
	}
	return &id, true
}
