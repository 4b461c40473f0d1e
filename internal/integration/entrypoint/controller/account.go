package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/account"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles the signed-in user's profile and password.
type AccountController struct {
	getProfileUseCase     *account.GetProfileUseCase
	updateProfileUseCase  *account.UpdateProfileUseCase
	changePasswordUseCase *account.ChangePasswordUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	getProfileUseCase *account.GetProfileUseCase,
	updateProfileUseCase *account.UpdateProfileUseCase,
	changePasswordUseCase *account.ChangePasswordUseCase,
) *AccountController {
	return &AccountController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		changePasswordUseCase: changePasswordUseCase,
	}
}

// Get handles GET /account requests.
func (c *AccountController) Get(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	user, err := c.getProfileUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Update handles PATCH /account requests.
func (c *AccountController) Update(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), account.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ChangePassword handles POST /account/password requests. Every session of
// the user is revoked, so the client has to log in again.
func (c *AccountController) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.RequireUserID(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	err := c.changePasswordUseCase.Execute(ctx.Request.Context(), account.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password changed"})
}
