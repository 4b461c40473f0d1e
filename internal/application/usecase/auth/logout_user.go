package auth

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// LogoutUserUseCase revokes a refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute invalidates the refresh token. Logging out is idempotent, so an
// unknown or already revoked token is not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, refreshToken string) {
	if err := uc.tokenService.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		slog.WarnContext(ctx, "failed to invalidate refresh token on logout", "error", err)
	}
}
