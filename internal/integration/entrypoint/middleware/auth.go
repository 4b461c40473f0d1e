// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// userIDKey holds the verified user id on the gin context.
const userIDKey = "user_id"

const bearerPrefix = "Bearer "

// AuthMiddleware verifies access tokens on the protected routes.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid
// "Bearer <access token>" header. On success the token's user id is the only
// identity handlers see.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, msg := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, code, msg)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				unauthorized(c, domainerror.ErrCodeExpiredToken, "Access token has expired")
				return
			}
			unauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid access token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// bearerToken pulls the token out of an Authorization header. An empty token
// comes back with the error code and message to answer with.
func bearerToken(header string) (string, domainerror.AuthErrorCode, string) {
	switch {
	case header == "":
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	case !strings.HasPrefix(header, bearerPrefix):
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func unauthorized(c *gin.Context, code domainerror.AuthErrorCode, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: msg,
		Code:  string(code),
	})
}

// RequireUserID returns the authenticated user's ID. When none is present it
// writes a 401 response and reports false, so handlers fail closed.
func RequireUserID(c *gin.Context) (uuid.UUID, bool) {
	value, _ := c.Get(userIDKey)
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		unauthorized(c, domainerror.ErrCodeMissingToken, domainerror.ErrUnauthenticated.Error())
		return uuid.Nil, false
	}
	return userID, true
}
