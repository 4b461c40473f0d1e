package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// stubTokens accepts only "good-token" and reports "old-token" as expired.
type stubTokens struct {
	adapter.TokenService
	userID uuid.UUID
}

func (s *stubTokens) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	switch token {
	case "good-token":
		return &adapter.TokenClaims{UserID: s.userID, Email: "user@example.com"}, nil
	case "old-token":
		return nil, fmt.Errorf("failed to parse token: %w", jwt.ErrTokenExpired)
	default:
		return nil, errors.New("failed to parse token: signature is invalid")
	}
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(&stubTokens{userID: userID}).Authenticate(), func(c *gin.Context) {
		id, ok := RequireUserID(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "AUTH-030003"},
		{name: "not a bearer header", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantCode: "AUTH-030001"},
		{name: "empty bearer token", header: "Bearer   ", wantStatus: http.StatusUnauthorized, wantCode: "AUTH-030003"},
		{name: "expired token", header: "Bearer old-token", wantStatus: http.StatusUnauthorized, wantCode: "AUTH-030002"},
		{name: "forged token", header: "Bearer forged", wantStatus: http.StatusUnauthorized, wantCode: "AUTH-030001"},
		{name: "valid token", header: "Bearer good-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
				return
			}

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestRequireUserID_FailsClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	id, ok := RequireUserID(c)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, c.IsAborted())
}
