package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/testutil"
)

type fixture struct {
	db       *gorm.DB
	tokens   adapter.TokenService
	register *RegisterUserUseCase
	login    *LoginUserUseCase
	refresh  *RefreshTokenUseCase
	logout   *LogoutUserUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	userRepo := persistence.NewUserRepository(db)
	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	tokens := adapters.NewTokenService("test-secret", 15*time.Minute, time.Hour, persistence.NewTokenRepository(db))

	return &fixture{
		db:       db,
		tokens:   tokens,
		register: NewRegisterUserUseCase(userRepo, passwords, tokens, testutil.Clock()),
		login:    NewLoginUserUseCase(userRepo, passwords, tokens),
		refresh:  NewRefreshTokenUseCase(tokens),
		logout:   NewLogoutUserUseCase(tokens),
	}
}

func TestRegister_IssuesSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, RegisterUserInput{Email: "  Abebe@Example.com ", Name: " Abebe ", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "abebe@example.com", out.User.Email)
	assert.Equal(t, "Abebe", out.User.Name)
	assert.NotEqual(t, "password123", out.User.PasswordHash)
	assert.Equal(t, 15*time.Minute, out.ExpiresIn)

	claims, err := f.tokens.ValidateAccessToken(ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterUserInput
		want  error
	}{
		{name: "bad email", input: RegisterUserInput{Email: "nope", Name: "A", Password: "password123"}, want: domainerror.ErrInvalidEmail},
		{name: "empty name", input: RegisterUserInput{Email: "a@example.com", Name: "  ", Password: "password123"}, want: domainerror.ErrInvalidName},
		{name: "short password", input: RegisterUserInput{Email: "a@example.com", Name: "A", Password: "short"}, want: domainerror.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.register.Execute(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserInput{Email: "dup@example.com", Name: "A", Password: "password123"})
	require.NoError(t, err)

	_, err = f.register.Execute(ctx, RegisterUserInput{Email: "DUP@example.com", Name: "B", Password: "password123"})
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeEmailExists, authErr.Code)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserInput{Email: "login@example.com", Name: "A", Password: "password123"})
	require.NoError(t, err)

	out, err := f.login.Execute(ctx, LoginUserInput{Email: "LOGIN@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.RefreshToken)

	_, err = f.login.Execute(ctx, LoginUserInput{Email: "login@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)

	_, err = f.login.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.register.Execute(ctx, RegisterUserInput{Email: "rot@example.com", Name: "A", Password: "password123"})
	require.NoError(t, err)

	rotated, err := f.refresh.Execute(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	_, err = f.refresh.Execute(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken, "a rotated token is revoked")

	_, err = f.refresh.Execute(ctx, session.AccessToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken, "an access token is not a refresh token")
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.register.Execute(ctx, RegisterUserInput{Email: "out@example.com", Name: "A", Password: "password123"})
	require.NoError(t, err)

	f.logout.Execute(ctx, session.RefreshToken)
	f.logout.Execute(ctx, session.RefreshToken)

	_, err = f.refresh.Execute(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}
