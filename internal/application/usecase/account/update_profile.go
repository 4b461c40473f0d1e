package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateProfileInput represents the input for a profile change.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
}

// UpdateProfileUseCase changes the display name.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
	clock    adapter.Clock
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, clock adapter.Clock) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		clock:    clock,
	}
}

// Execute performs the update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	name, err := auth.ValidateName(input.Name)
	if err != nil {
		return nil, err
	}

	user, err := loadUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = uc.clock.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
