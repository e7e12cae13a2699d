package usecase

import (
	"context"

	"zapshift/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// Registration is idempotent on email: re-registering an existing
// account returns the stored user unchanged.
type RegisterUserInput struct {
	Name  string
	Email string
}

// --- Output DTOs ---

// RegisterOutput returns the account and whether this call created it.
type RegisterOutput struct {
	User    *entity.User
	Created bool
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
