package repository

import (
	"context"
	"errors"

	"zapshift/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves all users ordered by creation time descending.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role of the user matching the given email.
	// Returns ErrUserNotFound when no user matches; role elevation
	// treats that as a reportable no-op, not a failure.
	UpdateRole(ctx context.Context, email string, role entity.Role) error
}
