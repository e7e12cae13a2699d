package repository

import (
	"context"
	"errors"

	"zapshift/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRiderNotFound is a domain-specific error returned when a rider application is not found.
var ErrRiderNotFound = errors.New("rider not found")

// RiderRepository defines the standard operations for rider application persistence.
type RiderRepository interface {
	// FindByID retrieves a single rider application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rider, error)

	// FindAll retrieves rider applications, optionally filtered by status,
	// ordered by creation time descending.
	FindAll(ctx context.Context, status entity.RiderStatus) ([]*entity.Rider, error)

	// Create persists a new rider application.
	Create(ctx context.Context, rider *entity.Rider) error

	// UpdateStatus sets the application's status. Returns ErrRiderNotFound
	// when no rider matches.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RiderStatus) error

	// Delete removes a rider application. Returns ErrRiderNotFound when no
	// rider matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
