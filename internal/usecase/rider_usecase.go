package usecase

import (
	"context"

	"zapshift/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ApplyRiderInput defines the data required to submit a rider application.
type ApplyRiderInput struct {
	Name   string
	Email  string
	Phone  string
	Region string
}

// SetRiderStatusInput defines the data required to decide a rider application.
type SetRiderStatusInput struct {
	RiderID uuid.UUID
	Status  string
}

// --- Output DTOs ---

// SetRiderStatusOutput reports the decision outcome. UserElevated is true
// only when an approval actually changed a user account's role; a missing
// user account leaves it false without failing the decision.
type SetRiderStatusOutput struct {
	Rider        *entity.Rider
	UserElevated bool
}

// RiderUsecase defines the interface for rider onboarding operations.
type RiderUsecase interface {
	ApplyRider(ctx context.Context, input *ApplyRiderInput) (*entity.Rider, error)
	ListRiders(ctx context.Context, status string) ([]*entity.Rider, error)
	SetRiderStatus(ctx context.Context, input *SetRiderStatusInput) (*SetRiderStatusOutput, error)
	DeleteRider(ctx context.Context, id uuid.UUID) error
}
