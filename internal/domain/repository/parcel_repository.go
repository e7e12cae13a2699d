// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"zapshift/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrParcelNotFound is a domain-specific error returned when a parcel is not found.
var ErrParcelNotFound = errors.New("parcel not found")

// ParcelRepository defines the standard operations for parcel persistence.
type ParcelRepository interface {
	// FindByID retrieves a single parcel by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Parcel, error)

	// FindAll retrieves parcels, optionally filtered by sender email,
	// ordered by creation time descending.
	FindAll(ctx context.Context, senderEmail string) ([]*entity.Parcel, error)

	// Create persists a new parcel entity to the storage.
	Create(ctx context.Context, parcel *entity.Parcel) error

	// MarkPaid sets the parcel's payment status to paid and assigns its
	// tracking ID. Returns ErrParcelNotFound when no parcel matches.
	MarkPaid(ctx context.Context, id uuid.UUID, trackingID string) error

	// Delete removes a parcel. Returns ErrParcelNotFound when no parcel matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
