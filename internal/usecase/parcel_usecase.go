package usecase

import (
	"context"

	"zapshift/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateParcelInput defines the data required to submit a new parcel.
type CreateParcelInput struct {
	Name        string
	SenderEmail string
	Cost        int64
}

// ParcelUsecase defines the interface for parcel-related business operations.
type ParcelUsecase interface {
	CreateParcel(ctx context.Context, input *CreateParcelInput) (*entity.Parcel, error)
	GetParcel(ctx context.Context, id uuid.UUID) (*entity.Parcel, error)
	ListParcels(ctx context.Context, senderEmail string) ([]*entity.Parcel, error)
	DeleteParcel(ctx context.Context, id uuid.UUID) error
}
