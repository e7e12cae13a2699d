package impl

import (
	"context"
	"log/slog"

	deliverycontext "zapshift/internal/delivery/context"
	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	"zapshift/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// parcelService implements the ParcelUsecase interface.
type parcelService struct {
	parcelRepo repository.ParcelRepository
	logger     *slog.Logger
}

// ParcelServiceParams holds dependencies for ParcelService, injected by Fx.
type ParcelServiceParams struct {
	fx.In

	ParcelRepo repository.ParcelRepository
	Logger     *slog.Logger
}

// NewParcelService is the constructor for parcelService. It receives all dependencies as interfaces.
func NewParcelService(params ParcelServiceParams) usecase.ParcelUsecase {
	return &parcelService{
		parcelRepo: params.ParcelRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *parcelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateParcel submits a new parcel. Parcels always enter the system
// unpaid and without a tracking ID.
func (srv *parcelService) CreateParcel(ctx context.Context, input *usecase.CreateParcelInput) (*entity.Parcel, error) {
	if input.Cost <= 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("parcel cost must be positive")
	}

	parcel := &entity.Parcel{
		Name:          input.Name,
		SenderEmail:   input.SenderEmail,
		Cost:          input.Cost,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	if err := srv.parcelRepo.Create(ctx, parcel); err != nil {
		srv.log(ctx).Error("Failed to create parcel", slog.String("senderEmail", input.SenderEmail), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create parcel")
	}

	srv.log(ctx).Info("Parcel created", slog.Any("parcelID", parcel.ID), slog.String("senderEmail", parcel.SenderEmail))

	return parcel, nil
}

// GetParcel retrieves a single parcel.
func (srv *parcelService) GetParcel(ctx context.Context, id uuid.UUID) (*entity.Parcel, error) {
	parcel, err := srv.parcelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrParcelNotFound, "lookup references unknown parcel")
		}

		return nil, errors.Wrap(err, "failed to find parcel")
	}

	return parcel, nil
}

// ListParcels returns parcels, optionally filtered by sender email.
func (srv *parcelService) ListParcels(ctx context.Context, senderEmail string) ([]*entity.Parcel, error) {
	parcels, err := srv.parcelRepo.FindAll(ctx, senderEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parcels")
	}

	return parcels, nil
}

// DeleteParcel removes a parcel.
func (srv *parcelService) DeleteParcel(ctx context.Context, id uuid.UUID) error {
	if err := srv.parcelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return errors.Wrap(domainerrors.ErrParcelNotFound, "deletion references unknown parcel")
		}

		return errors.Wrap(err, "failed to delete parcel")
	}

	srv.log(ctx).Info("Parcel deleted", slog.Any("parcelID", id))

	return nil
}
