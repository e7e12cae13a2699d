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

// riderService implements the RiderUsecase interface.
type riderService struct {
	txManager repository.TransactionManager
	riderRepo repository.RiderRepository
	logger    *slog.Logger
}

// RiderServiceParams holds dependencies for RiderService, injected by Fx.
type RiderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RiderRepo repository.RiderRepository
	Logger    *slog.Logger
}

// NewRiderService is the constructor for riderService. It receives all dependencies as interfaces.
func NewRiderService(params RiderServiceParams) usecase.RiderUsecase {
	return &riderService{
		txManager: params.TxManager,
		riderRepo: params.RiderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *riderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplyRider submits a new rider application. Applications always start pending.
func (srv *riderService) ApplyRider(ctx context.Context, input *usecase.ApplyRiderInput) (*entity.Rider, error) {
	rider := &entity.Rider{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Region: input.Region,
		Status: entity.RiderStatusPending,
	}

	if err := srv.riderRepo.Create(ctx, rider); err != nil {
		srv.log(ctx).Error("Failed to create rider application", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create rider application")
	}

	srv.log(ctx).Info("Rider application submitted", slog.Any("riderID", rider.ID), slog.String("email", rider.Email))

	return rider, nil
}

// ListRiders returns rider applications, optionally filtered by status.
func (srv *riderService) ListRiders(ctx context.Context, status string) ([]*entity.Rider, error) {
	riderStatus := entity.RiderStatus(status)
	if status != "" && !riderStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown rider status filter")
	}

	riders, err := srv.riderRepo.FindAll(ctx, riderStatus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list riders")
	}

	return riders, nil
}

// SetRiderStatus decides a rider application. Approving an application
// elevates the matching user account to the rider role in the same
// transaction as the status update; a missing account is reported via
// UserElevated=false and logged, never treated as a failure. Re-deciding
// an application is allowed, and re-approval is harmless because the
// elevation is a set, not an increment.
func (srv *riderService) SetRiderStatus(ctx context.Context, input *usecase.SetRiderStatusInput) (*usecase.SetRiderStatusOutput, error) {
	status := entity.RiderStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown rider status")
	}

	var decidedRider *entity.Rider
	userElevated := false

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		riderRepo := repoFactory.RiderRepo()

		rider, err := riderRepo.FindByID(ctx, input.RiderID)
		if err != nil {
			if errors.Is(err, repository.ErrRiderNotFound) {
				return errors.Wrap(domainerrors.ErrRiderNotFound, "decision references unknown rider")
			}

			return errors.Wrap(err, "failed to load rider for decision")
		}

		if err := riderRepo.UpdateStatus(ctx, rider.ID, status); err != nil {
			return errors.Wrap(err, "failed to update rider status")
		}
		rider.Status = status
		decidedRider = rider

		if status != entity.RiderStatusApproved {
			return nil
		}

		elevateErr := repoFactory.UserRepo().UpdateRole(ctx, rider.Email, entity.RoleRider)
		if errors.Is(elevateErr, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Approved rider has no user account to elevate",
				slog.Any("riderID", rider.ID),
				slog.String("email", rider.Email))

			return nil
		}
		if elevateErr != nil {
			return errors.Wrap(elevateErr, "failed to elevate user role on rider approval")
		}
		userElevated = true

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute rider decision transaction",
			slog.Any("riderID", input.RiderID),
			slog.String("status", input.Status),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Rider application decided",
		slog.Any("riderID", decidedRider.ID),
		slog.String("status", status.String()),
		slog.Bool("userElevated", userElevated))

	return &usecase.SetRiderStatusOutput{
		Rider:        decidedRider,
		UserElevated: userElevated,
	}, nil
}

// DeleteRider removes a rider application.
func (srv *riderService) DeleteRider(ctx context.Context, id uuid.UUID) error {
	if err := srv.riderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			return errors.Wrap(domainerrors.ErrRiderNotFound, "deletion references unknown rider")
		}

		return errors.Wrap(err, "failed to delete rider")
	}

	srv.log(ctx).Info("Rider application deleted", slog.Any("riderID", id))

	return nil
}
