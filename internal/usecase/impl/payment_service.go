// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "zapshift/internal/delivery/context"
	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	"zapshift/internal/domain/service"
	"zapshift/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	parcelRepo  repository.ParcelRepository
	paymentRepo repository.PaymentRepository
	gateway     service.CheckoutGateway
	trackingGen service.TrackingIDGenerator
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ParcelRepo  repository.ParcelRepository
	PaymentRepo repository.PaymentRepository
	Gateway     service.CheckoutGateway
	TrackingGen service.TrackingIDGenerator
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService. It receives all dependencies as interfaces.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		parcelRepo:  params.ParcelRepo,
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		trackingGen: params.TrackingGen,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckoutSession opens a hosted checkout session for an unpaid parcel.
func (srv *paymentService) CreateCheckoutSession(ctx context.Context, input *usecase.CreateCheckoutSessionInput) (*usecase.CheckoutSessionOutput, error) {
	parcelID, err := uuid.Parse(input.ParcelID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("invalid parcel id")
	}

	parcel, err := srv.parcelRepo.FindByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrParcelNotFound, "checkout session requested for unknown parcel")
		}

		return nil, errors.Wrap(err, "failed to load parcel for checkout")
	}

	if parcel.PaymentStatus == entity.PaymentStatusPaid {
		return nil, errors.Wrap(domainerrors.ErrConflict, "parcel is already paid")
	}

	session, err := srv.gateway.CreateSession(ctx, service.CheckoutSessionInput{
		ParcelID:    parcel.ID.String(),
		ParcelName:  parcel.Name,
		Cost:        parcel.Cost,
		SenderEmail: parcel.SenderEmail,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.Any("parcelID", parcel.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "failed to create checkout session")
	}

	srv.log(ctx).Info("Checkout session created", slog.Any("parcelID", parcel.ID), slog.String("sessionID", session.ID))

	return &usecase.CheckoutSessionOutput{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// ConfirmPayment reconciles a checkout session into a recorded payment.
// The operation is idempotent: confirming the same session any number of
// times, sequentially or concurrently, yields exactly one payment record
// and one parcel update. The idempotency guard is a lookup on the
// gateway transaction id; the unique index on that column settles races
// the guard cannot see.
func (srv *paymentService) ConfirmPayment(ctx context.Context, input *usecase.ConfirmPaymentInput) (*usecase.ConfirmPaymentOutput, error) {
	details, err := srv.gateway.RetrieveSession(ctx, input.SessionID)
	if err != nil {
		srv.log(ctx).Error("Failed to retrieve checkout session", slog.String("sessionID", input.SessionID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "failed to retrieve checkout session")
	}

	// An unpaid session must not leave any trace in the store.
	if !details.Paid() {
		srv.log(ctx).Info("Checkout session not paid, nothing to reconcile",
			slog.String("sessionID", input.SessionID),
			slog.String("paymentStatus", details.PaymentStatus))

		return &usecase.ConfirmPaymentOutput{Paid: false}, nil
	}

	// Idempotency guard: a payment already recorded for this transaction
	// means a previous confirmation won, and we just report its outcome.
	existing, err := srv.paymentRepo.FindByTransactionID(ctx, details.TransactionID)
	if err == nil {
		srv.log(ctx).Info("Payment already reconciled",
			slog.String("transactionID", details.TransactionID),
			slog.String("trackingID", existing.TrackingID))

		return srv.reconciledOutput(existing), nil
	}
	if !errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing payment")
	}

	parcelID, err := uuid.Parse(details.ParcelID)
	if err != nil {
		srv.log(ctx).Error("Checkout session carries malformed parcel metadata",
			slog.String("sessionID", input.SessionID),
			slog.String("parcelID", details.ParcelID))

		return nil, domainerrors.ErrInvalidInput.WrapMessage("session metadata carries an invalid parcel id")
	}

	trackingID := srv.trackingGen.Generate()
	payment := srv.buildPayment(details, parcelID, trackingID)

	// Parcel update and payment insert commit or roll back together, so
	// a missing parcel leaves no orphan payment row.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ParcelRepo().MarkPaid(ctx, parcelID, trackingID); err != nil {
			if errors.Is(err, repository.ErrParcelNotFound) {
				return errors.Wrap(domainerrors.ErrParcelNotFound, "reconciliation references unknown parcel")
			}

			return errors.Wrap(err, "failed to mark parcel paid")
		}

		return repoFactory.PaymentRepo().Create(ctx, payment)
	})

	if errors.Is(err, repository.ErrDuplicateTransaction) {
		// Lost a concurrent race after the guard passed. The winner's
		// record is authoritative; report it as already reconciled.
		winner, findErr := srv.paymentRepo.FindByTransactionID(ctx, details.TransactionID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to load winning payment after duplicate insert")
		}

		srv.log(ctx).Info("Concurrent confirmation already recorded this payment",
			slog.String("transactionID", details.TransactionID),
			slog.String("trackingID", winner.TrackingID))

		return srv.reconciledOutput(winner), nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute payment reconciliation transaction",
			slog.String("transactionID", details.TransactionID),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Payment reconciled",
		slog.String("transactionID", details.TransactionID),
		slog.Any("parcelID", parcelID),
		slog.String("trackingID", trackingID))

	return &usecase.ConfirmPaymentOutput{
		Paid:       true,
		TrackingID: trackingID,
		Payment:    payment,
	}, nil
}

// ListPayments returns payments visible to the requester. A caller may
// only filter by their own verified email; any other filter is refused.
func (srv *paymentService) ListPayments(ctx context.Context, input *usecase.ListPaymentsInput) ([]*entity.Payment, error) {
	if input.Email != "" && input.Email != input.RequesterEmail {
		srv.log(ctx).Warn("Refused payment listing for foreign email",
			slog.String("requested", input.Email),
			slog.String("requester", input.RequesterEmail))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "payments may only be listed for the caller's own email")
	}

	payments, err := srv.paymentRepo.FindAll(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

func (srv *paymentService) reconciledOutput(payment *entity.Payment) *usecase.ConfirmPaymentOutput {
	return &usecase.ConfirmPaymentOutput{
		Paid:              true,
		AlreadyReconciled: true,
		TrackingID:        payment.TrackingID,
		Payment:           payment,
	}
}

func (srv *paymentService) buildPayment(details *service.SessionDetails, parcelID uuid.UUID, trackingID string) *entity.Payment {
	return &entity.Payment{
		// The gateway reports minor units; payments are stored in major units.
		Amount:        details.AmountTotal / 100,
		Currency:      details.Currency,
		CustomerEmail: details.CustomerEmail,
		ParcelID:      parcelID,
		ParcelName:    details.ParcelName,
		TransactionID: details.TransactionID,
		PaymentStatus: details.PaymentStatus,
		TrackingID:    trackingID,
		PaidAt:        time.Now().UTC(),
	}
}
