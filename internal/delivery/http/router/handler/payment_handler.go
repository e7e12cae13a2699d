package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "zapshift/internal/delivery/context"
	"zapshift/internal/delivery/http/response"
	"zapshift/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCheckoutSessionRequest struct {
	ParcelID string `json:"parcelId" validate:"required"`
}

// CreateCheckoutSession opens a hosted checkout session for an unpaid parcel.
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req createCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout session input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Parcel ID is required")
	}

	output, err := h.uc.CreateCheckoutSession(c.Request().Context(), &usecase.CreateCheckoutSessionInput{
		ParcelID: req.ParcelID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Checkout session created successfully")
}

// ConfirmPayment reconciles a completed checkout session into a payment
// record. The operation is idempotent: confirming the same session again
// returns the already recorded payment.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "session_id is required")
	}

	output, err := h.uc.ConfirmPayment(c.Request().Context(), &usecase.ConfirmPaymentInput{
		SessionID: sessionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Paid {
		return response.Success(c, http.StatusOK, output, "Checkout session is not paid yet")
	}

	if output.AlreadyReconciled {
		return response.Success(c, http.StatusOK, output, "Payment was already recorded")
	}

	return response.Success(c, http.StatusCreated, output, "Payment recorded successfully")
}

// ListPayments lists payments, optionally filtered by customer email.
// Callers may only filter by their own verified email.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.uc.ListPayments(c.Request().Context(), &usecase.ListPaymentsInput{
		Email:          c.QueryParam("email"),
		RequesterEmail: deliverycontext.GetVerifiedEmail(c.Request().Context()),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}
