// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"zapshift/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCheckoutSessionInput defines the data required to open a hosted
// checkout session for a parcel.
type CreateCheckoutSessionInput struct {
	ParcelID string
}

// ConfirmPaymentInput defines the data required to reconcile a checkout
// session into a recorded payment.
type ConfirmPaymentInput struct {
	SessionID string
}

// ListPaymentsInput defines the filters for listing payments. The
// RequesterEmail comes from the verified identity, never from the client.
type ListPaymentsInput struct {
	Email          string
	RequesterEmail string
}

// --- Output DTOs ---

// CheckoutSessionOutput returns the gateway session reference and the
// hosted payment page URL.
type CheckoutSessionOutput struct {
	SessionID string
	URL       string
}

// ConfirmPaymentOutput reports the reconciliation outcome. When the
// session is not paid, Paid is false and the other fields are zero.
// AlreadyReconciled is true when this confirmation (or a concurrent one)
// had already recorded the payment; the caller cannot tell which request
// did the write, and does not need to.
type ConfirmPaymentOutput struct {
	Paid              bool
	AlreadyReconciled bool
	TrackingID        string
	Payment           *entity.Payment
}

// PaymentUsecase defines the interface for payment-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type PaymentUsecase interface {
	CreateCheckoutSession(ctx context.Context, input *CreateCheckoutSessionInput) (*CheckoutSessionOutput, error)
	ConfirmPayment(ctx context.Context, input *ConfirmPaymentInput) (*ConfirmPaymentOutput, error)
	ListPayments(ctx context.Context, input *ListPaymentsInput) ([]*entity.Payment, error)
}
