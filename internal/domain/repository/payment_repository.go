package repository

import (
	"context"
	"errors"

	"zapshift/internal/domain/entity"
)

// ErrPaymentNotFound is a domain-specific error returned when no payment
// matches the given transaction id.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrDuplicateTransaction is returned when an insert collides with the
// unique constraint on the transaction id. It marks the losing side of a
// concurrent reconciliation race and is converted to the cached outcome
// by the caller, never surfaced as a hard failure.
var ErrDuplicateTransaction = errors.New("payment already recorded for transaction")

// PaymentRepository defines the standard operations for payment persistence.
// The transaction id carries a uniqueness constraint in the store; that
// constraint is the linearization point for concurrent confirmations.
type PaymentRepository interface {
	// FindByTransactionID retrieves the payment recorded for the given
	// gateway transaction id, or ErrPaymentNotFound. This lookup is the
	// idempotency guard for payment reconciliation.
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)

	// FindAll retrieves payments, optionally filtered by customer email,
	// ordered by paid time descending.
	FindAll(ctx context.Context, customerEmail string) ([]*entity.Payment, error)

	// Create persists a new payment record. Returns
	// ErrDuplicateTransaction when the transaction id already exists.
	Create(ctx context.Context, payment *entity.Payment) error
}
