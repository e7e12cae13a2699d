package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the settlement state of a parcel.
type PaymentStatus string

const (
	// PaymentStatusUnpaid indicates the parcel has not been paid for yet.
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	// PaymentStatusPaid indicates a confirmed gateway payment.
	PaymentStatusPaid PaymentStatus = "paid"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// Parcel is a shipment submitted by a sender. A parcel is created
// unpaid; once the payment gateway confirms settlement the parcel is
// marked paid and receives its tracking ID. The tracking ID is set
// iff the parcel is paid, and never changes afterwards.
type Parcel struct {
	ID            uuid.UUID
	Name          string // Short description shown at checkout.
	SenderEmail   string
	Cost          int64 // Shipping cost in major currency units.
	PaymentStatus PaymentStatus
	TrackingID    string // Empty until payment is confirmed.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
