package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a single confirmed gateway transaction. Exactly one
// Payment exists per distinct TransactionID; the record is immutable
// once written. Its TrackingID matches the parcel it settled.
type Payment struct {
	ID            uuid.UUID
	Amount        int64  // Amount in major currency units.
	Currency      string // Lower-case ISO code as reported by the gateway.
	CustomerEmail string
	ParcelID      uuid.UUID
	ParcelName    string
	TransactionID string // The gateway's payment intent reference, unique.
	PaymentStatus string // Gateway-reported status at confirmation time.
	TrackingID    string
	PaidAt        time.Time
}
