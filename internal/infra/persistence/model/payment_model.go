package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. The unique index on
// TransactionID is the linearization point for concurrent confirmations
// of the same checkout session.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(10);not null"`
	CustomerEmail string    `gorm:"type:varchar(255);not null;index"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null"`
	ParcelName    string    `gorm:"type:varchar(255);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PaymentStatus string    `gorm:"type:varchar(20);not null"`
	TrackingID    string    `gorm:"type:varchar(32);not null"`
	PaidAt        time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
