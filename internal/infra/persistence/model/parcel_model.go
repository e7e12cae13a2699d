package model

import (
	"time"

	"github.com/google/uuid"
)

// ParcelModel mirrors the 'parcels' table. Cost is stored in major
// currency units; TrackingID stays empty until the parcel is paid.
type ParcelModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	SenderEmail   string    `gorm:"type:varchar(255);not null;index"`
	Cost          int64     `gorm:"not null"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'unpaid'"`
	TrackingID    string    `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ParcelModel) TableName() string {
	return "parcels"
}
