package model

import (
	"time"

	"github.com/google/uuid"
)

// RiderModel mirrors the 'riders' table.
type RiderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Phone     string    `gorm:"type:varchar(30)"`
	Region    string    `gorm:"type:varchar(100)"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RiderModel) TableName() string {
	return "riders"
}
