package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiderStatus represents the onboarding state of a rider application.
type RiderStatus string

const (
	// RiderStatusPending is the initial state of every application.
	RiderStatusPending RiderStatus = "pending"
	// RiderStatusApproved marks an accepted application; approval
	// elevates the matching user account to the rider role.
	RiderStatusApproved RiderStatus = "approved"
	// RiderStatusRejected marks a declined application.
	RiderStatusRejected RiderStatus = "rejected"
)

// String returns the string representation of the RiderStatus.
func (s RiderStatus) String() string {
	return string(s)
}

// IsValid checks if the RiderStatus is a valid value.
func (s RiderStatus) IsValid() bool {
	switch s {
	case RiderStatusPending, RiderStatusApproved, RiderStatusRejected:
		return true
	default:
		return false
	}
}

// Rider is a courier onboarding application. Status transitions are
// not guarded beyond enum validation: an application may be re-decided
// by an admin, and re-approval is harmless because role elevation is
// a set, not an increment.
type Rider struct {
	ID        uuid.UUID
	Name      string
	Email     string // Email of the user account to elevate on approval.
	Phone     string
	Region    string
	Status    RiderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
