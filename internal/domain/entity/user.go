// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a unique account in the system, keyed by email.
// Accounts are created on first signup and their Role is elevated to
// "rider" as a side effect of a rider application being approved.
type User struct {
	ID        uuid.UUID // The unique identifier for the account.
	Email     string    // The account's email, unique across the system.
	Name      string    // Display name supplied at signup.
	Role      Role      // Current permission level; defaults to RoleUser.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
