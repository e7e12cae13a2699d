// Package entity contains the core business objects of the project.
package entity

// Role represents the permission level of a user account.
type Role string

const (
	// RoleUser indicates a regular user account.
	RoleUser Role = "user"
	// RoleRider indicates a user elevated through rider approval.
	RoleRider Role = "rider"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleRider, RoleAdmin:
		return true
	default:
		return false
	}
}
