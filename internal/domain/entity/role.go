// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleBHW indicates a barangay health worker account.
	RoleBHW Role = "bhw"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBHW:
		return true
	default:
		return false
	}
}
