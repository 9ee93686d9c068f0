// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account: either an administrator or a barangay health
// worker (BHW). Users are the only principals that can authenticate.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // Login identifier, stored lowercase so uniqueness is case-insensitive.
	PasswordHash string    // Bcrypt hash of the password. Never exposed outside the credential store.
	Role         Role      // Fixed at creation, one of "admin" or "bhw".
	Barangay     string    // The barangay (org unit) this user works under.
	IsActive     bool      // Defaults to true; accounts are deactivated, never hard-deleted.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
