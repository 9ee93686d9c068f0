// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Area is an administrative zone under a barangay. At most one BHW is
// assigned to an area; BhwID is nil while the area is unassigned.
//
// The BhwID relation is a lookup reference, not ownership: there is no
// user-delete operation in the current surface, so no cascade or null-out
// is performed on the referenced side.
type Area struct {
	ID        uuid.UUID  // The unique identifier for the area.
	Name      string     // Unique across all areas.
	Barangay  string     // The barangay this area belongs to.
	BhwID     *uuid.UUID // Optional reference to a User with role "bhw".
	CreatedAt time.Time
	UpdatedAt time.Time
}
