// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bhwconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResidentNotFound is a domain-specific error returned when a resident is not found.
var ErrResidentNotFound = errors.New("resident not found")

// ResidentRepository defines the standard operations for resident persistence.
type ResidentRepository interface {
	// FindByID retrieves a single resident by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error)

	// FindByArea retrieves all residents bound to the given area, in
	// insertion order.
	FindByArea(ctx context.Context, areaID uuid.UUID) ([]*entity.Resident, error)

	// Create persists a new resident entity to the storage.
	Create(ctx context.Context, resident *entity.Resident) error

	// Update persists the full state of an existing resident entity.
	// Partial-merge decisions happen in the application layer; by the time
	// the entity reaches here it is complete.
	Update(ctx context.Context, resident *entity.Resident) error

	// Delete removes a resident by ID. Returns ErrResidentNotFound when no
	// row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
