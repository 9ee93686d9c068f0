// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bhwconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAreaNotFound is a domain-specific error returned when an area is not found.
var ErrAreaNotFound = errors.New("area not found")

// AreaRepository defines the standard operations for area persistence.
type AreaRepository interface {
	// FindByID retrieves a single area by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error)

	// FindByBhw retrieves all areas assigned to the given BHW, in insertion
	// order. An unassigned BHW yields an empty slice, not an error.
	FindByBhw(ctx context.Context, bhwID uuid.UUID) ([]*entity.Area, error)

	// Exists reports whether an area with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByName reports whether an area with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create persists a new area entity to the storage.
	Create(ctx context.Context, area *entity.Area) error
}
