// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"bhwconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAreaInput defines the data required to create a new area. BhwID is
// an optional reference to a user with role "bhw".
type CreateAreaInput struct {
	Name     string  `json:"name"`
	Barangay string  `json:"barangay"`
	BhwID    *string `json:"bhwId"`
}

// AreaOutput is the wire representation of an area. BhwID is null while the
// area is unassigned.
type AreaOutput struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Barangay  string     `json:"barangay"`
	BhwID     *uuid.UUID `json:"bhwId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AreaUsecase defines the interface for area-related business operations.
type AreaUsecase interface {
	// CreateArea validates and persists a new area. Check order: missing
	// fields, then the BHW reference, then name uniqueness.
	CreateArea(ctx context.Context, input *CreateAreaInput) (*AreaOutput, error)

	// AreasByBhw returns the areas assigned to the given BHW. The raw id is
	// validated before querying so a malformed id is distinguishable from a
	// missing user.
	AreasByBhw(ctx context.Context, bhwID string) ([]*AreaOutput, error)
}

// NewAreaOutput maps a domain area to its wire representation.
func NewAreaOutput(area *entity.Area) *AreaOutput {
	if area == nil {
		return nil
	}

	return &AreaOutput{
		ID:        area.ID,
		Name:      area.Name,
		Barangay:  area.Barangay,
		BhwID:     area.BhwID,
		CreatedAt: area.CreatedAt,
		UpdatedAt: area.UpdatedAt,
	}
}
