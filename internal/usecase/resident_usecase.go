// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"bhwconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateResidentInput defines the data required to record a new resident.
// FamilyPosition is a pointer so that position 0 is distinguishable from an
// omitted field.
type CreateResidentInput struct {
	FirstName       string  `json:"firstName"`
	MiddleName      string  `json:"middleName"`
	LastName        string  `json:"lastName"`
	Suffix          string  `json:"suffix"`
	Gender          string  `json:"gender"`
	Birthdate       string  `json:"birthdate"`
	AreaID          string  `json:"areaId"`
	FamilyPosition  *int    `json:"familyPosition"`
	Occupation      string  `json:"occupation"`
	CivilStatus     string  `json:"civilStatus"`
	Student         string  `json:"student"`
	GarbageDisposal string  `json:"garbageDisposal"`
	WaterSource     string  `json:"waterSource"`
	TypeOfToilet    string  `json:"typeOfToilet"`

	LMP          *bool `json:"LMP"`
	EDC          *bool `json:"EDC"`
	GP           *bool `json:"GP"`
	TB           *bool `json:"TB"`
	HPN          *bool `json:"HPN"`
	DM           *bool `json:"DM"`
	HeartDisease *bool `json:"heartDisease"`
	Disability   *bool `json:"disability"`
}

// UpdateResidentInput is a presence-aware patch. Every field is a pointer:
// nil (absent or JSON null) retains the stored value, non-nil overwrites.
// This makes explicit false and 0 assignable, which a falsy-coalescing merge
// could not express.
type UpdateResidentInput struct {
	FirstName       *string `json:"firstName"`
	MiddleName      *string `json:"middleName"`
	LastName        *string `json:"lastName"`
	Suffix          *string `json:"suffix"`
	Gender          *string `json:"gender"`
	Birthdate       *string `json:"birthdate"`
	AreaID          *string `json:"areaId"`
	FamilyPosition  *int    `json:"familyPosition"`
	Occupation      *string `json:"occupation"`
	CivilStatus     *string `json:"civilStatus"`
	Student         *string `json:"student"`
	GarbageDisposal *string `json:"garbageDisposal"`
	WaterSource     *string `json:"waterSource"`
	TypeOfToilet    *string `json:"typeOfToilet"`

	LMP          *bool `json:"LMP"`
	EDC          *bool `json:"EDC"`
	GP           *bool `json:"GP"`
	TB           *bool `json:"TB"`
	HPN          *bool `json:"HPN"`
	DM           *bool `json:"DM"`
	HeartDisease *bool `json:"heartDisease"`
	Disability   *bool `json:"disability"`
}

// ResidentOutput is the wire representation of a resident record.
type ResidentOutput struct {
	ID              uuid.UUID              `json:"id"`
	FirstName       string                 `json:"firstName"`
	MiddleName      string                 `json:"middleName,omitempty"`
	LastName        string                 `json:"lastName"`
	Suffix          string                 `json:"suffix,omitempty"`
	Gender          entity.Gender          `json:"gender"`
	Birthdate       time.Time              `json:"birthdate"`
	AreaID          uuid.UUID              `json:"areaId"`
	FamilyPosition  int                    `json:"familyPosition"`
	Occupation      string                 `json:"occupation"`
	CivilStatus     string                 `json:"civilStatus"`
	Student         entity.StudentStatus   `json:"student,omitempty"`
	GarbageDisposal entity.GarbageDisposal `json:"garbageDisposal"`
	WaterSource     entity.WaterSource     `json:"waterSource"`
	TypeOfToilet    entity.ToiletType      `json:"typeOfToilet"`

	LMP          *bool `json:"LMP"`
	EDC          *bool `json:"EDC"`
	GP           *bool `json:"GP"`
	TB           *bool `json:"TB"`
	HPN          *bool `json:"HPN"`
	DM           *bool `json:"DM"`
	HeartDisease *bool `json:"heartDisease"`
	Disability   *bool `json:"disability"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AreaResidentsOutput bundles an area with its residents for the
// residents-by-area listing.
type AreaResidentsOutput struct {
	Area      *AreaOutput       `json:"area"`
	Residents []*ResidentOutput `json:"residents"`
}

// ResidentUsecase defines the interface for resident-related business operations.
type ResidentUsecase interface {
	// CreateResident validates required fields, enum values and the area
	// reference, then persists the record.
	CreateResident(ctx context.Context, input *CreateResidentInput) (*ResidentOutput, error)

	// UpdateResident applies a presence-aware partial update to an existing
	// resident.
	UpdateResident(ctx context.Context, id string, input *UpdateResidentInput) (*ResidentOutput, error)

	// DeleteResident removes a resident. A malformed id and a missing record
	// fail differently (400 vs 404).
	DeleteResident(ctx context.Context, id string) error

	// ListByArea returns an area together with all of its residents.
	ListByArea(ctx context.Context, areaID string) (*AreaResidentsOutput, error)
}

// NewResidentOutput maps a domain resident to its wire representation.
func NewResidentOutput(resident *entity.Resident) *ResidentOutput {
	if resident == nil {
		return nil
	}

	return &ResidentOutput{
		ID:              resident.ID,
		FirstName:       resident.FirstName,
		MiddleName:      resident.MiddleName,
		LastName:        resident.LastName,
		Suffix:          resident.Suffix,
		Gender:          resident.Gender,
		Birthdate:       resident.Birthdate,
		AreaID:          resident.AreaID,
		FamilyPosition:  resident.FamilyPosition,
		Occupation:      resident.Occupation,
		CivilStatus:     resident.CivilStatus,
		Student:         resident.Student,
		GarbageDisposal: resident.GarbageDisposal,
		WaterSource:     resident.WaterSource,
		TypeOfToilet:    resident.TypeOfToilet,
		LMP:             resident.LMP,
		EDC:             resident.EDC,
		GP:              resident.GP,
		TB:              resident.TB,
		HPN:             resident.HPN,
		DM:              resident.DM,
		HeartDisease:    resident.HeartDisease,
		Disability:      resident.Disability,
		CreatedAt:       resident.CreatedAt,
		UpdatedAt:       resident.UpdatedAt,
	}
}
