// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Resident is a tracked individual belonging to exactly one Area, with
// demographic and health-status attributes recorded during house visits.
type Resident struct {
	ID              uuid.UUID
	FirstName       string
	MiddleName      string // Optional.
	LastName        string
	Suffix          string // Optional, e.g. "Jr.", "III".
	Gender          Gender
	Birthdate       time.Time
	AreaID          uuid.UUID // Required reference to an existing Area.
	FamilyPosition  int       // Position in the household; 0 is a valid value.
	Occupation      string
	CivilStatus     string
	Student         StudentStatus // Optional educational-status code; empty when not a student record.
	GarbageDisposal GarbageDisposal
	WaterSource     WaterSource
	TypeOfToilet    ToiletType

	// Health flags. A nil pointer means "not recorded", which is distinct
	// from an explicit false.
	LMP          *bool
	EDC          *bool
	GP           *bool
	TB           *bool
	HPN          *bool
	DM           *bool
	HeartDisease *bool
	Disability   *bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Gender is the resident's recorded gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// GarbageDisposal describes how the household disposes of garbage.
type GarbageDisposal string

const (
	GarbageSegregated    GarbageDisposal = "segregated"
	GarbageNotSegregated GarbageDisposal = "not segregated"
)

// IsValid checks if the GarbageDisposal is a valid value.
func (g GarbageDisposal) IsValid() bool {
	return g == GarbageSegregated || g == GarbageNotSegregated
}

// WaterSource describes the household's water source.
type WaterSource string

const (
	WaterDeepWell WaterSource = "deep well"
	WaterLCWD     WaterSource = "LCWD"
)

// IsValid checks if the WaterSource is a valid value.
func (w WaterSource) IsValid() bool {
	return w == WaterDeepWell || w == WaterLCWD
}

// ToiletType describes the household's toilet facility.
type ToiletType string

const (
	ToiletFaucet     ToiletType = "faucet"
	ToiletSanitary   ToiletType = "sanitary"
	ToiletUnsanitary ToiletType = "unsanitary"
)

// IsValid checks if the ToiletType is a valid value.
func (t ToiletType) IsValid() bool {
	switch t {
	case ToiletFaucet, ToiletSanitary, ToiletUnsanitary:
		return true
	default:
		return false
	}
}

// StudentStatus is the closed set of educational-status codes used on
// household survey forms (preschool through postgraduate, ALS, vocational,
// or NA when not applicable).
type StudentStatus string

const (
	StudentPS  StudentStatus = "PS"
	StudentEU  StudentStatus = "EU"
	StudentES  StudentStatus = "ES"
	StudentEG  StudentStatus = "EG"
	StudentHU  StudentStatus = "HU"
	StudentHS  StudentStatus = "HS"
	StudentHG  StudentStatus = "HG"
	StudentSHS StudentStatus = "SHS"
	StudentALS StudentStatus = "ALS"
	StudentCU  StudentStatus = "CU"
	StudentCS  StudentStatus = "CS"
	StudentCG  StudentStatus = "CG"
	StudentPG  StudentStatus = "PG"
	StudentVOC StudentStatus = "VOC"
	StudentNA  StudentStatus = "NA"
)

var studentStatuses = map[StudentStatus]struct{}{
	StudentPS: {}, StudentEU: {}, StudentES: {}, StudentEG: {},
	StudentHU: {}, StudentHS: {}, StudentHG: {}, StudentSHS: {},
	StudentALS: {}, StudentCU: {}, StudentCS: {}, StudentCG: {},
	StudentPG: {}, StudentVOC: {}, StudentNA: {},
}

// IsValid checks if the StudentStatus is a valid value.
func (s StudentStatus) IsValid() bool {
	_, ok := studentStatuses[s]
	return ok
}
