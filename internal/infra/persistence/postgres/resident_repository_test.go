package postgres

import (
	"testing"
	"time"

	"bhwconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResidentDomain_KeepsStoredCreatedAt(t *testing.T) {
	createdAt := time.Date(2023, 2, 1, 8, 30, 0, 0, time.UTC)
	resident := &entity.Resident{
		ID:              uuid.New(),
		FirstName:       "Pedro",
		LastName:        "Reyes",
		Gender:          entity.GenderMale,
		Birthdate:       time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
		AreaID:          uuid.New(),
		FamilyPosition:  1,
		Occupation:      "farmer",
		CivilStatus:     "married",
		GarbageDisposal: entity.GarbageSegregated,
		WaterSource:     entity.WaterDeepWell,
		TypeOfToilet:    entity.ToiletSanitary,
		CreatedAt:       createdAt,
	}

	residentM := fromResidentDomain(resident)

	require.NotNil(t, residentM)
	// Save selects all columns, so a zero CreatedAt here would overwrite the
	// stored creation time on every update.
	assert.Equal(t, createdAt, residentM.CreatedAt)
	assert.Equal(t, resident.ID, residentM.ID)
	assert.Equal(t, resident.AreaID, residentM.AreaID)
}

func TestResidentMappers_RoundTrip(t *testing.T) {
	resident := &entity.Resident{
		ID:              uuid.New(),
		FirstName:       "Maria",
		MiddleName:      "Lopez",
		LastName:        "Santos",
		Gender:          entity.GenderFemale,
		Birthdate:       time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC),
		AreaID:          uuid.New(),
		FamilyPosition:  0,
		Occupation:      "vendor",
		CivilStatus:     "single",
		Student:         entity.StudentALS,
		GarbageDisposal: entity.GarbageNotSegregated,
		WaterSource:     entity.WaterLCWD,
		TypeOfToilet:    entity.ToiletUnsanitary,
		HPN:             func(b bool) *bool { return &b }(false),
		CreatedAt:       time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC),
	}

	got := toResidentDomain(fromResidentDomain(resident))

	require.NotNil(t, got)
	assert.Equal(t, resident.ID, got.ID)
	assert.Equal(t, resident.Student, got.Student)
	assert.Equal(t, resident.FamilyPosition, got.FamilyPosition)
	require.NotNil(t, got.HPN)
	assert.False(t, *got.HPN)
	assert.Nil(t, got.TB)
	assert.Equal(t, resident.CreatedAt, got.CreatedAt)
}
