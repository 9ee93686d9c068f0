package model

import (
	"time"

	"github.com/google/uuid"
)

// ResidentModel mirrors the 'residents' table. Enumerated columns store the
// survey form's literal values; validation happens in the application layer
// before anything reaches this model. Health flags are nullable booleans so
// "not recorded" stays distinct from an explicit false.
type ResidentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	MiddleName      string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100);not null"`
	Suffix          string    `gorm:"type:varchar(20)"`
	Gender          string    `gorm:"type:varchar(10);not null"`
	Birthdate       time.Time `gorm:"type:date;not null"`
	AreaID          uuid.UUID `gorm:"type:uuid;not null;index"`
	FamilyPosition  int       `gorm:"not null"`
	Occupation      string    `gorm:"type:varchar(100);not null"`
	CivilStatus     string    `gorm:"type:varchar(50);not null"`
	Student         string    `gorm:"type:varchar(10)"`
	GarbageDisposal string    `gorm:"type:varchar(20);not null"`
	WaterSource     string    `gorm:"type:varchar(20);not null"`
	TypeOfToilet    string    `gorm:"type:varchar(20);not null"`

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

	Area *AreaModel `gorm:"foreignKey:AreaID"`
}

// TableName explicitly sets the table name for GORM.
func (ResidentModel) TableName() string {
	return "residents"
}
