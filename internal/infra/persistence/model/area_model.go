package model

import (
	"time"

	"github.com/google/uuid"
)

// AreaModel mirrors the 'areas' table. BhwID is a nullable reference to
// users.id; no ON DELETE action is declared because the current surface has
// no user-delete operation.
type AreaModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(100);unique;not null"`
	Barangay  string     `gorm:"type:varchar(100);not null"`
	BhwID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Bhw *UserModel `gorm:"foreignKey:BhwID"`
}

// TableName explicitly sets the table name for GORM.
func (AreaModel) TableName() string {
	return "areas"
}
