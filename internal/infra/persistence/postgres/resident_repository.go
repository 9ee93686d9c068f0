// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bhwconnect/internal/domain/entity"
	domainerrors "bhwconnect/internal/domain/errors"
	"bhwconnect/internal/domain/repository"
	"bhwconnect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// residentRepository implements the repository.ResidentRepository interface using GORM.
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository is the constructor for residentRepository.
func NewResidentRepository(db *gorm.DB) repository.ResidentRepository {
	return &residentRepository{db: db}
}

// FindByID retrieves a single resident by their unique ID.
func (repo *residentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	var residentM model.ResidentModel
	if err := repo.db.WithContext(ctx).First(&residentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by id")
	}

	return toResidentDomain(&residentM), nil
}

// FindByArea retrieves all residents bound to the given area, in insertion order.
func (repo *residentRepository) FindByArea(ctx context.Context, areaID uuid.UUID) ([]*entity.Resident, error) {
	var residentMs []model.ResidentModel
	if err := repo.db.WithContext(ctx).Where("area_id = ?", areaID).Order("created_at").Find(&residentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find residents by area")
	}

	residents := make([]*entity.Resident, 0, len(residentMs))
	for i := range residentMs {
		residents = append(residents, toResidentDomain(&residentMs[i]))
	}

	return residents, nil
}

// Create persists a new resident entity to the database.
func (repo *residentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	residentM := fromResidentDomain(resident)

	if err := repo.db.WithContext(ctx).Create(residentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("area does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingField.WrapMessage("missing required resident information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resident")
	}

	resident.ID = residentM.ID
	resident.CreatedAt = residentM.CreatedAt
	resident.UpdatedAt = residentM.UpdatedAt

	return nil
}

// Update persists the full state of an existing resident entity.
func (repo *residentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	residentM := fromResidentDomain(resident)

	// Save writes every column, including zero values; the application layer
	// has already merged the patch into the full entity.
	if err := repo.db.WithContext(ctx).Save(residentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("area does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update resident")
	}

	resident.UpdatedAt = residentM.UpdatedAt

	return nil
}

// Delete removes a resident by ID.
func (repo *residentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ResidentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete resident")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResidentDomain converts a GORM ResidentModel to a domain Resident entity.
func toResidentDomain(data *model.ResidentModel) *entity.Resident {
	if data == nil {
		return nil
	}

	return &entity.Resident{
		ID:              data.ID,
		FirstName:       data.FirstName,
		MiddleName:      data.MiddleName,
		LastName:        data.LastName,
		Suffix:          data.Suffix,
		Gender:          entity.Gender(data.Gender),
		Birthdate:       data.Birthdate,
		AreaID:          data.AreaID,
		FamilyPosition:  data.FamilyPosition,
		Occupation:      data.Occupation,
		CivilStatus:     data.CivilStatus,
		Student:         entity.StudentStatus(data.Student),
		GarbageDisposal: entity.GarbageDisposal(data.GarbageDisposal),
		WaterSource:     entity.WaterSource(data.WaterSource),
		TypeOfToilet:    entity.ToiletType(data.TypeOfToilet),
		LMP:             data.LMP,
		EDC:             data.EDC,
		GP:              data.GP,
		TB:              data.TB,
		HPN:             data.HPN,
		DM:              data.DM,
		HeartDisease:    data.HeartDisease,
		Disability:      data.Disability,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromResidentDomain converts a domain Resident entity to a GORM ResidentModel for persistence.
func fromResidentDomain(data *entity.Resident) *model.ResidentModel {
	if data == nil {
		return nil
	}

	return &model.ResidentModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		MiddleName:      data.MiddleName,
		LastName:        data.LastName,
		Suffix:          data.Suffix,
		Gender:          string(data.Gender),
		Birthdate:       data.Birthdate,
		AreaID:          data.AreaID,
		FamilyPosition:  data.FamilyPosition,
		Occupation:      data.Occupation,
		CivilStatus:     data.CivilStatus,
		Student:         string(data.Student),
		GarbageDisposal: string(data.GarbageDisposal),
		WaterSource:     string(data.WaterSource),
		TypeOfToilet:    string(data.TypeOfToilet),
		LMP:             data.LMP,
		EDC:             data.EDC,
		GP:              data.GP,
		TB:              data.TB,
		HPN:             data.HPN,
		DM:              data.DM,
		HeartDisease:    data.HeartDisease,
		Disability:      data.Disability,
		// Save writes every column, so the stored creation time must ride
		// along or the update would zero it.
		CreatedAt: data.CreatedAt,
	}
}
