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

// areaRepository implements the repository.AreaRepository interface using GORM.
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository is the constructor for areaRepository.
func NewAreaRepository(db *gorm.DB) repository.AreaRepository {
	return &areaRepository{db: db}
}

// FindByID retrieves a single area by its unique ID.
func (repo *areaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	var areaM model.AreaModel
	if err := repo.db.WithContext(ctx).First(&areaM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to find area by id")
	}

	return toAreaDomain(&areaM), nil
}

// FindByBhw retrieves all areas assigned to the given BHW, in insertion order.
func (repo *areaRepository) FindByBhw(ctx context.Context, bhwID uuid.UUID) ([]*entity.Area, error) {
	var areaMs []model.AreaModel
	if err := repo.db.WithContext(ctx).Where("bhw_id = ?", bhwID).Order("created_at").Find(&areaMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find areas by bhw")
	}

	areas := make([]*entity.Area, 0, len(areaMs))
	for i := range areaMs {
		areas = append(areas, toAreaDomain(&areaMs[i]))
	}

	return areas, nil
}

// Exists reports whether an area with the given ID exists.
func (repo *areaRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AreaModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check area existence")
	}

	return count > 0, nil
}

// ExistsByName reports whether an area with the given name exists.
func (repo *areaRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AreaModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check area name existence")
	}

	return count > 0, nil
}

// Create persists a new area entity to the database.
func (repo *areaRepository) Create(ctx context.Context, area *entity.Area) error {
	areaM := fromAreaDomain(area)

	if err := repo.db.WithContext(ctx).Create(areaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateAreaName.WrapMessage("area name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("assigned bhw does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingField.WrapMessage("missing required area information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create area")
	}

	area.ID = areaM.ID
	area.CreatedAt = areaM.CreatedAt
	area.UpdatedAt = areaM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAreaDomain converts a GORM AreaModel to a domain Area entity.
func toAreaDomain(data *model.AreaModel) *entity.Area {
	if data == nil {
		return nil
	}

	return &entity.Area{
		ID:        data.ID,
		Name:      data.Name,
		Barangay:  data.Barangay,
		BhwID:     data.BhwID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromAreaDomain converts a domain Area entity to a GORM AreaModel for persistence.
func fromAreaDomain(data *entity.Area) *model.AreaModel {
	if data == nil {
		return nil
	}

	return &model.AreaModel{
		ID:       data.ID,
		Name:     data.Name,
		Barangay: data.Barangay,
		BhwID:    data.BhwID,
	}
}
