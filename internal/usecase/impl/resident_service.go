package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bhwconnect/internal/domain/entity"
	domainerrors "bhwconnect/internal/domain/errors"
	"bhwconnect/internal/domain/repository"
	"bhwconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// residentService implements the ResidentUsecase interface.
type residentService struct {
	fx.In

	txManager    repository.TransactionManager
	areaRepo     repository.AreaRepository
	residentRepo repository.ResidentRepository
	logger       *slog.Logger
}

// NewResidentService is the constructor for residentService.
func NewResidentService(
	txManager repository.TransactionManager,
	areaRepo repository.AreaRepository,
	residentRepo repository.ResidentRepository,
	logger *slog.Logger,
) usecase.ResidentUsecase {
	return &residentService{
		txManager:    txManager,
		areaRepo:     areaRepo,
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// parseBirthdate accepts the two date encodings clients send: a full
// RFC 3339 timestamp or a bare calendar date.
func parseBirthdate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}

// validateEnums checks every closed-set field of a resident entity. The
// student status is optional and skipped while blank.
func validateEnums(resident *entity.Resident) error {
	if !resident.Gender.IsValid() {
		return domainerrors.ErrInvalidEnum.WrapMessage("gender must be 'Male' or 'Female'")
	}
	if !resident.GarbageDisposal.IsValid() {
		return domainerrors.ErrInvalidEnum.WrapMessage("invalid garbage disposal value")
	}
	if !resident.WaterSource.IsValid() {
		return domainerrors.ErrInvalidEnum.WrapMessage("invalid water source value")
	}
	if !resident.TypeOfToilet.IsValid() {
		return domainerrors.ErrInvalidEnum.WrapMessage("invalid toilet type value")
	}
	if resident.Student != "" && !resident.Student.IsValid() {
		return domainerrors.ErrInvalidEnum.WrapMessage("invalid student status value")
	}

	return nil
}

// CreateResident validates required fields, enum values and the area
// reference, then persists the record.
func (srv *residentService) CreateResident(ctx context.Context, input *usecase.CreateResidentInput) (*usecase.ResidentOutput, error) {
	// 1. Required fields. FamilyPosition is presence-checked so position 0
	// remains valid.
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		input.Gender == "" ||
		strings.TrimSpace(input.Birthdate) == "" ||
		strings.TrimSpace(input.AreaID) == "" ||
		input.FamilyPosition == nil ||
		strings.TrimSpace(input.Occupation) == "" ||
		strings.TrimSpace(input.CivilStatus) == "" ||
		input.GarbageDisposal == "" ||
		input.WaterSource == "" ||
		input.TypeOfToilet == "" {
		return nil, domainerrors.ErrMissingField.WrapMessage("required resident fields are missing")
	}

	// 2. The area reference must be well formed before it is resolved
	areaID, err := uuid.Parse(strings.TrimSpace(input.AreaID))
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WrapMessage("invalid area id")
	}

	birthdate, err := parseBirthdate(input.Birthdate)
	if err != nil {
		return nil, domainerrors.ErrInvalidField.WrapMessage("invalid birthdate value")
	}

	resident := &entity.Resident{
		FirstName:       strings.TrimSpace(input.FirstName),
		MiddleName:      strings.TrimSpace(input.MiddleName),
		LastName:        strings.TrimSpace(input.LastName),
		Suffix:          strings.TrimSpace(input.Suffix),
		Gender:          entity.Gender(input.Gender),
		Birthdate:       birthdate,
		AreaID:          areaID,
		FamilyPosition:  *input.FamilyPosition,
		Occupation:      strings.TrimSpace(input.Occupation),
		CivilStatus:     strings.TrimSpace(input.CivilStatus),
		Student:         entity.StudentStatus(input.Student),
		GarbageDisposal: entity.GarbageDisposal(input.GarbageDisposal),
		WaterSource:     entity.WaterSource(input.WaterSource),
		TypeOfToilet:    entity.ToiletType(input.TypeOfToilet),
		LMP:             input.LMP,
		EDC:             input.EDC,
		GP:              input.GP,
		TB:              input.TB,
		HPN:             input.HPN,
		DM:              input.DM,
		HeartDisease:    input.HeartDisease,
		Disability:      input.Disability,
	}

	// 3. Closed-set fields
	if err := validateEnums(resident); err != nil {
		return nil, err
	}

	srv.logger.Info("Creating resident", slog.Any("area_id", areaID))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		areaRepo := repoFactory.AreaRepo()
		residentRepo := repoFactory.ResidentRepo()

		// 4. The area must exist
		exists, err := areaRepo.Exists(ctx, areaID)
		if err != nil {
			return errors.Wrap(err, "failed to check area reference")
		}
		if !exists {
			return domainerrors.ErrInvalidReference.WrapMessage("area not found")
		}

		if err := residentRepo.Create(ctx, resident); err != nil {
			return errors.Wrap(err, "failed to create resident")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Resident creation failed", slog.Any("area_id", areaID), slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("Resident created", slog.Any("resident_id", resident.ID))

	return usecase.NewResidentOutput(resident), nil
}

// UpdateResident applies a presence-aware partial update: a nil pointer in
// the patch keeps the stored value, a non-nil one overwrites it. Explicit
// false and 0 therefore round-trip.
func (srv *residentService) UpdateResident(ctx context.Context, id string, input *usecase.UpdateResidentInput) (*usecase.ResidentOutput, error) {
	residentID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WrapMessage("invalid resident id")
	}

	srv.logger.Info("Updating resident", slog.Any("resident_id", residentID))

	var resident *entity.Resident

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		areaRepo := repoFactory.AreaRepo()
		residentRepo := repoFactory.ResidentRepo()

		// 1. Load the stored record
		stored, err := residentRepo.FindByID(ctx, residentID)
		if err != nil {
			if errors.Is(err, repository.ErrResidentNotFound) {
				return domainerrors.ErrResidentNotFound.WrapMessage("resident not found")
			}

			return errors.Wrap(err, "failed to find resident")
		}

		// 2. A re-assignment must point at a live area
		if input.AreaID != nil {
			areaID, err := uuid.Parse(strings.TrimSpace(*input.AreaID))
			if err != nil {
				return domainerrors.ErrInvalidID.WrapMessage("invalid area id")
			}

			exists, err := areaRepo.Exists(ctx, areaID)
			if err != nil {
				return errors.Wrap(err, "failed to check area reference")
			}
			if !exists {
				return domainerrors.ErrInvalidReference.WrapMessage("area not found")
			}
			stored.AreaID = areaID
		}

		// 3. Merge the patch
		if input.Birthdate != nil {
			birthdate, err := parseBirthdate(*input.Birthdate)
			if err != nil {
				return domainerrors.ErrInvalidField.WrapMessage("invalid birthdate value")
			}
			stored.Birthdate = birthdate
		}
		if input.FirstName != nil {
			stored.FirstName = strings.TrimSpace(*input.FirstName)
		}
		if input.MiddleName != nil {
			stored.MiddleName = strings.TrimSpace(*input.MiddleName)
		}
		if input.LastName != nil {
			stored.LastName = strings.TrimSpace(*input.LastName)
		}
		if input.Suffix != nil {
			stored.Suffix = strings.TrimSpace(*input.Suffix)
		}
		if input.Gender != nil {
			stored.Gender = entity.Gender(*input.Gender)
		}
		if input.FamilyPosition != nil {
			stored.FamilyPosition = *input.FamilyPosition
		}
		if input.Occupation != nil {
			stored.Occupation = strings.TrimSpace(*input.Occupation)
		}
		if input.CivilStatus != nil {
			stored.CivilStatus = strings.TrimSpace(*input.CivilStatus)
		}
		if input.Student != nil {
			stored.Student = entity.StudentStatus(*input.Student)
		}
		if input.GarbageDisposal != nil {
			stored.GarbageDisposal = entity.GarbageDisposal(*input.GarbageDisposal)
		}
		if input.WaterSource != nil {
			stored.WaterSource = entity.WaterSource(*input.WaterSource)
		}
		if input.TypeOfToilet != nil {
			stored.TypeOfToilet = entity.ToiletType(*input.TypeOfToilet)
		}
		if input.LMP != nil {
			stored.LMP = input.LMP
		}
		if input.EDC != nil {
			stored.EDC = input.EDC
		}
		if input.GP != nil {
			stored.GP = input.GP
		}
		if input.TB != nil {
			stored.TB = input.TB
		}
		if input.HPN != nil {
			stored.HPN = input.HPN
		}
		if input.DM != nil {
			stored.DM = input.DM
		}
		if input.HeartDisease != nil {
			stored.HeartDisease = input.HeartDisease
		}
		if input.Disability != nil {
			stored.Disability = input.Disability
		}

		// 4. The merged record must still satisfy the closed sets
		if err := validateEnums(stored); err != nil {
			return err
		}

		if err := residentRepo.Update(ctx, stored); err != nil {
			return errors.Wrap(err, "failed to update resident")
		}
		resident = stored

		return nil
	})
	if err != nil {
		srv.logger.Warn("Resident update failed", slog.Any("resident_id", residentID), slog.Any("error", err))

		return nil, err
	}

	return usecase.NewResidentOutput(resident), nil
}

// DeleteResident removes a resident record.
func (srv *residentService) DeleteResident(ctx context.Context, id string) error {
	residentID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return domainerrors.ErrInvalidID.WrapMessage("invalid resident id")
	}

	if err := srv.residentRepo.Delete(ctx, residentID); err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return domainerrors.ErrResidentNotFound.WrapMessage("resident not found")
		}

		return errors.Wrap(err, "failed to delete resident")
	}
	srv.logger.Info("Resident deleted", slog.Any("resident_id", residentID))

	return nil
}

// ListByArea returns an area together with all of its residents.
func (srv *residentService) ListByArea(ctx context.Context, areaID string) (*usecase.AreaResidentsOutput, error) {
	id, err := uuid.Parse(strings.TrimSpace(areaID))
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WrapMessage("invalid area id")
	}

	area, err := srv.areaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, domainerrors.ErrAreaNotFound.WrapMessage("area not found")
		}

		return nil, errors.Wrap(err, "failed to find area")
	}

	residents, err := srv.residentRepo.FindByArea(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find residents by area")
	}

	outputs := make([]*usecase.ResidentOutput, 0, len(residents))
	for _, resident := range residents {
		outputs = append(outputs, usecase.NewResidentOutput(resident))
	}

	return &usecase.AreaResidentsOutput{
		Area:      usecase.NewAreaOutput(area),
		Residents: outputs,
	}, nil
}
