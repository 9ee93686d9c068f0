package impl

import (
	"context"
	"log/slog"
	"strings"

	"bhwconnect/internal/domain/entity"
	domainerrors "bhwconnect/internal/domain/errors"
	"bhwconnect/internal/domain/repository"
	"bhwconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// areaService implements the AreaUsecase interface.
type areaService struct {
	fx.In

	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	areaRepo  repository.AreaRepository
	logger    *slog.Logger
}

// NewAreaService is the constructor for areaService.
func NewAreaService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	areaRepo repository.AreaRepository,
	logger *slog.Logger,
) usecase.AreaUsecase {
	return &areaService{
		txManager: txManager,
		userRepo:  userRepo,
		areaRepo:  areaRepo,
		logger:    logger,
	}
}

// CreateArea validates and persists a new area. The checks run in a fixed
// order: missing fields, then the BHW reference, then name uniqueness.
func (srv *areaService) CreateArea(ctx context.Context, input *usecase.CreateAreaInput) (*usecase.AreaOutput, error) {
	name := strings.TrimSpace(input.Name)
	barangay := strings.TrimSpace(input.Barangay)

	// 1. Name and barangay are required
	if name == "" || barangay == "" {
		return nil, domainerrors.ErrMissingField.WrapMessage("name and barangay are required")
	}

	// 2. The BHW assignment is optional, but when present it must be well formed
	var bhwID *uuid.UUID
	if input.BhwID != nil && strings.TrimSpace(*input.BhwID) != "" {
		parsed, err := uuid.Parse(strings.TrimSpace(*input.BhwID))
		if err != nil {
			return nil, domainerrors.ErrInvalidID.WrapMessage("invalid bhw id")
		}
		bhwID = &parsed
	}

	srv.logger.Info("Creating area", slog.String("name", name), slog.String("barangay", barangay))

	area := &entity.Area{
		Name:     name,
		Barangay: barangay,
		BhwID:    bhwID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		areaRepo := repoFactory.AreaRepo()

		// 3. The assigned user must exist and hold the bhw role
		if bhwID != nil {
			bhwRole := entity.RoleBHW
			exists, err := userRepo.Exists(ctx, *bhwID, &bhwRole)
			if err != nil {
				return errors.Wrap(err, "failed to check bhw reference")
			}
			if !exists {
				return domainerrors.ErrInvalidReference.WrapMessage("assigned bhw not found")
			}
		}

		// 4. Area names are unique
		taken, err := areaRepo.ExistsByName(ctx, name)
		if err != nil {
			return errors.Wrap(err, "failed to check area name")
		}
		if taken {
			return domainerrors.ErrDuplicateAreaName.WrapMessage("area name already in use")
		}

		if err := areaRepo.Create(ctx, area); err != nil {
			return errors.Wrap(err, "failed to create area")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Area creation failed", slog.String("name", name), slog.Any("error", err))

		return nil, err
	}
	srv.logger.Info("Area created", slog.Any("area_id", area.ID), slog.String("name", area.Name))

	return usecase.NewAreaOutput(area), nil
}

// AreasByBhw returns the areas assigned to the given BHW.
func (srv *areaService) AreasByBhw(ctx context.Context, bhwID string) ([]*usecase.AreaOutput, error) {
	id, err := uuid.Parse(strings.TrimSpace(bhwID))
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WrapMessage("invalid bhw id")
	}

	exists, err := srv.userRepo.Exists(ctx, id, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check bhw")
	}
	if !exists {
		return nil, domainerrors.ErrInvalidReference.WrapMessage("bhw not found")
	}

	areas, err := srv.areaRepo.FindByBhw(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find areas by bhw")
	}

	outputs := make([]*usecase.AreaOutput, 0, len(areas))
	for _, area := range areas {
		outputs = append(outputs, usecase.NewAreaOutput(area))
	}

	return outputs, nil
}
