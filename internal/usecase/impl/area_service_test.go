package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bhwconnect/internal/domain/entity"
	domainerrors "bhwconnect/internal/domain/errors"
	"bhwconnect/internal/domain/repository"
	mockRepo "bhwconnect/internal/mocks/repository"
	"bhwconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// areaServiceFixtures holds all test dependencies for area service tests.
type areaServiceFixtures struct {
	service   usecase.AreaUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	areaRepo  *mockRepo.MockAreaRepository
}

func createTestAreaService(t *testing.T) areaServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	areaRepo := mockRepo.NewMockAreaRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAreaService(txManager, userRepo, areaRepo, logger)

	return areaServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		areaRepo:  areaRepo,
	}
}

func TestAreaService_CreateArea_Success(t *testing.T) {
	fxt := createTestAreaService(t)

	ctx := context.Background()
	input := &usecase.CreateAreaInput{Name: "Purok 1", Barangay: "San Roque"}

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AreaRepo").Return(areaRepo)
			areaRepo.On("ExistsByName", ctx, "Purok 1").Return(false, nil)
			areaRepo.On("Create", ctx, mock.AnythingOfType("*entity.Area")).
				Run(func(args mock.Arguments) {
					area, _ := args.Get(1).(*entity.Area)
					require.NotNil(t, area)
					assert.Nil(t, area.BhwID)
					area.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fxt.service.CreateArea(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Purok 1", output.Name)
	assert.Equal(t, "San Roque", output.Barangay)
	assert.Nil(t, output.BhwID)
}

func TestAreaService_CreateArea_MissingFields(t *testing.T) {
	fxt := createTestAreaService(t)

	output, err := fxt.service.CreateArea(context.Background(), &usecase.CreateAreaInput{Name: "Purok 1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingField)
	assert.Nil(t, output)
}

func TestAreaService_CreateArea_MalformedBhwID(t *testing.T) {
	fxt := createTestAreaService(t)

	bhwID := "not-a-uuid"
	output, err := fxt.service.CreateArea(context.Background(), &usecase.CreateAreaInput{
		Name:     "Purok 1",
		Barangay: "San Roque",
		BhwID:    &bhwID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.Nil(t, output)
}

func TestAreaService_CreateArea_BhwReferenceNotFound(t *testing.T) {
	fxt := createTestAreaService(t)

	ctx := context.Background()
	bhwID := uuid.New()
	bhwIDStr := bhwID.String()
	input := &usecase.CreateAreaInput{Name: "Purok 1", Barangay: "San Roque", BhwID: &bhwIDStr}

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AreaRepo").Return(areaRepo)
			// Only a user holding the bhw role satisfies the reference. The
			// name uniqueness check never runs when the reference fails.
			bhwRole := entity.RoleBHW
			userRepo.On("Exists", ctx, bhwID, &bhwRole).Return(false, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrInvalidReference)
		}).
		Return(domainerrors.ErrInvalidReference)

	output, err := fxt.service.CreateArea(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	assert.Nil(t, output)
}

func TestAreaService_CreateArea_DuplicateName(t *testing.T) {
	fxt := createTestAreaService(t)

	ctx := context.Background()
	input := &usecase.CreateAreaInput{Name: "Purok 1", Barangay: "San Roque"}

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)

			factory.On("UserRepo").Return(userRepo)
			factory.On("AreaRepo").Return(areaRepo)
			areaRepo.On("ExistsByName", ctx, "Purok 1").Return(true, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrDuplicateAreaName)
		}).
		Return(domainerrors.ErrDuplicateAreaName)

	output, err := fxt.service.CreateArea(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAreaName)
	assert.Nil(t, output)
}

func TestAreaService_AreasByBhw_Success(t *testing.T) {
	fxt := createTestAreaService(t)

	ctx := context.Background()
	bhwID := uuid.New()
	areas := []*entity.Area{
		{ID: uuid.New(), Name: "Purok 1", Barangay: "San Roque", BhwID: &bhwID},
		{ID: uuid.New(), Name: "Purok 2", Barangay: "San Roque", BhwID: &bhwID},
	}

	fxt.userRepo.On("Exists", ctx, bhwID, (*entity.Role)(nil)).Return(true, nil)
	fxt.areaRepo.On("FindByBhw", ctx, bhwID).Return(areas, nil)

	outputs, err := fxt.service.AreasByBhw(ctx, bhwID.String())

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Purok 1", outputs[0].Name)
	assert.Equal(t, "Purok 2", outputs[1].Name)
}

func TestAreaService_AreasByBhw_EmptyAssignment(t *testing.T) {
	fxt := createTestAreaService(t)

	ctx := context.Background()
	bhwID := uuid.New()

	fxt.userRepo.On("Exists", ctx, bhwID, (*entity.Role)(nil)).Return(true, nil)
	fxt.areaRepo.On("FindByBhw", ctx, bhwID).Return([]*entity.Area{}, nil)

	outputs, err := fxt.service.AreasByBhw(ctx, bhwID.String())

	require.NoError(t, err)
	assert.NotNil(t, outputs)
	assert.Empty(t, outputs)
}

func TestAreaService_AreasByBhw_MalformedID(t *testing.T) {
	fxt := createTestAreaService(t)

	outputs, err := fxt.service.AreasByBhw(context.Background(), "12345")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.Nil(t, outputs)
}

func TestAreaService_AreasByBhw_UnknownUser(t *testing.T) {
	fxt := createTestAreaService(t)

	ctx := context.Background()
	bhwID := uuid.New()

	fxt.userRepo.On("Exists", ctx, bhwID, (*entity.Role)(nil)).Return(false, nil)

	outputs, err := fxt.service.AreasByBhw(ctx, bhwID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	assert.Nil(t, outputs)
}
