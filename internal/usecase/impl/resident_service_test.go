package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

func ptr[T any](v T) *T {
	return &v
}

// residentServiceFixtures holds all test dependencies for resident service tests.
type residentServiceFixtures struct {
	service      usecase.ResidentUsecase
	txManager    *mockRepo.MockTransactionManager
	areaRepo     *mockRepo.MockAreaRepository
	residentRepo *mockRepo.MockResidentRepository
}

func createTestResidentService(t *testing.T) residentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	areaRepo := mockRepo.NewMockAreaRepository(t)
	residentRepo := mockRepo.NewMockResidentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewResidentService(txManager, areaRepo, residentRepo, logger)

	return residentServiceFixtures{
		service:      service,
		txManager:    txManager,
		areaRepo:     areaRepo,
		residentRepo: residentRepo,
	}
}

func validCreateResidentInput(areaID string) *usecase.CreateResidentInput {
	return &usecase.CreateResidentInput{
		FirstName:       "Pedro",
		LastName:        "Reyes",
		Gender:          "Male",
		Birthdate:       "1990-05-14",
		AreaID:          areaID,
		FamilyPosition:  ptr(0),
		Occupation:      "farmer",
		CivilStatus:     "married",
		Student:         "NA",
		GarbageDisposal: "segregated",
		WaterSource:     "deep well",
		TypeOfToilet:    "sanitary",
		HPN:             ptr(true),
	}
}

func storedResident(id, areaID uuid.UUID) *entity.Resident {
	return &entity.Resident{
		ID:              id,
		FirstName:       "Pedro",
		LastName:        "Reyes",
		Gender:          entity.GenderMale,
		Birthdate:       time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
		AreaID:          areaID,
		FamilyPosition:  1,
		Occupation:      "farmer",
		CivilStatus:     "married",
		Student:         entity.StudentNA,
		GarbageDisposal: entity.GarbageSegregated,
		WaterSource:     entity.WaterDeepWell,
		TypeOfToilet:    entity.ToiletSanitary,
		HPN:             ptr(true),
	}
}

func TestResidentService_CreateResident_Success(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	areaID := uuid.New()
	input := validCreateResidentInput(areaID.String())

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)
			residentRepo := mockRepo.NewMockResidentRepository(t)

			factory.On("AreaRepo").Return(areaRepo)
			factory.On("ResidentRepo").Return(residentRepo)
			areaRepo.On("Exists", ctx, areaID).Return(true, nil)
			residentRepo.On("Create", ctx, mock.AnythingOfType("*entity.Resident")).
				Run(func(args mock.Arguments) {
					resident, _ := args.Get(1).(*entity.Resident)
					require.NotNil(t, resident)
					assert.Equal(t, areaID, resident.AreaID)
					assert.Equal(t, 0, resident.FamilyPosition)
					assert.Equal(t, time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC), resident.Birthdate)
					resident.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fxt.service.CreateResident(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Pedro", output.FirstName)
	assert.Equal(t, areaID, output.AreaID)
	require.NotNil(t, output.HPN)
	assert.True(t, *output.HPN)
	// Flags never sent stay unrecorded, not false.
	assert.Nil(t, output.TB)
}

func TestResidentService_CreateResident_MissingFamilyPosition(t *testing.T) {
	fxt := createTestResidentService(t)

	input := validCreateResidentInput(uuid.New().String())
	input.FamilyPosition = nil

	output, err := fxt.service.CreateResident(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingField)
	assert.Nil(t, output)
}

func TestResidentService_CreateResident_MalformedAreaID(t *testing.T) {
	fxt := createTestResidentService(t)

	input := validCreateResidentInput("64f0aa11bb22cc33dd44ee55")

	output, err := fxt.service.CreateResident(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.Nil(t, output)
}

func TestResidentService_CreateResident_InvalidGender(t *testing.T) {
	fxt := createTestResidentService(t)

	input := validCreateResidentInput(uuid.New().String())
	input.Gender = "male"

	output, err := fxt.service.CreateResident(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
	assert.Nil(t, output)
}

func TestResidentService_CreateResident_InvalidStudentStatus(t *testing.T) {
	fxt := createTestResidentService(t)

	input := validCreateResidentInput(uuid.New().String())
	input.Student = "KINDER"

	output, err := fxt.service.CreateResident(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
	assert.Nil(t, output)
}

func TestResidentService_CreateResident_InvalidBirthdate(t *testing.T) {
	fxt := createTestResidentService(t)

	input := validCreateResidentInput(uuid.New().String())
	input.Birthdate = "14-05-1990"

	output, err := fxt.service.CreateResident(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidField)
	assert.Nil(t, output)
}

func TestResidentService_CreateResident_AreaMissing(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	areaID := uuid.New()
	input := validCreateResidentInput(areaID.String())

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)
			residentRepo := mockRepo.NewMockResidentRepository(t)

			factory.On("AreaRepo").Return(areaRepo)
			factory.On("ResidentRepo").Return(residentRepo)
			areaRepo.On("Exists", ctx, areaID).Return(false, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrInvalidReference)
		}).
		Return(domainerrors.ErrInvalidReference)

	output, err := fxt.service.CreateResident(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	assert.Nil(t, output)
}

func TestResidentService_UpdateResident_PartialMergeRetainsStoredValues(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	residentID := uuid.New()
	areaID := uuid.New()

	// Only occupation and one health flag are patched. Everything else,
	// including the explicit true HPN flag, must survive the merge, and the
	// patched false must land as false rather than being dropped.
	input := &usecase.UpdateResidentInput{
		Occupation: ptr("fisherman"),
		HPN:        ptr(false),
	}

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)
			residentRepo := mockRepo.NewMockResidentRepository(t)

			factory.On("AreaRepo").Return(areaRepo)
			factory.On("ResidentRepo").Return(residentRepo)
			residentRepo.On("FindByID", ctx, residentID).Return(storedResident(residentID, areaID), nil)
			residentRepo.On("Update", ctx, mock.AnythingOfType("*entity.Resident")).
				Run(func(args mock.Arguments) {
					resident, _ := args.Get(1).(*entity.Resident)
					require.NotNil(t, resident)
					assert.Equal(t, "fisherman", resident.Occupation)
					require.NotNil(t, resident.HPN)
					assert.False(t, *resident.HPN)
					// Untouched fields keep their stored values.
					assert.Equal(t, "Pedro", resident.FirstName)
					assert.Equal(t, 1, resident.FamilyPosition)
					assert.Equal(t, areaID, resident.AreaID)
					assert.Equal(t, entity.StudentNA, resident.Student)
				}).
				Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	output, err := fxt.service.UpdateResident(ctx, residentID.String(), input)

	require.NoError(t, err)
	assert.Equal(t, "fisherman", output.Occupation)
	require.NotNil(t, output.HPN)
	assert.False(t, *output.HPN)
	assert.Equal(t, "Pedro", output.FirstName)
}

func TestResidentService_UpdateResident_MalformedID(t *testing.T) {
	fxt := createTestResidentService(t)

	output, err := fxt.service.UpdateResident(context.Background(), "oops", &usecase.UpdateResidentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.Nil(t, output)
}

func TestResidentService_UpdateResident_NotFound(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	residentID := uuid.New()

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)
			residentRepo := mockRepo.NewMockResidentRepository(t)

			factory.On("AreaRepo").Return(areaRepo)
			factory.On("ResidentRepo").Return(residentRepo)
			residentRepo.On("FindByID", ctx, residentID).Return(nil, repository.ErrResidentNotFound)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrResidentNotFound)
		}).
		Return(domainerrors.ErrResidentNotFound)

	output, err := fxt.service.UpdateResident(ctx, residentID.String(), &usecase.UpdateResidentInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResidentNotFound)
	assert.Nil(t, output)
}

func TestResidentService_UpdateResident_ReassignedAreaMissing(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	residentID := uuid.New()
	areaID := uuid.New()
	newAreaID := uuid.New()
	input := &usecase.UpdateResidentInput{AreaID: ptr(newAreaID.String())}

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)
			residentRepo := mockRepo.NewMockResidentRepository(t)

			factory.On("AreaRepo").Return(areaRepo)
			factory.On("ResidentRepo").Return(residentRepo)
			residentRepo.On("FindByID", ctx, residentID).Return(storedResident(residentID, areaID), nil)
			areaRepo.On("Exists", ctx, newAreaID).Return(false, nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrInvalidReference)
		}).
		Return(domainerrors.ErrInvalidReference)

	output, err := fxt.service.UpdateResident(ctx, residentID.String(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	assert.Nil(t, output)
}

func TestResidentService_UpdateResident_InvalidEnumInPatch(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	residentID := uuid.New()
	areaID := uuid.New()
	input := &usecase.UpdateResidentInput{WaterSource: ptr("rainwater")}

	fxt.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn, ok := args.Get(1).(func(repository.RepositoryFactory) error)
			require.True(t, ok)

			factory := mockRepo.NewMockRepositoryFactory(t)
			areaRepo := mockRepo.NewMockAreaRepository(t)
			residentRepo := mockRepo.NewMockResidentRepository(t)

			factory.On("AreaRepo").Return(areaRepo)
			factory.On("ResidentRepo").Return(residentRepo)
			residentRepo.On("FindByID", ctx, residentID).Return(storedResident(residentID, areaID), nil)

			assert.ErrorIs(t, fn(factory), domainerrors.ErrInvalidEnum)
		}).
		Return(domainerrors.ErrInvalidEnum)

	output, err := fxt.service.UpdateResident(ctx, residentID.String(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEnum)
	assert.Nil(t, output)
}

func TestResidentService_DeleteResident_Success(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	residentID := uuid.New()

	fxt.residentRepo.On("Delete", ctx, residentID).Return(nil)

	require.NoError(t, fxt.service.DeleteResident(ctx, residentID.String()))
}

func TestResidentService_DeleteResident_MalformedID(t *testing.T) {
	fxt := createTestResidentService(t)

	err := fxt.service.DeleteResident(context.Background(), "12345")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestResidentService_DeleteResident_NotFound(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	residentID := uuid.New()

	fxt.residentRepo.On("Delete", ctx, residentID).Return(repository.ErrResidentNotFound)

	err := fxt.service.DeleteResident(ctx, residentID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResidentNotFound)
}

func TestResidentService_ListByArea_Success(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	areaID := uuid.New()
	area := &entity.Area{ID: areaID, Name: "Purok 1", Barangay: "San Roque"}
	residents := []*entity.Resident{
		storedResident(uuid.New(), areaID),
		storedResident(uuid.New(), areaID),
	}

	fxt.areaRepo.On("FindByID", ctx, areaID).Return(area, nil)
	fxt.residentRepo.On("FindByArea", ctx, areaID).Return(residents, nil)

	output, err := fxt.service.ListByArea(ctx, areaID.String())

	require.NoError(t, err)
	require.NotNil(t, output.Area)
	assert.Equal(t, areaID, output.Area.ID)
	require.Len(t, output.Residents, 2)
}

func TestResidentService_ListByArea_AreaMissing(t *testing.T) {
	fxt := createTestResidentService(t)

	ctx := context.Background()
	areaID := uuid.New()

	fxt.areaRepo.On("FindByID", ctx, areaID).Return(nil, repository.ErrAreaNotFound)

	output, err := fxt.service.ListByArea(ctx, areaID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAreaNotFound)
	assert.Nil(t, output)
}

func TestResidentService_ListByArea_MalformedID(t *testing.T) {
	fxt := createTestResidentService(t)

	output, err := fxt.service.ListByArea(context.Background(), "area-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
	assert.Nil(t, output)
}
