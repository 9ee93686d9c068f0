// Package repository provides hand-maintained testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"bhwconnect/internal/domain/entity"
	"bhwconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted when
// the test finishes.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID, role *entity.Role) (bool, error) {
	args := m.Called(ctx, id, role)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockAreaRepository mocks repository.AreaRepository.
type MockAreaRepository struct {
	mock.Mock
}

func NewMockAreaRepository(t *testing.T) *MockAreaRepository {
	m := &MockAreaRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	args := m.Called(ctx, id)
	area, _ := args.Get(0).(*entity.Area)

	return area, args.Error(1)
}

func (m *MockAreaRepository) FindByBhw(ctx context.Context, bhwID uuid.UUID) ([]*entity.Area, error) {
	args := m.Called(ctx, bhwID)
	areas, _ := args.Get(0).([]*entity.Area)

	return areas, args.Error(1)
}

func (m *MockAreaRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockAreaRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)

	return args.Bool(0), args.Error(1)
}

func (m *MockAreaRepository) Create(ctx context.Context, area *entity.Area) error {
	args := m.Called(ctx, area)

	return args.Error(0)
}

// MockResidentRepository mocks repository.ResidentRepository.
type MockResidentRepository struct {
	mock.Mock
}

func NewMockResidentRepository(t *testing.T) *MockResidentRepository {
	m := &MockResidentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockResidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	args := m.Called(ctx, id)
	resident, _ := args.Get(0).(*entity.Resident)

	return resident, args.Error(1)
}

func (m *MockResidentRepository) FindByArea(ctx context.Context, areaID uuid.UUID) ([]*entity.Resident, error) {
	args := m.Called(ctx, areaID)
	residents, _ := args.Get(0).([]*entity.Resident)

	return residents, args.Error(1)
}

func (m *MockResidentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	args := m.Called(ctx, resident)

	return args.Error(0)
}

func (m *MockResidentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	args := m.Called(ctx, resident)

	return args.Error(0)
}

func (m *MockResidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.UserRepository)

	return repo
}

func (m *MockRepositoryFactory) AreaRepo() repository.AreaRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.AreaRepository)

	return repo
}

func (m *MockRepositoryFactory) ResidentRepo() repository.ResidentRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.ResidentRepository)

	return repo
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}
