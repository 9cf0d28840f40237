package commands_test

import (
	"context"

	"yardwork/internal/adapters/out/memory"
	"yardwork/internal/core/application/usecases/commands"
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateIfStatus(ctx context.Context, j *job.Job, expected job.Status) (bool, error) {
	args := m.Called(ctx, j, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) ListByStatus(ctx context.Context, statuses ...job.Status) ([]*job.Job, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListActiveAreas(ctx context.Context) ([]*employee.CoverageArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employee.CoverageArea), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	args := m.Called()
	return args.Get(0).(ports.EmployeeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	args := m.Called()
	return args.Get(0).(commands.EmployeeUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event job.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// memoryFactories adapts the in-memory store to every factory flavour the handlers take.
type memoryFactories struct {
	inner *memory.UnitOfWorkFactory
}

func newMemoryFactories() (memoryFactories, *memory.Store) {
	store := memory.NewStore()
	return memoryFactories{inner: memory.NewUnitOfWorkFactory(store)}, store
}

func (f memoryFactories) uow() commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return f.inner.Create() })
}

func (f memoryFactories) jobs() commands.JobUoWFactory {
	return jobUoWFactoryFunc(func() commands.JobUoW { return f.inner.Create() })
}

func (f memoryFactories) employees() commands.EmployeeUoWFactory {
	return employeeUoWFactoryFunc(func() commands.EmployeeUoW { return f.inner.Create() })
}

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type jobUoWFactoryFunc func() commands.JobUoW

func (f jobUoWFactoryFunc) Create() commands.JobUoW { return f() }

type employeeUoWFactoryFunc func() commands.EmployeeUoW

func (f employeeUoWFactoryFunc) Create() commands.EmployeeUoW { return f() }
