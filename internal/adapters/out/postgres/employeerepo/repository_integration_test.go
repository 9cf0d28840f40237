package employeerepo_test

import (
	"context"
	"testing"
	"time"

	"yardwork/internal/adapters/out/postgres/employeerepo"
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type EmployeeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *employeerepo.GormEmployeeRepository
	tracker    *MockAggregateTracker
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&employeerepo.EmployeeDTO{}, &employeerepo.CoverageAreaDTO{}))
}

func (suite *EmployeeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE coverage_areas, employees").Error)
	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()
	suite.repository = employeerepo.NewGormEmployeeRepository(suite.db, suite.tracker)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EmployeeRepositoryIntegrationTestSuite) newEmployee(name string, zips ...string) *employee.Employee {
	e, err := employee.NewEmployee(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	for _, zip := range zips {
		_, err = e.AddCoverageArea(kernel.MustZipCode(zip), 10)
		suite.Require().NoError(err)
	}
	return e
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestAdd_ThenGet_LoadsAreas() {
	ctx := context.Background()
	e := suite.newEmployee("Sam", "80927", "80903")
	suite.Require().NoError(suite.repository.Add(ctx, e))

	stored, err := suite.repository.Get(ctx, e.ID())

	suite.Require().NoError(err)
	suite.Equal("Sam", stored.Name())
	suite.Equal(employee.Active, stored.Status())
	suite.Require().Len(stored.ActiveAreas(), 2)
	suite.Equal("80903", stored.ActiveAreas()[0].Zip().String())
	suite.Equal(kernel.Miles(10), stored.ActiveAreas()[0].TravelRadius())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", e.ID(), e)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestGet_NonExistentEmployee_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestUpdate_AddsAndDeactivatesAreas() {
	ctx := context.Background()
	e := suite.newEmployee("Sam", "80927")
	suite.Require().NoError(suite.repository.Add(ctx, e))

	first := e.Areas()[0].ID()
	_, err := e.AddCoverageArea(kernel.MustZipCode("80903"), 25)
	suite.Require().NoError(err)
	suite.Require().NoError(e.DeactivateCoverageArea(first))
	suite.Require().NoError(suite.repository.Update(ctx, e))

	stored, err := suite.repository.Get(ctx, e.ID())
	suite.Require().NoError(err)
	suite.Len(stored.Areas(), 2)
	suite.Require().Len(stored.ActiveAreas(), 1)
	suite.Equal("80903", stored.ActiveAreas()[0].Zip().String())
	suite.Equal(kernel.Miles(25), stored.ActiveAreas()[0].TravelRadius())
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestUpdate_NonExistentEmployee_ReturnsNotFoundError() {
	e := suite.newEmployee("Ghost", "80927")

	err := suite.repository.Update(context.Background(), e)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EmployeeRepositoryIntegrationTestSuite) TestListActiveAreas_SkipsInactiveEmployeesAndAreas() {
	ctx := context.Background()
	active := suite.newEmployee("Active", "80927", "80903")
	suite.Require().NoError(active.DeactivateCoverageArea(active.Areas()[1].ID()))
	inactive := suite.newEmployee("Inactive", "20001")
	inactive.Deactivate()
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	areas, err := suite.repository.ListActiveAreas(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(areas, 1)
	suite.True(areas[0].EmployeeID().IsEqual(active.ID()))
	suite.Equal("80927", areas[0].Zip().String())
}

func TestEmployeeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeRepositoryIntegrationTestSuite))
}
