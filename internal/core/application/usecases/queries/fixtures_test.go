package queries_test

import (
	"testing"
	"time"

	"yardwork/internal/adapters/out/memory"
	"yardwork/internal/core/application/usecases/queries"
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func testGeo(t *testing.T) *services.GeoIndex {
	t.Helper()
	var locations []kernel.ZipLocation
	for _, row := range []struct {
		zip      string
		lat, lng float64
	}{
		{"80927", 38.7577, -104.6722},
		{"80903", 38.8339, -104.8145},
		{"80918", 38.9129, -104.7734},
		{"20001", 38.9101, -77.0147},
		{"10001", 40.7506, -73.9972},
	} {
		loc, err := kernel.NewZipLocation(row.zip, row.lat, row.lng)
		require.NoError(t, err)
		locations = append(locations, loc)
	}
	return services.NewGeoIndex(locations)
}

type fixture struct {
	t     *testing.T
	store *memory.Store
	repos queries.Repositories
}

func newFixture(t *testing.T) fixture {
	store := memory.NewStore()
	return fixture{t: t, store: store, repos: memory.NewUnitOfWorkFactory(store).Create()}
}

func (f fixture) addWorker(name, zip string, radius kernel.Miles) *employee.Employee {
	f.t.Helper()
	e, err := employee.NewEmployee(kernel.NewUUID(), name)
	require.NoError(f.t, err)
	_, err = e.AddCoverageArea(kernel.MustZipCode(zip), radius)
	require.NoError(f.t, err)
	require.NoError(f.t, f.repos.EmployeeRepository().Add(f.t.Context(), e))
	return e
}

type jobSpec struct {
	name     string
	zip      string
	city     string
	service  string
	date     time.Time
	earnings job.Cents
}

func (f fixture) addJob(s jobSpec) *job.Job {
	f.t.Helper()
	if s.service == "" {
		s.service = "leaf cleanup"
	}
	if s.date.IsZero() {
		s.date = time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	}
	j, err := job.NewJob(kernel.NewUUID(), job.Details{
		CustomerName:      s.name,
		CustomerZip:       kernel.MustZipCode(s.zip),
		City:              s.city,
		ServiceType:       s.service,
		ScheduledDate:     s.date,
		PotentialEarnings: s.earnings,
	})
	require.NoError(f.t, err)
	require.NoError(f.t, f.repos.JobRepository().Add(f.t.Context(), j))
	return j
}
