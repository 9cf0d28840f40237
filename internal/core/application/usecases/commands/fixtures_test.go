package commands_test

import (
	"testing"
	"time"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

var discardLogger = logger.Discard()

func testGeo(t *testing.T) *services.GeoIndex {
	t.Helper()
	var locations []kernel.ZipLocation
	for _, row := range []struct {
		zip      string
		lat, lng float64
	}{
		{"80927", 38.7577, -104.6722},
		{"80903", 38.8339, -104.8145},
		{"20001", 38.9101, -77.0147},
		{"10001", 40.7506, -73.9972},
	} {
		loc, err := kernel.NewZipLocation(row.zip, row.lat, row.lng)
		require.NoError(t, err)
		locations = append(locations, loc)
	}
	return services.NewGeoIndex(locations)
}

func availableJob(t *testing.T, zip string) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), job.Details{
		CustomerName:      "Jane Doe",
		CustomerZip:       kernel.MustZipCode(zip),
		City:              "Colorado Springs",
		ServiceType:       "leaf cleanup",
		ScheduledDate:     time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		PotentialEarnings: 7500,
	})
	require.NoError(t, err)
	return j
}

func workerCovering(t *testing.T, zip string, radius kernel.Miles) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(kernel.NewUUID(), "Worker")
	require.NoError(t, err)
	_, err = e.AddCoverageArea(kernel.MustZipCode(zip), radius)
	require.NoError(t, err)
	return e
}
