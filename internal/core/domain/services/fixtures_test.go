package services_test

import (
	"testing"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var testZips = []struct {
	zip      string
	lat, lng float64
}{
	{"80927", 38.7577, -104.6722},
	{"80903", 38.8339, -104.8145},
	{"80918", 38.9122, -104.7734},
	{"80202", 39.7528, -104.9992},
	{"20001", 38.9101, -77.0147},
	{"20002", 38.9050, -76.9826},
	{"10001", 40.7506, -73.9972},
}

func testLocations(t *testing.T) []kernel.ZipLocation {
	t.Helper()
	out := make([]kernel.ZipLocation, 0, len(testZips))
	for _, z := range testZips {
		loc, err := kernel.NewZipLocation(z.zip, z.lat, z.lng)
		require.NoError(t, err)
		out = append(out, loc)
	}
	return out
}

func newTestGeoIndex(t *testing.T) *services.GeoIndex {
	t.Helper()
	return services.NewGeoIndex(testLocations(t))
}

func mustUUID(t *testing.T, s string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(s)
	require.NoError(t, err)
	return id
}
