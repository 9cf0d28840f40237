package zipdata_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yardwork/internal/adapters/out/zipdata"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource_Load(t *testing.T) {
	locations, err := zipdata.NewEmbeddedSource().Load(t.Context())

	require.NoError(t, err)
	require.NotEmpty(t, locations)

	seen := make(map[string]bool, len(locations))
	for _, loc := range locations {
		assert.False(t, seen[loc.Zip.String()], "duplicate zip %s", loc.Zip)
		seen[loc.Zip.String()] = true
	}
	for _, zip := range []string{"80927", "80903", "20001", "10001"} {
		assert.True(t, seen[zip], "embedded data should contain %s", zip)
	}
}

func TestEmbeddedSource_ExampleScenario(t *testing.T) {
	geo, err := services.NewGeoIndexFromSource(t.Context(), zipdata.NewEmbeddedSource())
	require.NoError(t, err)

	d, ok := geo.Distance(kernel.MustZipCode("80927"), kernel.MustZipCode("80903"))
	require.True(t, ok)
	assert.InDelta(t, 9.3, float64(d), 0.5)

	d, ok = geo.Distance(kernel.MustZipCode("20001"), kernel.MustZipCode("10001"))
	require.True(t, ok)
	assert.Greater(t, float64(d), 150.0)
}

func TestParse(t *testing.T) {
	t.Run("should skip header and blank lines", func(t *testing.T) {
		locations, err := zipdata.Parse(strings.NewReader("zip,lat,lng\n\n80927, 38.7577, -104.6722\n20001,38.9101,-77.0147\n"))

		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, "80927", locations[0].Zip.String())
		assert.InDelta(t, -104.6722, locations[0].Coordinates.Lng(), 1e-9)
	})

	t.Run("should accept data without header", func(t *testing.T) {
		locations, err := zipdata.Parse(strings.NewReader("80927,38.7577,-104.6722\n"))

		require.NoError(t, err)
		assert.Len(t, locations, 1)
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		_, err := zipdata.Parse(strings.NewReader("zip,lat,lng\n80927,98.1,-104.6722\n"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("should reject malformed zip", func(t *testing.T) {
		_, err := zipdata.Parse(strings.NewReader("zip,lat,lng\n8092,38.7,-104.6\n"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject wrong column count", func(t *testing.T) {
		_, err := zipdata.Parse(strings.NewReader("zip,lat,lng\n80927,38.7\n"))

		require.Error(t, err)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := zipdata.Parse(strings.NewReader("zip,lat,lng\n"))

		require.ErrorIs(t, err, zipdata.ErrNoRows)
	})
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zips.csv")
	require.NoError(t, os.WriteFile(path, []byte("zip,lat,lng\n80927,38.7577,-104.6722\n"), 0o600))
	source := zipdata.NewFileSource(path)

	locations, err := source.Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	require.NoError(t, os.WriteFile(path, []byte("zip,lat,lng\n80927,38.7577,-104.6722\n80903,38.8339,-104.8145\n"), 0o600))
	locations, err = source.Load(t.Context())
	require.NoError(t, err)
	assert.Len(t, locations, 2, "file is re-read on every load")

	_, err = zipdata.NewFileSource(filepath.Join(t.TempDir(), "missing.csv")).Load(t.Context())
	require.ErrorIs(t, err, os.ErrNotExist)
}
