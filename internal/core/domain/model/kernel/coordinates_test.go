package kernel_test

import (
	"math"
	"testing"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "colorado springs", lat: 38.7577, lng: -104.6722},
		{name: "poles and antimeridian", lat: 90, lng: -180},
		{name: "lat too small", lat: -90.0001, lng: 0, wantErr: true},
		{name: "lng too large", lat: 0, lng: 180.5, wantErr: true},
		{name: "nan", lat: math.NaN(), lng: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := kernel.NewCoordinates(tt.lat, tt.lng)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, c)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, c.Lat(), 1e-12)
			assert.InDelta(t, tt.lng, c.Lng(), 1e-12)
		})
	}
}

func TestCoordinates_ZeroValueIsNotALocation(t *testing.T) {
	var zero kernel.Coordinates
	other, _ := kernel.NewCoordinates(0, 0)

	_, err := zero.DistanceTo(other)
	require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
}

func TestCoordinates_DistanceTo(t *testing.T) {
	newYork, _ := kernel.NewCoordinates(40.7506, -73.9972)
	washington, _ := kernel.NewCoordinates(38.9101, -77.0147)

	t.Run("same point is zero", func(t *testing.T) {
		d, err := newYork.DistanceTo(newYork)
		require.NoError(t, err)
		assert.InDelta(t, 0, float64(d), 1e-9)
	})

	t.Run("new york to washington is about 204 miles", func(t *testing.T) {
		d, err := newYork.DistanceTo(washington)
		require.NoError(t, err)
		assert.InDelta(t, 204, float64(d), 3)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab, _ := newYork.DistanceTo(washington)
		ba, _ := washington.DistanceTo(newYork)
		assert.InDelta(t, float64(ab), float64(ba), 1e-9)
	})

	t.Run("antipodal points stay finite", func(t *testing.T) {
		d := kernel.Haversine(0, 0, 0, 180)
		assert.InDelta(t, math.Pi*kernel.EarthRadiusMiles, float64(d), 1e-6)
	})
}

func TestNewZipLocation(t *testing.T) {
	loc, err := kernel.NewZipLocation("80927", 38.7577, -104.6722)
	require.NoError(t, err)
	assert.Equal(t, "80927", loc.Zip.String())

	_, err = kernel.NewZipLocation("bad", 100, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
