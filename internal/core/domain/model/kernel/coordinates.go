package kernel

import (
	"errors"
	"fmt"
	"math"

	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

// EarthRadiusMiles is the mean Earth radius used for great-circle distances.
const EarthRadiusMiles = 3959.0

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when zero-value Coordinates are used.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Miles is a distance over the Earth's surface.
type Miles float64

// Coordinates is a validated latitude/longitude pair in decimal degrees.
// The zero value is invalid: (0,0) is a real point in the Gulf of Guinea and must never stand in
// for an unknown location.
type Coordinates struct { //nolint:recvcheck // pointer setters used during construction
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates lat in [-90, 90] and lng in [-180, 180].
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}
	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

func (c Coordinates) Lng() float64 {
	return c.lng
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.4f,%.4f)", c.lat, c.lng)
}

// DistanceTo returns the Haversine great-circle distance:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)
//	d = 2R·atan2(√a, √(1−a))
//
// with R = EarthRadiusMiles.
func (c Coordinates) DistanceTo(other Coordinates) (Miles, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}
	return Haversine(c.lat, c.lng, other.lat, other.lng), nil
}

// Haversine computes the great-circle distance between two points given in degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) Miles {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lng2 - lng1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// rounding can push a a hair past 1 for antipodal points
	a = math.Min(1, math.Max(0, a))

	return Miles(2 * EarthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)))
}

func (c *Coordinates) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}
	c.lng = lng
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ZipLocation is one row of ZIP reference data.
type ZipLocation struct {
	Zip         ZipCode
	Coordinates Coordinates
}

// NewZipLocation validates a raw reference row.
func NewZipLocation(zip string, lat, lng float64) (ZipLocation, error) {
	z, zipErr := NewZipCode(zip)
	c, coordErr := NewCoordinates(lat, lng)
	if err := errors.Join(zipErr, coordErr); err != nil {
		return ZipLocation{}, err
	}
	return ZipLocation{Zip: z, Coordinates: c}, nil
}
