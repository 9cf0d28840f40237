package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/ports"

	"github.com/dhconnelly/rtreego"
)

const (
	// milesPerDegreeLat is the length of one degree of latitude, used only for the
	// R-tree prefilter box. Exact distances always come from Haversine.
	milesPerDegreeLat = 69.0
	// pointTolerance gives point entries a non-degenerate box in the R-tree.
	pointTolerance = 1e-9
)

var ErrZipSourceIsRequired = errors.New("zip source is required to reload the geo index")

// ZipDistance is one result of a radius search.
type ZipDistance struct {
	Zip      kernel.ZipCode
	Distance kernel.Miles
}

// zipEntry is an R-tree leaf.
type zipEntry struct {
	location kernel.ZipLocation
	bounds   rtreego.Rect
}

func (e *zipEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// geoSnapshot is immutable once published.
type geoSnapshot struct {
	byZip    map[string]kernel.Coordinates
	tree     *rtreego.Rtree
	loadedAt time.Time
}

// GeoIndex answers "where is this ZIP" and "how far apart are these ZIPs".
//
// The reference table is known to be incomplete. A ZIP missing from it yields ok == false,
// never an error and never the (0,0) coordinate. Callers choose their own fallback.
//
// Reads go through an atomically published snapshot, so Lookup and Distance never block and may
// run concurrently with Reload.
type GeoIndex struct {
	source   ports.ZipSource
	snapshot atomic.Pointer[geoSnapshot]
}

// NewGeoIndex builds a static index from the given locations. Later entries for the same ZIP
// replace earlier ones.
func NewGeoIndex(locations []kernel.ZipLocation) *GeoIndex {
	g := &GeoIndex{}
	g.snapshot.Store(buildSnapshot(locations))
	return g
}

// NewGeoIndexFromSource loads the initial table from source and keeps source for Reload.
func NewGeoIndexFromSource(ctx context.Context, source ports.ZipSource) (*GeoIndex, error) {
	if source == nil {
		return nil, ErrZipSourceIsRequired
	}

	g := &GeoIndex{source: source}
	if _, err := g.Reload(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// Reload fetches the table from the source and swaps it in. On failure the previous table
// stays in service. It returns the number of ZIPs now indexed.
func (g *GeoIndex) Reload(ctx context.Context) (int, error) {
	if g.source == nil {
		return 0, ErrZipSourceIsRequired
	}

	locations, err := g.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load zip locations: %w", err)
	}

	snap := buildSnapshot(locations)
	g.snapshot.Store(snap)
	return len(snap.byZip), nil
}

// Size is the number of distinct ZIPs indexed.
func (g *GeoIndex) Size() int {
	return len(g.snapshot.Load().byZip)
}

// LoadedAt is when the current table was built.
func (g *GeoIndex) LoadedAt() time.Time {
	return g.snapshot.Load().loadedAt
}

// Lookup returns the coordinates of zip, or ok == false if the ZIP is not in the table.
func (g *GeoIndex) Lookup(zip kernel.ZipCode) (kernel.Coordinates, bool) {
	c, ok := g.snapshot.Load().byZip[zip.String()]
	return c, ok
}

// Distance is the great-circle distance between two ZIPs. It is symmetric and ok is false if
// either ZIP is unknown.
func (g *GeoIndex) Distance(a, b kernel.ZipCode) (kernel.Miles, bool) {
	snap := g.snapshot.Load()

	ca, ok := snap.byZip[a.String()]
	if !ok {
		return 0, false
	}
	cb, ok := snap.byZip[b.String()]
	if !ok {
		return 0, false
	}

	return kernel.Haversine(ca.Lat(), ca.Lng(), cb.Lat(), cb.Lng()), true
}

// WithinRadius lists every known ZIP within radius miles of zip, nearest first, the origin
// included at distance 0. ok is false if zip itself is unknown.
func (g *GeoIndex) WithinRadius(zip kernel.ZipCode, radius kernel.Miles) ([]ZipDistance, bool) {
	snap := g.snapshot.Load()

	origin, ok := snap.byZip[zip.String()]
	if !ok {
		return nil, false
	}
	if radius < 0 {
		return []ZipDistance{}, true
	}

	box, err := searchBox(origin, radius)
	if err != nil {
		return []ZipDistance{}, true
	}

	result := make([]ZipDistance, 0)
	for _, hit := range snap.tree.SearchIntersect(box) {
		entry, isEntry := hit.(*zipEntry)
		if !isEntry {
			continue
		}

		c := entry.location.Coordinates
		d := kernel.Haversine(origin.Lat(), origin.Lng(), c.Lat(), c.Lng())
		if d <= radius {
			result = append(result, ZipDistance{Zip: entry.location.Zip, Distance: d})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Distance != result[j].Distance {
			return result[i].Distance < result[j].Distance
		}
		return result[i].Zip.String() < result[j].Zip.String()
	})

	return result, true
}

func buildSnapshot(locations []kernel.ZipLocation) *geoSnapshot {
	byZip := make(map[string]kernel.Coordinates, len(locations))
	for _, loc := range locations {
		if loc.Zip.Validate() != nil || loc.Coordinates.Validate() != nil {
			continue
		}
		byZip[loc.Zip.String()] = loc.Coordinates
	}

	tree := rtreego.NewTree(2, 25, 50)
	for zip, c := range byZip {
		point := rtreego.Point{c.Lat(), c.Lng()}
		tree.Insert(&zipEntry{
			location: kernel.ZipLocation{Zip: kernel.MustZipCode(zip), Coordinates: c},
			bounds:   point.ToRect(pointTolerance),
		})
	}

	return &geoSnapshot{
		byZip:    byZip,
		tree:     tree,
		loadedAt: time.Now(),
	}
}

// searchBox is a lat/lng rectangle guaranteed to contain every point within radius of origin.
// It does not wrap across the antimeridian, which no US ZIP needs.
func searchBox(origin kernel.Coordinates, radius kernel.Miles) (rtreego.Rect, error) {
	dLat := float64(radius) / milesPerDegreeLat

	// a degree of longitude is shortest at the poleward edge of the box
	edgeLat := math.Min(kernel.MaxLatitude, math.Abs(origin.Lat())+dLat)
	cosLat := math.Cos(edgeLat * math.Pi / 180)
	dLng := kernel.MaxLongitude
	if cosLat > 1e-6 {
		dLng = math.Min(kernel.MaxLongitude, float64(radius)/(milesPerDegreeLat*cosLat))
	}

	lo := rtreego.Point{
		math.Max(kernel.MinLatitude, origin.Lat()-dLat),
		math.Max(kernel.MinLongitude, origin.Lng()-dLng),
	}
	hi := rtreego.Point{
		math.Min(kernel.MaxLatitude, origin.Lat()+dLat),
		math.Min(kernel.MaxLongitude, origin.Lng()+dLng),
	}
	// NewRectFromPoints rejects zero-length sides.
	for i := range lo {
		if hi[i]-lo[i] < pointTolerance {
			hi[i] = lo[i] + pointTolerance
		}
	}

	return rtreego.NewRectFromPoints(lo, hi)
}
