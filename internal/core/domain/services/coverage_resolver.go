package services

import (
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
)

const (
	ReasonLocationUnknown  = "location unknown"
	ReasonNoEligibleWorker = "no eligible worker"
)

// Locator is the part of GeoIndex the resolver and the pool need.
type Locator interface {
	Lookup(zip kernel.ZipCode) (kernel.Coordinates, bool)
	Distance(a, b kernel.ZipCode) (kernel.Miles, bool)
}

// CoverageResult is either Covered with the winning area, or not covered with a Reason.
type CoverageResult struct {
	Covered    bool
	EmployeeID kernel.UUID
	AreaID     kernel.UUID
	WorkerZip  kernel.ZipCode
	Distance   kernel.Miles
	Reason     string
}

func uncovered(reason string) CoverageResult {
	return CoverageResult{Reason: reason}
}

// CoverageResolver decides whether a customer ZIP is served and by whom.
//
// Only active areas are considered. An area is eligible when both ZIPs are known and the
// great-circle distance is within its travel radius. The nearest eligible area wins; equal
// distances go to the lower employee ID, then the lower worker ZIP, so the answer does not
// depend on input order.
//
// The result is advisory: nothing is reserved.
type CoverageResolver struct {
	geo Locator
}

func NewCoverageResolver(geo Locator) CoverageResolver {
	return CoverageResolver{geo: geo}
}

// Resolve picks the best area for customerZip among areas.
func (r CoverageResolver) Resolve(customerZip kernel.ZipCode, areas []*employee.CoverageArea) CoverageResult {
	if _, ok := r.geo.Lookup(customerZip); !ok {
		return uncovered(ReasonLocationUnknown)
	}

	var best *CoverageResult
	for _, area := range areas {
		if area == nil || !area.IsActive() {
			continue
		}

		d, ok := r.geo.Distance(customerZip, area.Zip())
		if !ok || d > area.TravelRadius() {
			continue
		}

		candidate := CoverageResult{
			Covered:    true,
			EmployeeID: area.EmployeeID(),
			AreaID:     area.ID(),
			WorkerZip:  area.Zip(),
			Distance:   d,
		}
		if best == nil || closer(candidate, *best) {
			best = &candidate
		}
	}

	if best == nil {
		return uncovered(ReasonNoEligibleWorker)
	}
	return *best
}

// ResolveFor answers whether this particular employee covers customerZip with one of their own
// active areas. An inactive employee never does.
func (r CoverageResolver) ResolveFor(customerZip kernel.ZipCode, e *employee.Employee) CoverageResult {
	if _, ok := r.geo.Lookup(customerZip); !ok {
		return uncovered(ReasonLocationUnknown)
	}
	if e == nil || !e.IsActive() {
		return uncovered(ReasonNoEligibleWorker)
	}
	return r.Resolve(customerZip, e.ActiveAreas())
}

func closer(a, b CoverageResult) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if c := a.EmployeeID.Compare(b.EmployeeID); c != 0 {
		return c < 0
	}
	return a.WorkerZip.String() < b.WorkerZip.String()
}
