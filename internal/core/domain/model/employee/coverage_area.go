package employee

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

// MaxTravelRadius is the largest radius a worker may commit to.
const MaxTravelRadius kernel.Miles = 100

var ErrCoverageAreaIsNotConstructed = errors.New("CoverageArea must be created via NewCoverageArea or RestoreCoverageArea constructor")

// CoverageArea is a worker's commitment to serve every customer within radius miles of a home ZIP.
// Only active areas take part in coverage resolution.
type CoverageArea struct {
	id           kernel.UUID
	employeeID   kernel.UUID
	zip          kernel.ZipCode
	travelRadius kernel.Miles
	active       bool

	guard guard.ConstructorGuard
}

// NewCoverageArea creates an active area.
func NewCoverageArea(id, employeeID kernel.UUID, zip kernel.ZipCode, radius kernel.Miles) (*CoverageArea, error) {
	return RestoreCoverageArea(id, employeeID, zip, radius, true)
}

func RestoreCoverageArea(
	id kernel.UUID,
	employeeID kernel.UUID,
	zip kernel.ZipCode,
	radius kernel.Miles,
	active bool,
) (*CoverageArea, error) {
	a := &CoverageArea{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmployeeID(employeeID),
		a.setZip(zip),
		a.setTravelRadius(radius),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *CoverageArea) Validate() error {
	if a == nil {
		return ErrCoverageAreaIsNotConstructed
	}
	return a.guard.Validate(ErrCoverageAreaIsNotConstructed)
}

func (a *CoverageArea) ID() kernel.UUID {
	return a.id
}

func (a *CoverageArea) EmployeeID() kernel.UUID {
	return a.employeeID
}

func (a *CoverageArea) Zip() kernel.ZipCode {
	return a.zip
}

func (a *CoverageArea) TravelRadius() kernel.Miles {
	return a.travelRadius
}

func (a *CoverageArea) IsActive() bool {
	return a.active
}

func (a *CoverageArea) deactivate() {
	a.active = false
}

func (a *CoverageArea) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *CoverageArea) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	a.employeeID = id
	return nil
}

func (a *CoverageArea) setZip(zip kernel.ZipCode) error {
	if err := zip.Validate(); err != nil {
		return err
	}
	a.zip = zip
	return nil
}

func (a *CoverageArea) setTravelRadius(radius kernel.Miles) error {
	if radius <= 0 || radius > MaxTravelRadius {
		return errs.NewValueIsOutOfRangeError("travelRadius", float64(radius), 0, float64(MaxTravelRadius))
	}
	a.travelRadius = radius
	return nil
}
