package employee

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee constructor")
	ErrCoverageAreaNotFound     = errors.New("coverage area not found")
	ErrCoverageAreaExists       = errors.New("an active coverage area for this zip already exists")
)

// Status tells whether a worker currently takes jobs.
type Status string

const (
	Active   Status = "active"
	Inactive Status = "inactive"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case Active, Inactive:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an employee status", s))
	}
}

// Employee is the eligibility view of a worker: identity, status and coverage areas.
// An inactive employee contributes no areas to coverage resolution, whatever their flags say.
type Employee struct {
	id     kernel.UUID
	name   string
	status Status
	areas  []*CoverageArea

	guard guard.ConstructorGuard
}

// NewEmployee creates an active employee without coverage areas.
func NewEmployee(id kernel.UUID, name string) (*Employee, error) {
	return RestoreEmployee(id, name, Active, nil)
}

func RestoreEmployee(id kernel.UUID, name string, status Status, areas []*CoverageArea) (*Employee, error) {
	e := &Employee{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}
	if err := e.setAreas(areas); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil && e.id.IsEqual(other.id)
}

func (e *Employee) ID() kernel.UUID {
	return e.id
}

func (e *Employee) Name() string {
	return e.name
}

func (e *Employee) Status() Status {
	return e.status
}

func (e *Employee) IsActive() bool {
	return e.status == Active
}

// Areas returns every area, active or not.
func (e *Employee) Areas() []*CoverageArea {
	return slices.Clone(e.areas)
}

// ActiveAreas returns the areas that count for coverage, ordered by ZIP.
// It is empty for an inactive employee.
func (e *Employee) ActiveAreas() []*CoverageArea {
	if !e.IsActive() {
		return nil
	}

	var out []*CoverageArea
	for _, a := range e.areas {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(x, y *CoverageArea) int {
		return strings.Compare(x.Zip().String(), y.Zip().String())
	})
	return out
}

// AddCoverageArea adds an active area. A second active area on the same ZIP is rejected.
func (e *Employee) AddCoverageArea(zip kernel.ZipCode, radius kernel.Miles) (*CoverageArea, error) {
	for _, a := range e.areas {
		if a.IsActive() && a.Zip().IsEqual(zip) {
			return nil, ErrCoverageAreaExists
		}
	}

	area, err := NewCoverageArea(kernel.NewUUID(), e.id, zip, radius)
	if err != nil {
		return nil, err
	}

	e.areas = append(e.areas, area)
	return area, nil
}

// DeactivateCoverageArea switches an area off. Deactivating an inactive area is a no-op.
func (e *Employee) DeactivateCoverageArea(areaID kernel.UUID) error {
	for _, a := range e.areas {
		if a.ID().IsEqual(areaID) {
			a.deactivate()
			return nil
		}
	}
	return ErrCoverageAreaNotFound
}

func (e *Employee) Deactivate() {
	e.status = Inactive
}

func (e *Employee) Activate() {
	e.status = Active
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	e.name = name
	return nil
}

func (e *Employee) setStatus(status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Employee) setAreas(areas []*CoverageArea) error {
	for _, a := range areas {
		if err := a.Validate(); err != nil {
			return err
		}
		if !a.EmployeeID().IsEqual(e.id) {
			return errs.NewValueIsInvalidErrorWithCause("areas",
				fmt.Errorf("area %s belongs to employee %s", a.ID(), a.EmployeeID()))
		}
	}
	e.areas = slices.Clone(areas)
	return nil
}
