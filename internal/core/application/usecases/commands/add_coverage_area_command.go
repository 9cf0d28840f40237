package commands

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

var ErrAddCoverageAreaCommandIsNotConstructed = errors.New(
	"AddCoverageAreaCommand must be created via NewAddCoverageAreaCommand constructor",
)

type AddCoverageAreaCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	zip        kernel.ZipCode
	radius     kernel.Miles

	guard guard.ConstructorGuard
}

func NewAddCoverageAreaCommand(
	employeeID kernel.UUID,
	zip kernel.ZipCode,
	radius kernel.Miles,
) (AddCoverageAreaCommand, error) {
	cmd := AddCoverageAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setZip(zip),
		cmd.setRadius(radius),
	); err != nil {
		return AddCoverageAreaCommand{}, err
	}

	return cmd, nil
}

func (c AddCoverageAreaCommand) Validate() error {
	return c.guard.Validate(ErrAddCoverageAreaCommandIsNotConstructed)
}

func (c AddCoverageAreaCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c AddCoverageAreaCommand) Zip() kernel.ZipCode {
	return c.zip
}

func (c AddCoverageAreaCommand) Radius() kernel.Miles {
	return c.radius
}

func (c *AddCoverageAreaCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	c.employeeID = id
	return nil
}

func (c *AddCoverageAreaCommand) setZip(zip kernel.ZipCode) error {
	if err := zip.Validate(); err != nil {
		return err
	}
	c.zip = zip
	return nil
}

func (c *AddCoverageAreaCommand) setRadius(radius kernel.Miles) error {
	if radius <= 0 || radius > employee.MaxTravelRadius {
		return errs.NewValueIsOutOfRangeError("travelRadius", float64(radius), 0, float64(employee.MaxTravelRadius))
	}
	c.radius = radius
	return nil
}
