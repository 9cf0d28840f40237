package commands

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrDeactivateCoverageAreaCommandIsNotConstructed = errors.New(
	"DeactivateCoverageAreaCommand must be created via NewDeactivateCoverageAreaCommand constructor",
)

type DeactivateCoverageAreaCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	areaID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateCoverageAreaCommand(employeeID, areaID kernel.UUID) (DeactivateCoverageAreaCommand, error) {
	cmd := DeactivateCoverageAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setAreaID(areaID),
	); err != nil {
		return DeactivateCoverageAreaCommand{}, err
	}

	return cmd, nil
}

func (c DeactivateCoverageAreaCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCoverageAreaCommandIsNotConstructed)
}

func (c DeactivateCoverageAreaCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c DeactivateCoverageAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

func (c *DeactivateCoverageAreaCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	c.employeeID = id
	return nil
}

func (c *DeactivateCoverageAreaCommand) setAreaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("areaID: %w", err)
	}
	c.areaID = id
	return nil
}
