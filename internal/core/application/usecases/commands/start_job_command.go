package commands

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrStartJobCommandIsNotConstructed = errors.New(
	"StartJobCommand must be created via NewStartJobCommand constructor",
)

type StartJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartJobCommand(jobID, employeeID kernel.UUID) (StartJobCommand, error) {
	cmd := StartJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return StartJobCommand{}, err
	}

	return cmd, nil
}

func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}

func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c StartJobCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *StartJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("jobID: %w", err)
	}
	c.jobID = id
	return nil
}

func (c *StartJobCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	c.employeeID = id
	return nil
}
