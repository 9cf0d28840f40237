package commands

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteJobCommand(jobID, employeeID kernel.UUID) (CompleteJobCommand, error) {
	cmd := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return CompleteJobCommand{}, err
	}

	return cmd, nil
}

func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CompleteJobCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *CompleteJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("jobID: %w", err)
	}
	c.jobID = id
	return nil
}

func (c *CompleteJobCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	c.employeeID = id
	return nil
}
