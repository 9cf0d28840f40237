package commands

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrClaimJobCommandIsNotConstructed = errors.New(
	"ClaimJobCommand must be created via NewClaimJobCommand constructor",
)

// ClaimJobCommand asks for exclusive ownership of a job on behalf of a worker.
// The (jobID, employeeID) pair is the idempotency key.
type ClaimJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimJobCommand(jobID, employeeID kernel.UUID) (ClaimJobCommand, error) {
	cmd := ClaimJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return ClaimJobCommand{}, err
	}

	return cmd, nil
}

func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

func (c ClaimJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c ClaimJobCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *ClaimJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("jobID: %w", err)
	}
	c.jobID = id
	return nil
}

func (c *ClaimJobCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("employeeID: %w", err)
	}
	c.employeeID = id
	return nil
}
