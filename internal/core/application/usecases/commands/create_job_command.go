package commands

import (
	"errors"
	"fmt"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand registers a scheduled visit. The details are validated again by job.NewJob;
// the command only rejects what can be checked without the aggregate.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	details job.Details

	guard guard.ConstructorGuard
}

func NewCreateJobCommand(jobID kernel.UUID, details job.Details) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		details.CustomerZip.Validate(),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c *CreateJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("jobID: %w", err)
	}
	c.jobID = id
	return nil
}
