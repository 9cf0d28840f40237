package commands

import (
	"errors"
	"fmt"
	"strings"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

const maxCancelReasonLength = 500

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand is issued by a customer or an operator, never by the worker.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	reason string

	guard guard.ConstructorGuard
}

func NewCancelJobCommand(jobID kernel.UUID, reason string) (CancelJobCommand, error) {
	cmd := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setReason(reason),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return cmd, nil
}

func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CancelJobCommand) Reason() string {
	return c.reason
}

func (c *CancelJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("jobID: %w", err)
	}
	c.jobID = id
	return nil
}

func (c *CancelJobCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if len(reason) > maxCancelReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 0, maxCancelReasonLength)
	}
	c.reason = reason
	return nil
}
