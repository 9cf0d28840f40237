package commands

import (
	"context"
	"log/slog"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
)

// CompleteJobCommandHandler finishes a job that its claimant has started.
type CompleteJobCommandHandler struct {
	transition jobTransition
}

func NewCompleteJobCommandHandler(
	uowFactory JobUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		transition: newJobTransition(uowFactory, publisher, logger, "complete_job"),
	}
}

func (h CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.JobID(), job.EventCompleted, func(j *job.Job, at time.Time) error {
		return j.Complete(cmd.EmployeeID(), at)
	})
}
