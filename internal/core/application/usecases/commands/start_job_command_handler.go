package commands

import (
	"context"
	"log/slog"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
)

// StartJobCommandHandler moves a claimed job to in progress. Only the claimant may start it.
type StartJobCommandHandler struct {
	transition jobTransition
}

func NewStartJobCommandHandler(
	uowFactory JobUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) StartJobCommandHandler {
	return StartJobCommandHandler{
		transition: newJobTransition(uowFactory, publisher, logger, "start_job"),
	}
}

func (h StartJobCommandHandler) Handle(ctx context.Context, cmd StartJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.JobID(), job.EventStarted, func(j *job.Job, at time.Time) error {
		return j.Start(cmd.EmployeeID(), at)
	})
}
