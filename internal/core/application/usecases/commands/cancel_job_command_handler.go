package commands

import (
	"context"
	"log/slog"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
)

// CancelJobCommandHandler cancels a job that has not been started yet.
type CancelJobCommandHandler struct {
	transition jobTransition
}

func NewCancelJobCommandHandler(
	uowFactory JobUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		transition: newJobTransition(uowFactory, publisher, logger, "cancel_job"),
	}
}

func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.JobID(), job.EventCancelled, func(j *job.Job, at time.Time) error {
		return j.Cancel(cmd.Reason(), at)
	})
}
