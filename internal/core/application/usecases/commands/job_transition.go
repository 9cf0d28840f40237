package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/ports"
)

// ErrConcurrentModification is returned when the job changed between read and conditional write.
var ErrConcurrentModification = errors.New("job was modified concurrently")

// jobTransition loads a job, applies one lifecycle step and writes it back with a conditional
// update on the status it was read in. It is shared by the start, complete and cancel handlers.
type jobTransition struct {
	uowFactory JobUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

func newJobTransition(
	uowFactory JobUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	component string,
) jobTransition {
	return jobTransition{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     loggerOrDefault(logger).With("component", component),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (t jobTransition) apply(
	ctx context.Context,
	jobID kernel.UUID,
	eventType job.EventType,
	step func(j *job.Job, at time.Time) error,
) error {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	j, err := jobRepo.Get(ctx, jobID)
	if err != nil {
		return err
	}

	at := t.now()
	previous := j.Status()
	if err = step(j, at); err != nil {
		return err
	}

	updated, err := jobRepo.UpdateIfStatus(ctx, j, previous)
	if err != nil {
		return err
	}
	if !updated {
		return ErrConcurrentModification
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	t.logger.InfoContext(ctx, "job status changed",
		"job_id", jobID.String(),
		"from", previous.String(),
		"to", j.Status().String())

	publishEvent(ctx, t.publisher, t.logger, job.NewEvent(eventType, j, at))
	return nil
}
