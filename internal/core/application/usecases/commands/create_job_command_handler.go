package commands

import (
	"context"
	"log/slog"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
)

type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCreateJobCommandHandler(
	uowFactory JobUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     loggerOrDefault(logger).With("component", "create_job"),
	}
}

func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	j, err := job.NewJob(cmd.JobID(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, j); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger, job.NewEvent(job.EventCreated, j, time.Now().UTC()))
	return nil
}
