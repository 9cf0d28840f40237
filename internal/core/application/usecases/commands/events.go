package commands

import (
	"context"
	"log/slog"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
)

// publishEvent delivers a committed event. A failed publish is logged and swallowed because the
// state change it describes is already durable.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event job.Event) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish job event",
			"event", event.Type,
			"job_id", event.JobID.String(),
			"error", err)
	}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
