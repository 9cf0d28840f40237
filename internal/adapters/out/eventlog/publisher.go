// Package eventlog contains event publishers that need no broker: one writes every event to the
// structured log and one fans an event out to several publishers.
package eventlog

import (
	"context"
	"errors"
	"log/slog"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/ports"
)

// LoggingPublisher records each event as an info line.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{logger: logger.With("component", "job_events")}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event job.Event) error {
	attrs := []slog.Attr{
		slog.String("event", string(event.Type)),
		slog.String("job_id", event.JobID.String()),
		slog.String("status", event.Status.String()),
		slog.String("customer_zip", event.CustomerZip.String()),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.EmployeeID != nil {
		attrs = append(attrs, slog.String("employee_id", event.EmployeeID.String()))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, "job event", attrs...)
	return nil
}

// FanOut delivers each event to every publisher, even when an earlier one fails.
type FanOut []ports.EventPublisher

func (f FanOut) Publish(ctx context.Context, event job.Event) error {
	var err error
	for _, p := range f {
		if p == nil {
			continue
		}
		err = errors.Join(err, p.Publish(ctx, event))
	}
	return err
}
