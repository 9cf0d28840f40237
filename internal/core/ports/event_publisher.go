package ports

import (
	"context"

	"yardwork/internal/core/domain/model/job"
)

// EventPublisher delivers committed lifecycle events. Delivery is best effort: callers log
// a failure and carry on, since the state change is already durable.
type EventPublisher interface {
	Publish(ctx context.Context, event job.Event) error
}
