package commands

import (
	"context"
	"errors"
	"time"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds retries of store failures. Business outcomes are never retried.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy retries three times starting at 50ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
	}
}

// NoRetry disables retries.
func NoRetry() RetryPolicy {
	return RetryPolicy{}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		exp.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		exp.MaxInterval = p.MaxInterval
	}
	// the caller's context deadline is the only overall limit
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, p.MaxRetries), ctx)
}

// retryable wraps errors that can never succeed on retry as permanent.
func retryable(err error) error {
	if err == nil || isTransient(err) {
		return err
	}
	return backoff.Permanent(err)
}

// isTransient reports whether err may be a passing store failure. Domain validation errors,
// lifecycle violations and cancelled contexts are final.
func isTransient(err error) bool {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, job.ErrInvalidTransition),
		errors.Is(err, job.ErrNotClaimant),
		errors.Is(err, ErrConcurrentModification):
		return false
	default:
		return true
	}
}
