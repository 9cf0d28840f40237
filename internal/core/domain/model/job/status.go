package job

import (
	"errors"
	"fmt"
	"strings"

	"yardwork/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel behind every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid job status transition")

// Status is the lifecycle state of a job.
//
//	Available ──> Claimed ──> InProgress ──> Completed
//	    │            │
//	    └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Nothing ever moves back to an earlier state,
// and a cancelled job is never reopened.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Available
	Claimed
	InProgress
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:    "unknown",
	Available:  "available",
	Claimed:    "claimed",
	InProgress: "in_progress",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

// transitions lists every edge of the lifecycle graph.
var transitions = map[Status][]Status{
	Available:  {Claimed, Cancelled},
	Claimed:    {InProgress, Cancelled},
	InProgress: {Completed},
}

// InvalidTransitionError reports a transition absent from the lifecycle graph.
// It always indicates a caller bug or a lost race and is logged loudly by the transport.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ParseStatus maps a lowercase status name back to a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range statusNames {
		if st != Unknown && name == needle {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a job status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether s -> to is an edge of the lifecycle graph.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns to if the edge exists, or an *InvalidTransitionError.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return s, &InvalidTransitionError{From: s, To: to}
	}
	return to, nil
}

// RequiresClaimant reports whether a job in this status must carry claimedBy.
func (s Status) RequiresClaimant() bool {
	return s == Claimed || s == InProgress || s == Completed
}
