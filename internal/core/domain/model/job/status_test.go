package job_test

import (
	"errors"
	"testing"

	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []job.Status{job.Available, job.Claimed, job.InProgress, job.Completed, job.Cancelled}

func TestStatus_TransitionGraph(t *testing.T) {
	allowed := map[[2]job.Status]bool{
		{job.Available, job.Claimed}:    true,
		{job.Available, job.Cancelled}:  true,
		{job.Claimed, job.InProgress}:   true,
		{job.Claimed, job.Cancelled}:    true,
		{job.InProgress, job.Completed}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]job.Status{from, to}]

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)

			next, err := from.TransitionTo(to)
			if want {
				require.NoError(t, err)
				assert.Equal(t, to, next)
				continue
			}

			require.Error(t, err)
			assert.Equal(t, from, next)
			assert.True(t, errors.Is(err, job.ErrInvalidTransition))

			var transitionErr *job.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, from, transitionErr.From)
			assert.Equal(t, to, transitionErr.To)
		}
	}
}

func TestStatus_TerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range []job.Status{job.Completed, job.Cancelled} {
		assert.True(t, s.IsTerminal())
		for _, to := range allStatuses {
			assert.False(t, s.CanTransitionTo(to), "%s -> %s", s, to)
		}
	}

	assert.False(t, job.Available.IsTerminal())
	assert.False(t, job.Claimed.IsTerminal())
	assert.False(t, job.InProgress.IsTerminal())
}

func TestStatus_InProgressCannotBeCancelled(t *testing.T) {
	_, err := job.InProgress.TransitionTo(job.Cancelled)

	require.Error(t, err)
	assert.Equal(t, "invalid job status transition: in_progress -> cancelled", err.Error())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every known name", func(t *testing.T) {
		for _, s := range allStatuses {
			parsed, err := job.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should ignore case and whitespace", func(t *testing.T) {
		parsed, err := job.ParseStatus("  IN_PROGRESS ")

		require.NoError(t, err)
		assert.Equal(t, job.InProgress, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "done"} {
			_, err := job.ParseStatus(raw)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses {
		require.NoError(t, s.Validate())
	}

	assert.ErrorIs(t, job.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, job.Status(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", job.Status(42).String())
}

func TestStatus_RequiresClaimant(t *testing.T) {
	assert.False(t, job.Available.RequiresClaimant())
	assert.True(t, job.Claimed.RequiresClaimant())
	assert.True(t, job.InProgress.RequiresClaimant())
	assert.True(t, job.Completed.RequiresClaimant())
	assert.False(t, job.Cancelled.RequiresClaimant())
}
