package memory_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"yardwork/internal/adapters/out/memory"
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/job"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(t *testing.T, day int) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), job.Details{
		CustomerName:      "Jane",
		CustomerZip:       kernel.MustZipCode("80927"),
		ServiceType:       "leaf cleanup",
		ScheduledDate:     time.Date(2026, 10, 20+day, 9, 0, 0, 0, time.UTC),
		PotentialEarnings: 5000,
	})
	require.NoError(t, err)
	return j
}

func TestJobRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	repo := uow.JobRepository()
	j := newJob(t, 0)

	require.NoError(t, repo.Add(ctx, j))

	got, err := repo.Get(ctx, j.ID())
	require.NoError(t, err)
	assert.Equal(t, j.Snapshot(), got.Snapshot())

	require.ErrorIs(t, repo.Add(ctx, j), memory.ErrDuplicateKey)

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestJobRepository_GetReturnsIndependentCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().JobRepository()
	j := newJob(t, 0)
	require.NoError(t, repo.Add(ctx, j))

	copyA, _ := repo.Get(ctx, j.ID())
	require.NoError(t, copyA.Claim(kernel.NewUUID(), time.Now()))

	copyB, _ := repo.Get(ctx, j.ID())
	assert.Equal(t, job.Available, copyB.Status())
}

func TestJobRepository_UpdateIfStatus(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().JobRepository()
	j := newJob(t, 0)
	require.NoError(t, repo.Add(ctx, j))

	t.Run("should reject stale expected status", func(t *testing.T) {
		loaded, _ := repo.Get(ctx, j.ID())
		require.NoError(t, loaded.Claim(kernel.NewUUID(), time.Now()))

		ok, err := repo.UpdateIfStatus(ctx, loaded, job.Claimed)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should let exactly one concurrent writer win", func(t *testing.T) {
		const writers = 16
		var wins atomic.Int32
		var wg sync.WaitGroup

		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				loaded, err := repo.Get(ctx, j.ID())
				if !assert.NoError(t, err) {
					return
				}
				if loaded.Claim(kernel.NewUUID(), time.Now()) != nil {
					return
				}
				ok, err := repo.UpdateIfStatus(ctx, loaded, job.Available)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
		stored, _ := repo.Get(ctx, j.ID())
		assert.Equal(t, job.Claimed, stored.Status())
	})

	t.Run("should report missing job as not updated", func(t *testing.T) {
		ok, err := repo.UpdateIfStatus(ctx, newJob(t, 1), job.Available)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestJobRepository_ListByStatus(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().JobRepository()
	later := newJob(t, 3)
	sooner := newJob(t, 1)
	claimed := newJob(t, 2)
	require.NoError(t, claimed.Claim(kernel.NewUUID(), time.Now()))
	for _, j := range []*job.Job{later, sooner, claimed} {
		require.NoError(t, repo.Add(ctx, j))
	}

	available, err := repo.ListByStatus(ctx, job.Available)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.True(t, available[0].IsEqual(sooner))
	assert.True(t, available[1].IsEqual(later))

	all, err := repo.ListByStatus(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	j := newJob(t, 0)

	seed := factory.Create()
	require.NoError(t, seed.JobRepository().Add(ctx, j))

	t.Run("should undo writes made in the transaction", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		repo := uow.JobRepository()

		loaded, _ := repo.Get(ctx, j.ID())
		require.NoError(t, loaded.Claim(kernel.NewUUID(), time.Now()))
		ok, err := repo.UpdateIfStatus(ctx, loaded, job.Available)
		require.NoError(t, err)
		require.True(t, ok)
		extra := newJob(t, 1)
		require.NoError(t, repo.Add(ctx, extra))

		require.NoError(t, uow.Rollback(ctx))

		reader := factory.Create().JobRepository()
		stored, _ := reader.Get(ctx, j.ID())
		assert.Equal(t, job.Available, stored.Status())
		_, err = reader.Get(ctx, extra.ID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should keep committed writes", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		extra := newJob(t, 2)
		require.NoError(t, uow.JobRepository().Add(ctx, extra))
		require.NoError(t, uow.Commit(ctx))

		require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
		_, err := factory.Create().JobRepository().Get(ctx, extra.ID())
		assert.NoError(t, err)
	})
}

func TestEmployeeRepository(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	repo := factory.Create().EmployeeRepository()

	active, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")
	_, _ = active.AddCoverageArea(kernel.MustZipCode("80927"), 10)
	off, _ := active.AddCoverageArea(kernel.MustZipCode("80903"), 10)
	require.NoError(t, active.DeactivateCoverageArea(off.ID()))

	inactive, _ := employee.NewEmployee(kernel.NewUUID(), "Ben")
	_, _ = inactive.AddCoverageArea(kernel.MustZipCode("20001"), 10)
	inactive.Deactivate()

	require.NoError(t, repo.Add(ctx, active))
	require.NoError(t, repo.Add(ctx, inactive))

	t.Run("should round trip areas", func(t *testing.T) {
		got, err := repo.Get(ctx, active.ID())

		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name())
		assert.Len(t, got.Areas(), 2)
		assert.Len(t, got.ActiveAreas(), 1)
	})

	t.Run("should list only active areas of active employees", func(t *testing.T) {
		areas, err := repo.ListActiveAreas(ctx)

		require.NoError(t, err)
		require.Len(t, areas, 1)
		assert.Equal(t, "80927", areas[0].Zip().String())
		assert.True(t, areas[0].EmployeeID().IsEqual(active.ID()))
	})

	t.Run("should persist updates", func(t *testing.T) {
		got, _ := repo.Get(ctx, inactive.ID())
		got.Activate()
		require.NoError(t, repo.Update(ctx, got))

		areas, err := repo.ListActiveAreas(ctx)
		require.NoError(t, err)
		assert.Len(t, areas, 2)
	})

	t.Run("should fail update of unknown employee", func(t *testing.T) {
		ghost, _ := employee.NewEmployee(kernel.NewUUID(), "Ghost")

		require.ErrorIs(t, repo.Update(ctx, ghost), errs.ErrObjectNotFound)
	})
}
