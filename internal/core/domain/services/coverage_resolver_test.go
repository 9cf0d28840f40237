package services_test

import (
	"testing"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func area(t *testing.T, employeeID kernel.UUID, zip string, radius kernel.Miles) *employee.CoverageArea {
	t.Helper()
	a, err := employee.NewCoverageArea(kernel.NewUUID(), employeeID, kernel.MustZipCode(zip), radius)
	require.NoError(t, err)
	return a
}

func inactiveArea(t *testing.T, employeeID kernel.UUID, zip string, radius kernel.Miles) *employee.CoverageArea {
	t.Helper()
	a, err := employee.RestoreCoverageArea(kernel.NewUUID(), employeeID, kernel.MustZipCode(zip), radius, false)
	require.NoError(t, err)
	return a
}

func TestCoverageResolver_Resolve(t *testing.T) {
	resolver := services.NewCoverageResolver(newTestGeoIndex(t))
	workerA := kernel.NewUUID()
	workerB := kernel.NewUUID()

	t.Run("should cover customer in worker's own zip", func(t *testing.T) {
		result := resolver.Resolve(kernel.MustZipCode("80927"), []*employee.CoverageArea{
			area(t, workerA, "80927", 10),
		})

		require.True(t, result.Covered)
		assert.True(t, result.EmployeeID.IsEqual(workerA))
		assert.Equal(t, "80927", result.WorkerZip.String())
		assert.Equal(t, kernel.Miles(0), result.Distance)
		assert.Empty(t, result.Reason)
	})

	t.Run("should not cover distant customer", func(t *testing.T) {
		result := resolver.Resolve(kernel.MustZipCode("10001"), []*employee.CoverageArea{
			area(t, workerA, "80927", 10),
			area(t, workerB, "20001", 25),
		})

		assert.False(t, result.Covered)
		assert.Equal(t, services.ReasonNoEligibleWorker, result.Reason)
	})

	t.Run("should stop at unknown customer zip", func(t *testing.T) {
		result := resolver.Resolve(kernel.MustZipCode("99999"), []*employee.CoverageArea{
			area(t, workerA, "80927", 100),
		})

		assert.False(t, result.Covered)
		assert.Equal(t, services.ReasonLocationUnknown, result.Reason)
	})

	t.Run("should skip areas with unknown worker zip", func(t *testing.T) {
		result := resolver.Resolve(kernel.MustZipCode("80927"), []*employee.CoverageArea{
			area(t, workerA, "99999", 100),
		})

		assert.False(t, result.Covered)
		assert.Equal(t, services.ReasonNoEligibleWorker, result.Reason)
	})

	t.Run("should ignore inactive areas", func(t *testing.T) {
		result := resolver.Resolve(kernel.MustZipCode("80927"), []*employee.CoverageArea{
			inactiveArea(t, workerA, "80927", 10),
		})

		assert.False(t, result.Covered)
	})

	t.Run("should include the radius boundary", func(t *testing.T) {
		geo := newTestGeoIndex(t)
		d, ok := geo.Distance(kernel.MustZipCode("80927"), kernel.MustZipCode("80903"))
		require.True(t, ok)

		result := resolver.Resolve(kernel.MustZipCode("80903"), []*employee.CoverageArea{
			area(t, workerA, "80927", d),
		})

		assert.True(t, result.Covered)
	})

	t.Run("should pick the nearest eligible area", func(t *testing.T) {
		result := resolver.Resolve(kernel.MustZipCode("80903"), []*employee.CoverageArea{
			area(t, workerA, "80202", 100),
			area(t, workerB, "80918", 20),
		})

		require.True(t, result.Covered)
		assert.True(t, result.EmployeeID.IsEqual(workerB))
		assert.Equal(t, "80918", result.WorkerZip.String())
	})

	t.Run("should break ties by employee id regardless of order", func(t *testing.T) {
		low := mustUUID(t, "11111111-1111-4111-8111-111111111111")
		high := mustUUID(t, "ffffffff-ffff-4fff-8fff-ffffffffffff")
		areas := []*employee.CoverageArea{
			area(t, high, "80927", 10),
			area(t, low, "80927", 10),
		}

		first := resolver.Resolve(kernel.MustZipCode("80927"), areas)
		second := resolver.Resolve(kernel.MustZipCode("80927"), []*employee.CoverageArea{areas[1], areas[0]})

		assert.True(t, first.EmployeeID.IsEqual(low))
		assert.Equal(t, first, second)
	})

	t.Run("should only cover within radius for every area", func(t *testing.T) {
		geo := newTestGeoIndex(t)
		areas := []*employee.CoverageArea{
			area(t, workerA, "80927", 5),
			area(t, workerA, "80202", 30),
			area(t, workerB, "20001", 3),
		}

		for _, z := range testZips {
			customer := kernel.MustZipCode(z.zip)
			result := resolver.Resolve(customer, areas)

			var wantCovered bool
			best := kernel.Miles(-1)
			for _, a := range areas {
				d, _ := geo.Distance(customer, a.Zip())
				if d <= a.TravelRadius() {
					wantCovered = true
					if best < 0 || d < best {
						best = d
					}
				}
			}

			assert.Equal(t, wantCovered, result.Covered, z.zip)
			if wantCovered {
				assert.Equal(t, best, result.Distance, z.zip)
			}
		}
	})
}

func TestCoverageResolver_ResolveFor(t *testing.T) {
	resolver := services.NewCoverageResolver(newTestGeoIndex(t))

	t.Run("should use only the employee's own areas", func(t *testing.T) {
		e, err := employee.NewEmployee(kernel.NewUUID(), "Ana")
		require.NoError(t, err)
		_, err = e.AddCoverageArea(kernel.MustZipCode("80927"), 15)
		require.NoError(t, err)

		assert.True(t, resolver.ResolveFor(kernel.MustZipCode("80903"), e).Covered)
		assert.False(t, resolver.ResolveFor(kernel.MustZipCode("20001"), e).Covered)
	})

	t.Run("should not cover for inactive employee", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")
		_, _ = e.AddCoverageArea(kernel.MustZipCode("80927"), 15)
		e.Deactivate()

		result := resolver.ResolveFor(kernel.MustZipCode("80927"), e)

		assert.False(t, result.Covered)
		assert.Equal(t, services.ReasonNoEligibleWorker, result.Reason)
	})

	t.Run("should report unknown customer zip first", func(t *testing.T) {
		result := resolver.ResolveFor(kernel.MustZipCode("99999"), nil)

		assert.Equal(t, services.ReasonLocationUnknown, result.Reason)
	})
}
