package employee_test

import (
	"testing"

	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Run("should create active employee without areas", func(t *testing.T) {
		id := kernel.NewUUID()

		e, err := employee.NewEmployee(id, "  Ana Ortiz ")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, "Ana Ortiz", e.Name())
		assert.True(t, e.IsActive())
		assert.Empty(t, e.Areas())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		e, err := employee.NewEmployee(kernel.UUID{}, " ")

		require.Error(t, err)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, employee.ErrNameIsRequired)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail validation for nil employee", func(t *testing.T) {
		var e *employee.Employee

		assert.Equal(t, employee.ErrEmployeeIsNotConstructed, e.Validate())
	})
}

func TestEmployee_AddCoverageArea(t *testing.T) {
	zip := kernel.MustZipCode("80927")

	t.Run("should add active area", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")

		area, err := e.AddCoverageArea(zip, 25)

		require.NoError(t, err)
		assert.True(t, area.IsActive())
		assert.True(t, area.EmployeeID().IsEqual(e.ID()))
		assert.Equal(t, kernel.Miles(25), area.TravelRadius())
		assert.Len(t, e.ActiveAreas(), 1)
	})

	t.Run("should reject radius out of range", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")

		for _, radius := range []kernel.Miles{0, -5, 100.5} {
			_, err := e.AddCoverageArea(zip, radius)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
		assert.Empty(t, e.Areas())
	})

	t.Run("should accept the maximum radius", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")

		_, err := e.AddCoverageArea(zip, employee.MaxTravelRadius)

		require.NoError(t, err)
	})

	t.Run("should reject duplicate active zip", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")
		_, err := e.AddCoverageArea(zip, 10)
		require.NoError(t, err)

		_, err = e.AddCoverageArea(kernel.MustZipCode("80927-0001"), 20)

		require.ErrorIs(t, err, employee.ErrCoverageAreaExists)
	})

	t.Run("should allow re-adding a deactivated zip", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")
		area, _ := e.AddCoverageArea(zip, 10)
		require.NoError(t, e.DeactivateCoverageArea(area.ID()))

		_, err := e.AddCoverageArea(zip, 20)

		require.NoError(t, err)
		assert.Len(t, e.Areas(), 2)
		assert.Len(t, e.ActiveAreas(), 1)
	})
}

func TestEmployee_ActiveAreas(t *testing.T) {
	t.Run("should skip inactive areas and sort by zip", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")
		_, _ = e.AddCoverageArea(kernel.MustZipCode("80927"), 10)
		off, _ := e.AddCoverageArea(kernel.MustZipCode("80903"), 10)
		_, _ = e.AddCoverageArea(kernel.MustZipCode("20001"), 10)
		require.NoError(t, e.DeactivateCoverageArea(off.ID()))

		active := e.ActiveAreas()

		require.Len(t, active, 2)
		assert.Equal(t, "20001", active[0].Zip().String())
		assert.Equal(t, "80927", active[1].Zip().String())
	})

	t.Run("should be empty for inactive employee", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")
		_, _ = e.AddCoverageArea(kernel.MustZipCode("80927"), 10)

		e.Deactivate()

		assert.Empty(t, e.ActiveAreas())
		assert.Len(t, e.Areas(), 1)

		e.Activate()
		assert.Len(t, e.ActiveAreas(), 1)
	})

	t.Run("should report unknown area on deactivate", func(t *testing.T) {
		e, _ := employee.NewEmployee(kernel.NewUUID(), "Ana")

		err := e.DeactivateCoverageArea(kernel.NewUUID())

		require.ErrorIs(t, err, employee.ErrCoverageAreaNotFound)
	})
}

func TestRestoreEmployee(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should restore areas and status", func(t *testing.T) {
		area, err := employee.RestoreCoverageArea(kernel.NewUUID(), id, kernel.MustZipCode("80927"), 15, false)
		require.NoError(t, err)

		e, err := employee.RestoreEmployee(id, "Ana", employee.Inactive, []*employee.CoverageArea{area})

		require.NoError(t, err)
		assert.False(t, e.IsActive())
		require.Len(t, e.Areas(), 1)
		assert.False(t, e.Areas()[0].IsActive())
	})

	t.Run("should reject area of another employee", func(t *testing.T) {
		area, _ := employee.NewCoverageArea(kernel.NewUUID(), kernel.NewUUID(), kernel.MustZipCode("80927"), 15)

		_, err := employee.RestoreEmployee(id, "Ana", employee.Active, []*employee.CoverageArea{area})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := employee.RestoreEmployee(id, "Ana", employee.Status("retired"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	st, err := employee.ParseStatus(" ACTIVE ")
	require.NoError(t, err)
	assert.Equal(t, employee.Active, st)

	_, err = employee.ParseStatus("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
