package queries_test

import (
	"testing"

	"yardwork/internal/core/application/usecases/queries"
	"yardwork/internal/core/domain/model/employee"
	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetZipsWithinRadiusQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetZipsWithinRadiusQueryHandler(testGeo(t))

	t.Run("should list nearby zips nearest first", func(t *testing.T) {
		query, err := queries.NewGetZipsWithinRadiusQuery(kernel.MustZipCode("80903"), 10)
		require.NoError(t, err)

		zips, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, zips, 3)
		assert.Equal(t, "80903", zips[0].Zip.String())
		assert.Equal(t, "80918", zips[1].Zip.String())
		assert.Equal(t, "80927", zips[2].Zip.String())
	})

	t.Run("should report centre missing from reference table", func(t *testing.T) {
		query, err := queries.NewGetZipsWithinRadiusQuery(kernel.MustZipCode("99999"), 10)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should bound the radius", func(t *testing.T) {
		for _, radius := range []kernel.Miles{0, employee.MaxTravelRadius + 0.5} {
			_, err := queries.NewGetZipsWithinRadiusQuery(kernel.MustZipCode("80903"), radius)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}
