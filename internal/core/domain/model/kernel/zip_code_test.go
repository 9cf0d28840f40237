package kernel_test

import (
	"testing"

	"yardwork/internal/core/domain/model/kernel"
	"yardwork/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZipCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "five digits", raw: "80927", want: "80927"},
		{name: "leading zero kept", raw: "02108", want: "02108"},
		{name: "whitespace trimmed", raw: " 10001\t", want: "10001"},
		{name: "zip plus four", raw: "20001-1234", want: "20001"},
		{name: "empty", raw: "  ", wantErr: errs.ErrValueIsRequired},
		{name: "too short", raw: "8092", wantErr: errs.ErrValueIsInvalid},
		{name: "too long", raw: "809271", wantErr: errs.ErrValueIsInvalid},
		{name: "letters", raw: "8O927", wantErr: errs.ErrValueIsInvalid},
		{name: "bad plus four", raw: "20001-12", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := kernel.NewZipCode(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, z.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, z.Validate())
			assert.Equal(t, tt.want, z.String())
		})
	}
}

func TestZipCode_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustZipCode("80927").IsEqual(kernel.MustZipCode("80927-0001")))
	assert.False(t, kernel.MustZipCode("80927").IsEqual(kernel.MustZipCode("80903")))
}

func TestMustZipCode_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustZipCode("abc") })
}
