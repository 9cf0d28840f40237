package kernel

import (
	"fmt"
	"strings"

	"yardwork/internal/pkg/errs"
	"yardwork/internal/pkg/guard"
)

const zipCodeLength = 5

// ErrZipCodeIsNotConstructed is returned when a zero-value ZipCode is used.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError("zip code must be created via NewZipCode")

// ZipCode is a five-digit US postal code.
//
// NewZipCode accepts surrounding whitespace and the ZIP+4 form ("80927-1234"), keeping only the
// five-digit prefix. A well-formed ZipCode may still be absent from the reference table; that is
// reported by the GeoIndex, not here.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode parses and normalises raw.
func NewZipCode(raw string) (ZipCode, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ZipCode{}, errs.NewValueIsRequiredError("zip")
	}

	if base, plus4, found := strings.Cut(s, "-"); found {
		if len(plus4) != 4 || !allDigits(plus4) {
			return ZipCode{}, errs.NewValueIsInvalidErrorWithCause("zip", fmt.Errorf("%q is not a ZIP+4 code", raw))
		}
		s = base
	}

	if len(s) != zipCodeLength || !allDigits(s) {
		return ZipCode{}, errs.NewValueIsInvalidErrorWithCause("zip", fmt.Errorf("%q is not a 5-digit ZIP code", raw))
	}

	return ZipCode{value: s, guard: guard.NewConstructorGuard()}, nil
}

// MustZipCode is NewZipCode for literals known to be valid. It panics otherwise.
func MustZipCode(raw string) ZipCode {
	z, err := NewZipCode(raw)
	if err != nil {
		panic(err)
	}
	return z
}

func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

func (z ZipCode) String() string {
	return z.value
}

func (z ZipCode) IsEqual(other ZipCode) bool {
	return z.value == other.value
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
