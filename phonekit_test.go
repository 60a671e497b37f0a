package phonekit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidleathers/phonekit/internal/testmeta"
)

// newTestUtil builds an engine over the compact fixture plans. Tests share
// one store; the engine is stateless apart from its regex cache.
func newTestUtil(t *testing.T) *Util {
	t.Helper()
	return New(testmeta.NewStore(), nil)
}

func num(countryCode int, nationalNumber uint64) *PhoneNumber {
	return &PhoneNumber{CountryCode: countryCode, NationalNumber: nationalNumber}
}

func numExt(countryCode int, nationalNumber uint64, extension string) *PhoneNumber {
	return &PhoneNumber{CountryCode: countryCode, NationalNumber: nationalNumber, Extension: extension}
}

func mustParse(t *testing.T, u *Util, input, region string) *PhoneNumber {
	t.Helper()
	number, err := u.Parse(input, region)
	require.NoError(t, err, "parse %q (region %s)", input, region)
	return number
}
