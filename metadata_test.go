package phonekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForRegion(t *testing.T) {
	u := newTestUtil(t)

	us := u.GetMetadataForRegion("US")
	require.NotNil(t, us)
	assert.Equal(t, "US", us.ID)
	assert.Equal(t, 1, us.CountryCode)
	assert.Equal(t, "011", us.InternationalPrefix)
	assert.True(t, us.HasNationalPrefix())
	assert.Len(t, us.NumberFormats, 2)
	assert.Equal(t, `(\d{3})(\d{3})(\d{4})`, us.NumberFormats[1].Pattern)
	assert.Equal(t, "$1 $2 $3", us.NumberFormats[1].Format)
	assert.Equal(t, `[13-689]\d{9}|2[0-35-9]\d{8}`, us.GeneralDesc.NationalNumberPattern)
	assert.Equal(t, []int{10}, us.GeneralDesc.PossibleLength)
	assert.Equal(t, us.GeneralDesc.NationalNumberPattern, us.FixedLine.NationalNumberPattern)
	// Class lengths equal to the general ones are left empty and inherited.
	assert.Empty(t, us.TollFree.PossibleLength)
	assert.Equal(t, `900\d{7}`, us.PremiumRate.NationalNumberPattern)
	assert.Nil(t, us.SharedCost)

	de := u.GetMetadataForRegion("DE")
	require.NotNil(t, de)
	assert.Equal(t, 49, de.CountryCode)
	assert.Equal(t, "00", de.InternationalPrefix)
	assert.Equal(t, "0", de.NationalPrefix)
	assert.Len(t, de.NumberFormats, 6)
	assert.Equal(t, []string{"900"}, de.NumberFormats[5].LeadingDigits)
	assert.Equal(t, `(\d{3})(\d{3,4})(\d{4})`, de.NumberFormats[5].Pattern)
	assert.Equal(t, "$1 $2 $3", de.NumberFormats[5].Format)
	assert.Len(t, de.GeneralDesc.PossibleLengthLocalOnly, 2)
	assert.Len(t, de.GeneralDesc.PossibleLength, 8)
	assert.Empty(t, de.FixedLine.PossibleLength)
	assert.Equal(t, "30123456", de.FixedLine.ExampleNumber)
	assert.Len(t, de.Mobile.PossibleLength, 2)
	assert.Equal(t, 10, de.TollFree.PossibleLength[0])
	assert.Equal(t, `900([135]\d{6}|9\d{7})`, de.PremiumRate.NationalNumberPattern)

	ar := u.GetMetadataForRegion("AR")
	require.NotNil(t, ar)
	assert.Equal(t, 54, ar.CountryCode)
	assert.Equal(t, "00", ar.InternationalPrefix)
	assert.Equal(t, "0", ar.NationalPrefix)
	assert.Equal(t, `0(?:(11|343|3715)15)?`, ar.NationalPrefixForParsing)
	assert.Equal(t, "9$1", ar.NationalPrefixTransformRule)
	assert.Len(t, ar.NumberFormats, 5)
	assert.Equal(t, "$2 15 $3-$4", ar.NumberFormats[2].Format)
	assert.Equal(t, `(\d)(\d{4})(\d{2})(\d{4})`, ar.NumberFormats[3].Pattern)
	assert.Equal(t, ar.NumberFormats[3].Pattern, ar.IntlNumberFormats[3].Pattern)
	assert.Equal(t, "$1 $2 $3 $4", ar.IntlNumberFormats[3].Format)
}

func TestMetadataForNonGeographicalRegion(t *testing.T) {
	u := newTestUtil(t)

	meta := u.GetMetadataForNonGeographicalRegion(800)
	require.NotNil(t, meta)
	assert.Equal(t, NonGeoRegionID, meta.ID)
	assert.Equal(t, 800, meta.CountryCode)
	assert.Equal(t, `(\d{4})(\d{4})`, meta.NumberFormats[0].Pattern)
	assert.Equal(t, "12345678", meta.TollFree.ExampleNumber)

	assert.Nil(t, u.GetMetadataForNonGeographicalRegion(441))
	// Geographic calling codes are not non-geo entities.
	assert.Nil(t, u.GetMetadataForNonGeographicalRegion(1))
}
