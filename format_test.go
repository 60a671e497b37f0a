package phonekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidleathers/phonekit/metadata"
)

func TestFormatUSNumber(t *testing.T) {
	u := newTestUtil(t)

	usNumber := num(1, 6502530000)
	assert.Equal(t, "650 253 0000", u.Format(usNumber, FormatNational))
	assert.Equal(t, "+1 650 253 0000", u.Format(usNumber, FormatInternational))

	usTollfree := num(1, 8002530000)
	assert.Equal(t, "800 253 0000", u.Format(usTollfree, FormatNational))
	assert.Equal(t, "+1 800 253 0000", u.Format(usTollfree, FormatInternational))

	usPremium := num(1, 9002530000)
	assert.Equal(t, "900 253 0000", u.Format(usPremium, FormatNational))
	assert.Equal(t, "+1 900 253 0000", u.Format(usPremium, FormatInternational))
	assert.Equal(t, "tel:+1-900-253-0000", u.Format(usPremium, FormatRFC3966))

	// Numbers with national number 0 fall back to the raw input when one was
	// kept.
	usSpoof := num(1, 0)
	assert.Equal(t, "0", u.Format(usSpoof, FormatNational))
	usSpoof.RawInput = "000-000-0000"
	assert.Equal(t, "000-000-0000", u.Format(usSpoof, FormatNational))
}

func TestFormatBSNumber(t *testing.T) {
	u := newTestUtil(t)

	bsNumber := num(1, 2421234567)
	assert.Equal(t, "242 123 4567", u.Format(bsNumber, FormatNational))
	assert.Equal(t, "+1 242 123 4567", u.Format(bsNumber, FormatInternational))
}

func TestFormatGBNumber(t *testing.T) {
	u := newTestUtil(t)

	gbNumber := num(44, 2087389353)
	assert.Equal(t, "(020) 8738 9353", u.Format(gbNumber, FormatNational))
	assert.Equal(t, "+44 20 8738 9353", u.Format(gbNumber, FormatInternational))

	gbMobile := num(44, 7912345678)
	assert.Equal(t, "(07912) 345 678", u.Format(gbMobile, FormatNational))
	assert.Equal(t, "+44 7912 345 678", u.Format(gbMobile, FormatInternational))
}

func TestFormatDENumber(t *testing.T) {
	u := newTestUtil(t)

	cases := []struct {
		nationalNumber uint64
		national       string
		international  string
	}{
		{301234, "030/1234", "+49 30/1234"},
		{291123, "0291 123", "+49 291 123"},
		{29112345678, "0291 12345678", "+49 291 12345678"},
		{9123123, "09123 123", "+49 9123 123"},
		{80212345, "08021 2345", "+49 8021 2345"},
		// No pattern matches: the digits come back ungrouped.
		{1234, "1234", "+49 1234"},
	}
	for _, tc := range cases {
		deNumber := num(49, tc.nationalNumber)
		assert.Equal(t, tc.national, u.Format(deNumber, FormatNational), "national %d", tc.nationalNumber)
		assert.Equal(t, tc.international, u.Format(deNumber, FormatInternational), "international %d", tc.nationalNumber)
	}
	assert.Equal(t, "tel:+49-30-1234", u.Format(num(49, 301234), FormatRFC3966))
}

func TestFormatITNumber(t *testing.T) {
	u := newTestUtil(t)

	itNumber := &PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true}
	assert.Equal(t, "02 3661 8300", u.Format(itNumber, FormatNational))
	assert.Equal(t, "+39 02 3661 8300", u.Format(itNumber, FormatInternational))
	assert.Equal(t, "+390236618300", u.Format(itNumber, FormatE164))

	itMobile := num(39, 345678901)
	assert.Equal(t, "345 678 901", u.Format(itMobile, FormatNational))
	assert.Equal(t, "+39 345 678 901", u.Format(itMobile, FormatInternational))
	assert.Equal(t, "+39345678901", u.Format(itMobile, FormatE164))
}

func TestFormatAUNumber(t *testing.T) {
	u := newTestUtil(t)

	auNumber := num(61, 236618300)
	assert.Equal(t, "02 3661 8300", u.Format(auNumber, FormatNational))
	assert.Equal(t, "+61 2 3661 8300", u.Format(auNumber, FormatInternational))
	assert.Equal(t, "+61236618300", u.Format(auNumber, FormatE164))

	auTollfree := num(61, 1800123456)
	assert.Equal(t, "1800 123 456", u.Format(auTollfree, FormatNational))
	assert.Equal(t, "+61 1800 123 456", u.Format(auTollfree, FormatInternational))
	assert.Equal(t, "+611800123456", u.Format(auTollfree, FormatE164))
}

func TestFormatARNumber(t *testing.T) {
	u := newTestUtil(t)

	arNumber := num(54, 1187654321)
	assert.Equal(t, "011 8765-4321", u.Format(arNumber, FormatNational))
	assert.Equal(t, "+54 11 8765-4321", u.Format(arNumber, FormatInternational))

	arMobile := num(54, 91187654321)
	assert.Equal(t, "011 15 8765-4321", u.Format(arMobile, FormatNational))
	assert.Equal(t, "+54 9 11 8765 4321", u.Format(arMobile, FormatInternational))
	assert.Equal(t, "+5491187654321", u.Format(arMobile, FormatE164))
}

func TestFormatMXNumber(t *testing.T) {
	u := newTestUtil(t)

	cases := []struct {
		nationalNumber uint64
		national       string
		international  string
	}{
		{12345678900, "045 234 567 8900", "+52 1 234 567 8900"},
		{15512345678, "045 55 1234 5678", "+52 1 55 1234 5678"},
		{3312345678, "01 33 1234 5678", "+52 33 1234 5678"},
		{8211234567, "01 821 123 4567", "+52 821 123 4567"},
	}
	for _, tc := range cases {
		mxNumber := num(52, tc.nationalNumber)
		assert.Equal(t, tc.national, u.Format(mxNumber, FormatNational), "national %d", tc.nationalNumber)
		assert.Equal(t, tc.international, u.Format(mxNumber, FormatInternational), "international %d", tc.nationalNumber)
	}
}

func TestFormatE164Number(t *testing.T) {
	u := newTestUtil(t)

	assert.Equal(t, "+16502530000", u.Format(num(1, 6502530000), FormatE164))
	assert.Equal(t, "+49301234", u.Format(num(49, 301234), FormatE164))
	assert.Equal(t, "+80012345678", u.Format(num(800, 12345678), FormatE164))
}

func TestFormatNumberWithExtension(t *testing.T) {
	u := newTestUtil(t)

	nzNumber := numExt(64, 33316005, "1234")
	assert.Equal(t, "03-331 6005 ext. 1234", u.Format(nzNumber, FormatNational))
	assert.Equal(t, "tel:+64-3-331-6005;ext=1234", u.Format(nzNumber, FormatRFC3966))

	// The US plan carries its own extension prefix.
	usNumber := numExt(1, 6502530000, "4567")
	assert.Equal(t, "650 253 0000 extn. 4567", u.Format(usNumber, FormatNational))
}

func TestFormatByPattern(t *testing.T) {
	u := newTestUtil(t)

	usNumber := num(1, 6502530000)
	newFormat := &metadata.NumberFormat{
		Pattern: `(\d{3})(\d{3})(\d{4})`,
		Format:  "($1) $2-$3",
	}
	formats := []*metadata.NumberFormat{newFormat}
	assert.Equal(t, "(650) 253-0000", u.FormatByPattern(usNumber, FormatNational, formats))
	assert.Equal(t, "+1 (650) 253-0000", u.FormatByPattern(usNumber, FormatInternational, formats))
	assert.Equal(t, "tel:+1-650-253-0000", u.FormatByPattern(usNumber, FormatRFC3966, formats))

	// $NP and $FG in the rule expand to the region's prefix and the first
	// group.
	bsNumber := num(1, 2423651234)
	newFormat.NationalPrefixFormattingRule = "$NP ($FG)"
	newFormat.Format = "$1 $2-$3"
	assert.Equal(t, "1 (242) 365-1234", u.FormatByPattern(bsNumber, FormatNational, formats))
	assert.Equal(t, "+1 242 365-1234", u.FormatByPattern(bsNumber, FormatInternational, formats))

	// Italy has no national prefix, so the rule is dropped.
	itNumber := &PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true}
	itFormat := &metadata.NumberFormat{
		Pattern:                      `(\d{2})(\d{5})(\d{3})`,
		Format:                       "$1-$2 $3",
		NationalPrefixFormattingRule: "$NP$FG",
	}
	assert.Equal(t, "02-36618 300", u.FormatByPattern(itNumber, FormatNational, []*metadata.NumberFormat{itFormat}))
	assert.Equal(t, "+39 02-36618 300", u.FormatByPattern(itNumber, FormatInternational, []*metadata.NumberFormat{itFormat}))
}

func TestFormatNationalNumberWithCarrierCode(t *testing.T) {
	u := newTestUtil(t)

	arNumber := num(54, 91234125678)
	assert.Equal(t, "01234 12-5678", u.Format(arNumber, FormatNational))
	assert.Equal(t, "01234 15 12-5678", u.FormatNationalNumberWithCarrierCode(arNumber, "15"))
	assert.Equal(t, "01234 12-5678", u.FormatNationalNumberWithCarrierCode(arNumber, ""))
	assert.Equal(t, "+5491234125678", u.Format(arNumber, FormatE164))

	// Regions whose formats carry no carrier rule ignore the carrier code.
	usNumber := num(1, 4241231234)
	assert.Equal(t, "424 123 1234", u.Format(usNumber, FormatNational))
	assert.Equal(t, "424 123 1234", u.FormatNationalNumberWithCarrierCode(usNumber, "15"))

	// An uncovered calling code comes back as bare digits.
	unknownNumber := num(5, 12345)
	assert.Equal(t, "12345", u.FormatNationalNumberWithCarrierCode(unknownNumber, "89"))
}

func TestFormatNationalNumberWithPreferredCarrierCode(t *testing.T) {
	u := newTestUtil(t)

	arNumber := num(54, 91234125678)
	// Nothing recorded: the fallback applies.
	assert.Equal(t, "01234 15 12-5678", u.FormatNationalNumberWithPreferredCarrierCode(arNumber, "15"))

	arNumber.SetPreferredDomesticCarrierCode("19")
	assert.Equal(t, "01234 12-5678", u.Format(arNumber, FormatNational))
	assert.Equal(t, "01234 19 12-5678", u.FormatNationalNumberWithPreferredCarrierCode(arNumber, "15"))
	assert.Equal(t, "01234 19 12-5678", u.FormatNationalNumberWithPreferredCarrierCode(arNumber, ""))

	// A whitespace carrier code is used literally.
	arNumber.SetPreferredDomesticCarrierCode(" ")
	assert.Equal(t, "01234   12-5678", u.FormatNationalNumberWithPreferredCarrierCode(arNumber, "15"))

	// An empty recorded preference means "no carrier", so the fallback wins.
	arNumber.SetPreferredDomesticCarrierCode("")
	assert.Equal(t, "01234 15 12-5678", u.FormatNationalNumberWithPreferredCarrierCode(arNumber, "15"))
}

func TestFormatNumberForMobileDialing(t *testing.T) {
	u := newTestUtil(t)

	// Colombian fixed lines get the mobile-to-fixed carrier code.
	coFixed := num(57, 6012345678)
	assert.Equal(t, "6012345678", u.FormatNumberForMobileDialing(coFixed, "CO", false))
	assert.Equal(t, "6012345678", u.FormatNumberForMobileDialing(coFixed, "CO", true))

	deNumber := num(49, 30123456)
	assert.Equal(t, "030123456", u.FormatNumberForMobileDialing(deNumber, "DE", false))
	assert.Equal(t, "+4930123456", u.FormatNumberForMobileDialing(deNumber, "CH", false))

	// US toll-free cannot be dialled internationally.
	usTollfree := num(1, 8002530000)
	assert.Equal(t, "800 253 0000", u.FormatNumberForMobileDialing(usTollfree, "US", true))
	assert.Equal(t, "8002530000", u.FormatNumberForMobileDialing(usTollfree, "US", false))
	assert.Equal(t, "", u.FormatNumberForMobileDialing(usTollfree, "CN", false))

	usNumber := numExt(1, 6502530000, "1234")
	assert.Equal(t, "+1 650 253 0000", u.FormatNumberForMobileDialing(usNumber, "US", true))
	assert.Equal(t, "+16502530000", u.FormatNumberForMobileDialing(usNumber, "US", false))

	// An invalid US number still dials when long enough.
	usInvalid := num(1, 65025300001)
	assert.Equal(t, "+1 65025300001", u.FormatNumberForMobileDialing(usInvalid, "US", true))
	assert.Equal(t, "+165025300001", u.FormatNumberForMobileDialing(usInvalid, "US", false))

	// Star numbers keep the star.
	jpStar := num(81, 2345)
	assert.Equal(t, "*2345", u.FormatNumberForMobileDialing(jpStar, "JP", true))
	assert.Equal(t, "*2345", u.FormatNumberForMobileDialing(jpStar, "JP", false))

	intlTollfree := num(800, 12345678)
	assert.Equal(t, "+80012345678", u.FormatNumberForMobileDialing(intlTollfree, "JP", false))
	assert.Equal(t, "+800 1234 5678", u.FormatNumberForMobileDialing(intlTollfree, "JP", true))
	assert.Equal(t, "+80012345678", u.FormatNumberForMobileDialing(intlTollfree, "US", false))
	assert.Equal(t, "+80012345678", u.FormatNumberForMobileDialing(intlTollfree, "001", false))

	// UAE UANs are diallable from abroad but dialled plainly at home.
	aeUAN := num(971, 600123456)
	assert.Equal(t, "+971600123456", u.FormatNumberForMobileDialing(aeUAN, "JP", false))
	assert.Equal(t, "600123456", u.FormatNumberForMobileDialing(aeUAN, "AE", true))

	// Mexican fixed or mobile numbers always dial internationally.
	mxNumber := num(52, 3312345678)
	assert.Equal(t, "+523312345678", u.FormatNumberForMobileDialing(mxNumber, "MX", false))
	assert.Equal(t, "+523312345678", u.FormatNumberForMobileDialing(mxNumber, "US", false))

	// So do Uzbek ones.
	uzFixed := num(998, 612201234)
	uzMobile := num(998, 950123456)
	assert.Equal(t, "+998612201234", u.FormatNumberForMobileDialing(uzFixed, "UZ", false))
	assert.Equal(t, "+998950123456", u.FormatNumberForMobileDialing(uzMobile, "UZ", false))
	assert.Equal(t, "+998612201234", u.FormatNumberForMobileDialing(uzFixed, "US", false))
	assert.Equal(t, "+998950123456", u.FormatNumberForMobileDialing(uzMobile, "US", false))

	// Short and invalid numbers only dial domestically.
	deShort := num(49, 123)
	assert.Equal(t, "123", u.FormatNumberForMobileDialing(deShort, "DE", false))
	assert.Equal(t, "", u.FormatNumberForMobileDialing(deShort, "IT", false))

	usValid := num(1, 6502530000)
	assert.Equal(t, "+16502530000", u.FormatNumberForMobileDialing(usValid, "CA", false))
	assert.Equal(t, "+16502530000", u.FormatNumberForMobileDialing(usValid, "BR", false))

	usEmergency := num(1, 911)
	assert.Equal(t, "911", u.FormatNumberForMobileDialing(usEmergency, "US", false))
	assert.Equal(t, "", u.FormatNumberForMobileDialing(usEmergency, "CA", false))
	assert.Equal(t, "", u.FormatNumberForMobileDialing(usEmergency, "BR", false))

	auEmergency := &PhoneNumber{CountryCode: 61, NationalNumber: 0, ItalianLeadingZero: true, NumberOfLeadingZeros: 2}
	assert.Equal(t, "000", u.FormatNumberForMobileDialing(auEmergency, "AU", false))
	assert.Equal(t, "", u.FormatNumberForMobileDialing(auEmergency, "NZ", false))
}

func TestFormatInOriginalFormat(t *testing.T) {
	u := newTestUtil(t)

	number1, err := u.ParseAndKeepRawInput("+442087654321", "GB")
	require.NoError(t, err)
	assert.Equal(t, "+44 20 8765 4321", u.FormatInOriginalFormat(number1, "GB"))

	number2, err := u.ParseAndKeepRawInput("02087654321", "GB")
	require.NoError(t, err)
	assert.Equal(t, "(020) 8765 4321", u.FormatInOriginalFormat(number2, "GB"))

	number3, err := u.ParseAndKeepRawInput("011442087654321", "US")
	require.NoError(t, err)
	assert.Equal(t, "011 44 20 8765 4321", u.FormatInOriginalFormat(number3, "US"))

	number4, err := u.ParseAndKeepRawInput("442087654321", "GB")
	require.NoError(t, err)
	assert.Equal(t, "44 20 8765 4321", u.FormatInOriginalFormat(number4, "GB"))

	// Without raw input the national format is the best guess.
	number5, err := u.Parse("+442087654321", "GB")
	require.NoError(t, err)
	assert.Equal(t, "(020) 8765 4321", u.FormatInOriginalFormat(number5, "GB"))

	// US numbers: the national prefix is only shown when it was dialled.
	number6, err := u.ParseAndKeepRawInput("7345678901", "US")
	require.NoError(t, err)
	assert.Equal(t, "734 567 8901", u.FormatInOriginalFormat(number6, "US"))

	number7, err := u.ParseAndKeepRawInput("1-800-345-6789", "US")
	require.NoError(t, err)
	assert.Equal(t, "1 800 345 6789", u.FormatInOriginalFormat(number7, "US"))

	// A dialled Mexican mobile keeps its mobile dialling prefix.
	number8, err := u.ParseAndKeepRawInput("045(33)1234-5678", "MX")
	require.NoError(t, err)
	assert.Equal(t, "045 33 1234 5678", u.FormatInOriginalFormat(number8, "MX"))
}

func TestFormatOutOfCountryCallingNumber(t *testing.T) {
	u := newTestUtil(t)

	assert.Equal(t, "00 1 900 253 0000",
		u.FormatOutOfCountryCallingNumber(num(1, 9002530000), "DE"))

	usNumber := num(1, 6502530000)
	assert.Equal(t, "1 650 253 0000", u.FormatOutOfCountryCallingNumber(usNumber, "BS"))
	assert.Equal(t, "1 650 253 0000", u.FormatOutOfCountryCallingNumber(usNumber, "US"))
	assert.Equal(t, "00 1 650 253 0000", u.FormatOutOfCountryCallingNumber(usNumber, "PL"))

	assert.Equal(t, "011 44 7912 345 678",
		u.FormatOutOfCountryCallingNumber(num(44, 7912345678), "US"))

	deShort := num(49, 1234)
	assert.Equal(t, "00 49 1234", u.FormatOutOfCountryCallingNumber(deShort, "GB"))
	// Same country: dial it domestically.
	assert.Equal(t, "1234", u.FormatOutOfCountryCallingNumber(deShort, "DE"))

	itNumber := &PhoneNumber{CountryCode: 39, NationalNumber: 236618300, ItalianLeadingZero: true}
	assert.Equal(t, "011 39 02 3661 8300", u.FormatOutOfCountryCallingNumber(itNumber, "US"))
	assert.Equal(t, "02 3661 8300", u.FormatOutOfCountryCallingNumber(itNumber, "IT"))
	// Singapore's IDD varies, and no preference is set: fall back to "+".
	assert.Equal(t, "+39 02 3661 8300", u.FormatOutOfCountryCallingNumber(itNumber, "SG"))
	// Australia prefers 0011 out of its IDD choices.
	assert.Equal(t, "0011 39 02 3661 8300", u.FormatOutOfCountryCallingNumber(itNumber, "AU"))
	// Uzbekistan's IDD carries a wait symbol.
	assert.Equal(t, "8~10 39 02 3661 8300", u.FormatOutOfCountryCallingNumber(itNumber, "UZ"))

	assert.Equal(t, "9477 7892", u.FormatOutOfCountryCallingNumber(num(65, 94777892), "SG"))

	assert.Equal(t, "011 800 1234 5678",
		u.FormatOutOfCountryCallingNumber(num(800, 12345678), "US"))

	arMobile := num(54, 91187654321)
	assert.Equal(t, "011 54 9 11 8765 4321", u.FormatOutOfCountryCallingNumber(arMobile, "US"))
	assert.Equal(t, "0011 54 9 11 8765 4321", u.FormatOutOfCountryCallingNumber(arMobile, "AU"))

	arMobileWithExt := numExt(54, 91187654321, "1234")
	assert.Equal(t, "011 54 9 11 8765 4321 ext. 1234",
		u.FormatOutOfCountryCallingNumber(arMobileWithExt, "US"))
	assert.Equal(t, "011 15 8765-4321 ext. 1234",
		u.FormatOutOfCountryCallingNumber(arMobileWithExt, "AR"))

	// Unknown or non-geographic origins fall back to international format.
	assert.Equal(t, "+1 650 253 0000", u.FormatOutOfCountryCallingNumber(usNumber, "AQ"))
	assert.Equal(t, "+1 650 253 0000", u.FormatOutOfCountryCallingNumber(usNumber, "001"))
}

func TestFormatOutOfCountryKeepingAlphaChars(t *testing.T) {
	u := newTestUtil(t)

	alphaNumber := &PhoneNumber{
		CountryCode:    1,
		NationalNumber: 8007493524,
		RawInput:       "1800 six-flag",
	}
	assert.Equal(t, "0011 1 800 SIX-FLAG", u.FormatOutOfCountryKeepingAlphaChars(alphaNumber, "AU"))
	assert.Equal(t, "1 800 SIX-FLAG", u.FormatOutOfCountryKeepingAlphaChars(alphaNumber, "US"))

	alphaNumber.RawInput = "800 SIX-flag"
	alphaNumber.Extension = "1234"
	assert.Equal(t, "0011 1 800 SIX-FLAG extn. 1234",
		u.FormatOutOfCountryKeepingAlphaChars(alphaNumber, "AU"))

	// No raw input left: format the digits instead.
	alphaNumber.RawInput = ""
	alphaNumber.Extension = ""
	assert.Equal(t, "00 1 800 749 3524", u.FormatOutOfCountryKeepingAlphaChars(alphaNumber, "DE"))
}
