package phonekit

import (
	"errors"
	"strings"
)

// stripForMatching clears the fields that record how a number was typed, so
// comparison looks only at what was dialled.
func stripForMatching(number *PhoneNumber) *PhoneNumber {
	copied := number.clone()
	copied.RawInput = ""
	copied.CountryCodeSource = SourceUnspecified
	copied.PreferredDomesticCarrierCode = nil
	return copied
}

// isNationalNumberSuffixOfTheOther reports whether one national number's
// decimal form ends with the other's.
func isNationalNumberSuffixOfTheOther(first, second *PhoneNumber) bool {
	firstNumber := formatUint(first.NationalNumber)
	secondNumber := formatUint(second.NationalNumber)
	return strings.HasSuffix(firstNumber, secondNumber) ||
		strings.HasSuffix(secondNumber, firstNumber)
}

// IsNumberMatch compares two parsed numbers. ExactMatch needs equal country
// codes, national numbers, extensions and leading zeros; NSNMatch tolerates a
// missing country code on either side; ShortNSNMatch accepts one national
// number being a suffix of the other. Two different non-empty extensions
// never match.
func (u *Util) IsNumberMatch(first, second *PhoneNumber) MatchType {
	firstNumber := stripForMatching(first)
	secondNumber := stripForMatching(second)
	if firstNumber.Extension != "" && secondNumber.Extension != "" &&
		firstNumber.Extension != secondNumber.Extension {
		return NoMatch
	}
	if firstNumber.CountryCode != 0 && secondNumber.CountryCode != 0 {
		if firstNumber.equalCore(secondNumber) {
			return ExactMatch
		}
		if firstNumber.CountryCode == secondNumber.CountryCode &&
			isNationalNumberSuffixOfTheOther(firstNumber, secondNumber) {
			return ShortNSNMatch
		}
		return NoMatch
	}
	// At least one side has no country code: compare national numbers only.
	firstNumber.CountryCode = 0
	secondNumber.CountryCode = 0
	if firstNumber.equalCore(secondNumber) {
		return NSNMatch
	}
	if isNationalNumberSuffixOfTheOther(firstNumber, secondNumber) {
		return ShortNSNMatch
	}
	return NoMatch
}

// IsNumberMatchWithOneString compares a parsed number against a raw string.
// When the string carries no country code it is reparsed with the number's
// own region, and an exact match is reported as NSNMatch since the country
// code was assumed.
func (u *Util) IsNumberMatchWithOneString(first *PhoneNumber, second string) MatchType {
	secondNumber, err := u.Parse(second, UnknownRegionID)
	if err == nil {
		return u.IsNumberMatch(first, secondNumber)
	}
	if !errors.Is(err, ErrInvalidCountryCode) {
		return NotANumber
	}
	regionCode := u.GetRegionCodeForCountryCode(first.CountryCode)
	if regionCode != UnknownRegionID {
		secondWithRegion, err := u.Parse(second, regionCode)
		if err != nil {
			return NotANumber
		}
		match := u.IsNumberMatch(first, secondWithRegion)
		if match == ExactMatch {
			return NSNMatch
		}
		return match
	}
	secondNumber, err = u.parseHelper(second, "", false, false)
	if err != nil {
		return NotANumber
	}
	return u.IsNumberMatch(first, secondNumber)
}

// IsNumberMatchWithTwoStrings compares two raw strings, parsing each without
// a default region and falling back to region-free parsing when neither
// carries a country code.
func (u *Util) IsNumberMatchWithTwoStrings(first, second string) MatchType {
	firstNumber, err := u.Parse(first, UnknownRegionID)
	if err == nil {
		return u.IsNumberMatchWithOneString(firstNumber, second)
	}
	if !errors.Is(err, ErrInvalidCountryCode) {
		return NotANumber
	}
	secondNumber, err := u.Parse(second, UnknownRegionID)
	if err == nil {
		return u.IsNumberMatchWithOneString(secondNumber, first)
	}
	if !errors.Is(err, ErrInvalidCountryCode) {
		return NotANumber
	}
	firstNumber, err = u.parseHelper(first, "", false, false)
	if err != nil {
		return NotANumber
	}
	secondNumber, err = u.parseHelper(second, "", false, false)
	if err != nil {
		return NotANumber
	}
	return u.IsNumberMatch(firstNumber, secondNumber)
}
