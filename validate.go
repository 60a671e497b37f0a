package phonekit

import (
	"sort"
	"strings"

	"github.com/davidleathers/phonekit/metadata"
)

// descHasPossibleNumberData reports whether a description carries length
// data. The single-element [-1] list marks a class with no numbers.
func descHasPossibleNumberData(desc *metadata.Desc) bool {
	if desc == nil {
		return false
	}
	return len(desc.PossibleLength) != 1 || desc.PossibleLength[0] != -1
}

// possibleLengthsFor resolves a description's lengths, inheriting from the
// general description when the list is empty.
func possibleLengthsFor(desc *metadata.Desc, meta *metadata.Region) []int {
	if desc == nil {
		return []int{-1}
	}
	if len(desc.PossibleLength) == 0 && meta.GeneralDesc != nil {
		return meta.GeneralDesc.PossibleLength
	}
	return desc.PossibleLength
}

func localLengthsFor(desc *metadata.Desc) []int {
	if desc == nil {
		return nil
	}
	return desc.PossibleLengthLocalOnly
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// testNumberLengthForType checks a national number's length against the
// lengths a region allows for a number type. FIXED_LINE_OR_MOBILE merges the
// two classes.
func (u *Util) testNumberLengthForType(nationalNumber string, meta *metadata.Region, numberType PhoneNumberType) ValidationResult {
	desc := descByType(meta, numberType)
	possibleLengths := possibleLengthsFor(desc, meta)
	localLengths := localLengthsFor(desc)

	if numberType == TypeFixedLineOrMobile {
		if !descHasPossibleNumberData(meta.FixedLine) {
			// No fixed-line data: fall back to mobile alone.
			return u.testNumberLengthForType(nationalNumber, meta, TypeMobile)
		}
		if descHasPossibleNumberData(meta.Mobile) {
			mobileLengths := possibleLengthsFor(meta.Mobile, meta)
			possibleLengths = mergeSorted(possibleLengths, mobileLengths)
			localLengths = mergeSorted(localLengths, localLengthsFor(meta.Mobile))
		}
	}

	if len(possibleLengths) == 0 || possibleLengths[0] == -1 {
		return InvalidLength
	}
	actual := len(nationalNumber)
	if containsInt(localLengths, actual) {
		return IsPossibleLocalOnly
	}
	minimum := possibleLengths[0]
	switch {
	case minimum == actual:
		return IsPossible
	case minimum > actual:
		return TooShort
	case possibleLengths[len(possibleLengths)-1] < actual:
		return TooLong
	case containsInt(possibleLengths[1:], actual):
		return IsPossible
	}
	return InvalidLength
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	for _, v := range b {
		if !containsInt(out, v) {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// isNumberMatchingDesc tests both the length data and the pattern of a
// description.
func (u *Util) isNumberMatchingDesc(nationalNumber string, desc *metadata.Desc) bool {
	if desc == nil {
		return false
	}
	if len(desc.PossibleLength) > 0 && !containsInt(desc.PossibleLength, len(nationalNumber)) {
		return false
	}
	return u.matchesEntirely(desc.NationalNumberPattern, nationalNumber)
}

// numberTypeHelper classifies a national number within a region.
func (u *Util) numberTypeHelper(nationalNumber string, meta *metadata.Region) PhoneNumberType {
	if meta.GeneralDesc == nil || !u.isNumberMatchingDesc(nationalNumber, meta.GeneralDesc) {
		return TypeUnknown
	}
	switch {
	case u.isNumberMatchingDesc(nationalNumber, meta.PremiumRate):
		return TypePremiumRate
	case u.isNumberMatchingDesc(nationalNumber, meta.TollFree):
		return TypeTollFree
	case u.isNumberMatchingDesc(nationalNumber, meta.SharedCost):
		return TypeSharedCost
	case u.isNumberMatchingDesc(nationalNumber, meta.VoIP):
		return TypeVoIP
	case u.isNumberMatchingDesc(nationalNumber, meta.PersonalNumber):
		return TypePersonalNumber
	case u.isNumberMatchingDesc(nationalNumber, meta.Pager):
		return TypePager
	case u.isNumberMatchingDesc(nationalNumber, meta.UAN):
		return TypeUAN
	case u.isNumberMatchingDesc(nationalNumber, meta.Voicemail):
		return TypeVoicemail
	}
	if u.isNumberMatchingDesc(nationalNumber, meta.FixedLine) {
		if meta.FixedLine != nil && meta.Mobile != nil &&
			meta.FixedLine.NationalNumberPattern == meta.Mobile.NationalNumberPattern {
			return TypeFixedLineOrMobile
		}
		if u.isNumberMatchingDesc(nationalNumber, meta.Mobile) {
			return TypeFixedLineOrMobile
		}
		return TypeFixedLine
	}
	if u.isNumberMatchingDesc(nationalNumber, meta.Mobile) {
		return TypeMobile
	}
	return TypeUnknown
}

// GetNumberType classifies a parsed number, or TypeUnknown when the number
// does not belong to its plan.
func (u *Util) GetNumberType(number *PhoneNumber) PhoneNumberType {
	regionCode := u.GetRegionCodeForNumber(number)
	meta := u.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
	if meta == nil {
		return TypeUnknown
	}
	return u.numberTypeHelper(number.NationalSignificantNumber(), meta)
}

// IsValidNumber reports whether the number matches its region's plan.
func (u *Util) IsValidNumber(number *PhoneNumber) bool {
	regionCode := u.GetRegionCodeForNumber(number)
	return u.IsValidNumberForRegion(number, regionCode)
}

// IsValidNumberForRegion reports whether the number is valid in one
// particular region; a number valid elsewhere does not count.
func (u *Util) IsValidNumberForRegion(number *PhoneNumber, regionCode string) bool {
	meta := u.metadataForRegionOrCallingCode(number.CountryCode, regionCode)
	if meta == nil {
		return false
	}
	if regionCode != NonGeoRegionID && number.CountryCode != u.GetCountryCodeForRegion(regionCode) {
		return false
	}
	return u.numberTypeHelper(number.NationalSignificantNumber(), meta) != TypeUnknown
}

// IsPossibleNumber performs a quick length-only plausibility check.
func (u *Util) IsPossibleNumber(number *PhoneNumber) bool {
	return u.IsPossibleNumberWithReason(number).IsPossibleResult()
}

// IsPossibleNumberForString parses and length-checks in one step; unparsable
// input is simply not possible.
func (u *Util) IsPossibleNumberForString(number, regionDialingFrom string) bool {
	parsed, err := u.Parse(number, regionDialingFrom)
	if err != nil {
		return false
	}
	return u.IsPossibleNumber(parsed)
}

// IsPossibleNumberWithReason explains the length check's outcome.
func (u *Util) IsPossibleNumberWithReason(number *PhoneNumber) ValidationResult {
	return u.IsPossibleNumberForTypeWithReason(number, TypeUnknown)
}

// IsPossibleNumberForType reports whether the number's length is plausible
// for the given type.
func (u *Util) IsPossibleNumberForType(number *PhoneNumber, numberType PhoneNumberType) bool {
	return u.IsPossibleNumberForTypeWithReason(number, numberType).IsPossibleResult()
}

// IsPossibleNumberForTypeWithReason length-checks against one number type.
func (u *Util) IsPossibleNumberForTypeWithReason(number *PhoneNumber, numberType PhoneNumberType) ValidationResult {
	nationalNumber := number.NationalSignificantNumber()
	countryCode := number.CountryCode
	if !u.hasValidCountryCallingCode(countryCode) {
		return InvalidCountryCode
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	return u.testNumberLengthForType(nationalNumber, meta, numberType)
}

// TruncateTooLongNumber strips trailing digits until the number is valid,
// reporting whether that succeeded. The number is modified only on success.
func (u *Util) TruncateTooLongNumber(number *PhoneNumber) bool {
	if u.IsValidNumber(number) {
		return true
	}
	copied := number.clone()
	nationalNumber := number.NationalNumber
	for {
		nationalNumber /= 10
		copied.NationalNumber = nationalNumber
		if nationalNumber == 0 || u.IsPossibleNumberWithReason(copied) == TooShort {
			return false
		}
		if u.IsValidNumber(copied) {
			break
		}
	}
	number.NationalNumber = nationalNumber
	return true
}

// IsNumberGeographical reports whether the number is tied to a geographic
// area (fixed lines everywhere; mobiles only in geo-mobile countries).
func (u *Util) IsNumberGeographical(number *PhoneNumber) bool {
	return u.isNumberTypeGeographical(u.GetNumberType(number), number.CountryCode)
}

func (u *Util) isNumberTypeGeographical(numberType PhoneNumberType, countryCode int) bool {
	return numberType == TypeFixedLine ||
		numberType == TypeFixedLineOrMobile ||
		(geoMobileCountries[countryCode] && numberType == TypeMobile)
}

// CanBeInternationallyDialled reports whether the number may be reached from
// abroad. Regions without data default to diallable.
func (u *Util) CanBeInternationallyDialled(number *PhoneNumber) bool {
	meta := u.store.Region(u.GetRegionCodeForNumber(number))
	if meta == nil {
		return true
	}
	return !u.isNumberMatchingDesc(number.NationalSignificantNumber(), meta.NoInternationalDialling)
}

// GetLengthOfNationalDestinationCode measures the NDC by formatting the
// number internationally and counting the first group after the country
// code.
func (u *Util) GetLengthOfNationalDestinationCode(number *PhoneNumber) int {
	working := number
	if number.Extension != "" {
		working = number.clone()
		working.Extension = ""
	}
	international := u.Format(working, FormatInternational)
	groups := splitOnNonDigits(international)
	if len(groups) <= 3 {
		return 0
	}
	if u.GetNumberType(working) == TypeMobile {
		// The mobile token is dialled as part of the destination code.
		if token := GetCountryMobileToken(working.CountryCode); token != "" {
			return len(groups[3]) + len(token)
		}
	}
	return len(groups[2])
}

// GetLengthOfGeographicalAreaCode returns how many leading digits of the
// national number name an area, or 0 when the concept does not apply.
func (u *Util) GetLengthOfGeographicalAreaCode(number *PhoneNumber) int {
	regionCode := u.GetRegionCodeForNumber(number)
	meta := u.store.Region(regionCode)
	if meta == nil {
		return 0
	}
	if !meta.HasNationalPrefix() && !number.ItalianLeadingZero {
		return 0
	}
	numberType := u.GetNumberType(number)
	countryCode := number.CountryCode
	if numberType == TypeMobile && geoMobileCountriesWithoutMobileAreaCodes[countryCode] {
		return 0
	}
	if !u.isNumberTypeGeographical(numberType, countryCode) {
		return 0
	}
	return u.GetLengthOfNationalDestinationCode(number)
}

// splitOnNonDigits breaks a formatted number into digit groups; the leading
// element before "+" is empty.
func splitOnNonDigits(formatted string) []string {
	var groups []string
	var current strings.Builder
	for _, r := range formatted {
		if _, ok := decimalDigitValue(r); ok {
			current.WriteRune(r)
		} else if current.Len() > 0 || len(groups) == 0 {
			groups = append(groups, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		groups = append(groups, current.String())
	}
	return groups
}
