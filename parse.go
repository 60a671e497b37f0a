package phonekit

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/davidleathers/phonekit/metadata"
)

// Parse parses a number assuming it may be dialled from defaultRegion.
// defaultRegion may be "ZZ" or empty when the number carries a country code
// (leading plus or RFC 3966 global phone-context).
func (u *Util) Parse(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return u.parseHelper(numberToParse, defaultRegion, false, true)
}

// ParseAndKeepRawInput parses like Parse and additionally records the raw
// input, the country code source and any carrier code dialled.
func (u *Util) ParseAndKeepRawInput(numberToParse, defaultRegion string) (*PhoneNumber, error) {
	return u.parseHelper(numberToParse, defaultRegion, true, true)
}

// Normalize converts a dialled sequence to pure digits, translating keypad
// letters when the input looks like a vanity number.
func (u *Util) Normalize(number string) string {
	if u.matchesEntirely(validAlphaPhonePattern, number) {
		return normalizeHelper(number, alphaPhoneMappings, true)
	}
	return NormalizeDigitsOnly(number)
}

// IsViablePhoneNumber checks whether a string is worth attempting to parse:
// long enough and made of the characters numbers are written with.
func (u *Util) IsViablePhoneNumber(number string) bool {
	if len(number) < minLengthForNSN {
		return false
	}
	return u.matchesEntirely(validPhoneNumberPattern, number)
}

// ExtractPossibleNumber drops characters around the number proper: anything
// before the first digit or plus sign, trailing junk, and a second number
// written after a slash.
func (u *Util) ExtractPossibleNumber(number string) string {
	start := u.regexFor(validStartCharPattern)
	loc := start.FindStringIndex(number)
	if loc == nil {
		return ""
	}
	number = number[loc[0]:]
	if trail := u.regexFor(unwantedEndCharPattern).FindStringIndex(number); trail != nil {
		number = number[:trail[0]]
	}
	if second := u.regexFor(secondNumberStartPattern).FindStringIndex(number); second != nil {
		number = number[:second[0]]
	}
	return number
}

// IsAlphaNumber reports whether the number, ignoring any extension, is a
// viable vanity number with at least three letters.
func (u *Util) IsAlphaNumber(number string) bool {
	if !u.IsViablePhoneNumber(number) {
		return false
	}
	stripped, _ := u.MaybeStripExtension(number)
	return u.matchesEntirely(validAlphaPhonePattern, stripped)
}

// MaybeStripExtension splits a trailing extension off the number, returning
// the remaining number and the extension digits ("" if none).
func (u *Util) MaybeStripExtension(number string) (string, string) {
	re := u.regexFor(extnPattern)
	m := re.FindStringSubmatchIndex(number)
	if m == nil {
		return number, ""
	}
	if !u.IsViablePhoneNumber(number[:m[0]]) {
		return number, ""
	}
	for g := 1; g*2+1 < len(m); g++ {
		if m[g*2] >= 0 && m[g*2+1] > m[g*2] {
			return number[:m[0]], number[m[g*2]:m[g*2+1]]
		}
	}
	return number, ""
}

func (u *Util) isPhoneContextValid(phoneContext string) bool {
	if phoneContext == "" {
		return false
	}
	return u.matchesEntirely(rfc3966GlobalNumberDigitsPattern, phoneContext) ||
		u.matchesEntirely(rfc3966DomainnamePattern, phoneContext)
}

// buildNationalNumberForParsing isolates the dialled digits from RFC 3966
// syntax or free-form text.
func (u *Util) buildNationalNumberForParsing(numberToParse string) (string, error) {
	var national strings.Builder
	if idx := strings.Index(numberToParse, rfc3966PhoneContext); idx >= 0 {
		contextStart := idx + len(rfc3966PhoneContext)
		phoneContext := numberToParse[contextStart:]
		if end := strings.IndexByte(phoneContext, ';'); end >= 0 {
			phoneContext = phoneContext[:end]
		}
		if !u.isPhoneContextValid(phoneContext) {
			return "", ErrNotANumber
		}
		if strings.HasPrefix(phoneContext, "+") {
			// Global numbers: the context supplies the country code.
			national.WriteString(phoneContext)
		}
		numberStart := 0
		if telIdx := strings.Index(numberToParse, rfc3966Prefix); telIdx >= 0 {
			numberStart = telIdx + len(rfc3966Prefix)
		}
		national.WriteString(numberToParse[numberStart:idx])
	} else {
		national.WriteString(u.ExtractPossibleNumber(numberToParse))
	}
	result := national.String()
	if idx := strings.Index(result, rfc3966IsdnSubaddress); idx >= 0 {
		result = result[:idx]
	}
	return result, nil
}

// checkRegionForParsing requires either a known default region or a number
// that starts with a plus sign.
func (u *Util) checkRegionForParsing(numberToParse, defaultRegion string) bool {
	if u.IsValidRegionCode(defaultRegion) {
		return true
	}
	if numberToParse == "" {
		return false
	}
	_, ok := u.matchesPrefix(leadingPlusCharsPattern, numberToParse)
	return ok
}

func (u *Util) parseHelper(numberToParse, defaultRegion string, keepRawInput, checkRegion bool) (*PhoneNumber, error) {
	if numberToParse == "" {
		return nil, ErrNotANumber
	}
	if len(numberToParse) > maxInputStringLength {
		return nil, ErrTooLongNSN
	}
	nationalNumber, err := u.buildNationalNumberForParsing(numberToParse)
	if err != nil {
		return nil, err
	}
	if !u.IsViablePhoneNumber(nationalNumber) {
		return nil, ErrNotANumber
	}
	if checkRegion && !u.checkRegionForParsing(nationalNumber, defaultRegion) {
		return nil, ErrInvalidCountryCode
	}

	number := &PhoneNumber{}
	if keepRawInput {
		number.RawInput = numberToParse
	}
	nationalNumber, extension := u.MaybeStripExtension(nationalNumber)
	if extension != "" {
		number.Extension = extension
	}

	regionMetadata := u.store.Region(defaultRegion)
	countryCode, normalizedNational, source, err := u.maybeExtractCountryCode(nationalNumber, regionMetadata)
	if err != nil {
		if err == ErrInvalidCountryCode {
			if end, ok := u.matchesPrefix(leadingPlusCharsPattern, nationalNumber); ok {
				countryCode, normalizedNational, source, err = u.maybeExtractCountryCode(nationalNumber[end:], regionMetadata)
				if err != nil {
					return nil, err
				}
				if countryCode == 0 {
					return nil, ErrInvalidCountryCode
				}
			} else {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	if keepRawInput {
		number.CountryCodeSource = source
	}

	if countryCode != 0 {
		regionCode := u.GetRegionCodeForCountryCode(countryCode)
		if regionCode != defaultRegion {
			regionMetadata = u.metadataForRegionOrCallingCode(countryCode, regionCode)
		}
	} else if regionMetadata != nil {
		countryCode = regionMetadata.CountryCode
	}

	if len(normalizedNational) < minLengthForNSN {
		return nil, ErrTooShortNSN
	}

	if regionMetadata != nil {
		potential, carrierCode := u.maybeStripNationalPrefixAndCarrierCode(normalizedNational, regionMetadata)
		result := u.testNumberLengthForType(potential, regionMetadata, TypeUnknown)
		if result != TooShort && result != IsPossibleLocalOnly && result != InvalidLength {
			normalizedNational = potential
			if keepRawInput && carrierCode != "" {
				number.SetPreferredDomesticCarrierCode(carrierCode)
			}
		}
	}

	if len(normalizedNational) < minLengthForNSN {
		return nil, ErrTooShortNSN
	}
	if len(normalizedNational) > maxLengthForNSN {
		return nil, ErrTooLongNSN
	}
	setItalianLeadingZeros(normalizedNational, number)
	number.CountryCode = countryCode
	nn, perr := strconv.ParseUint(normalizedNational, 10, 64)
	if perr != nil {
		u.log.Debug("national number overflow", zap.String("digits", normalizedNational))
		return nil, ErrTooLongNSN
	}
	number.NationalNumber = nn
	return number, nil
}

// setItalianLeadingZeros records leading zeros that the numeric national
// number representation would otherwise lose.
func setItalianLeadingZeros(nationalNumber string, number *PhoneNumber) {
	if len(nationalNumber) <= 1 || nationalNumber[0] != '0' {
		return
	}
	number.ItalianLeadingZero = true
	zeros := 1
	// The last digit never counts as a stripped zero, so "000" keeps one
	// significant zero and records two.
	for zeros < len(nationalNumber)-1 && nationalNumber[zeros] == '0' {
		zeros++
	}
	if zeros > 1 {
		number.NumberOfLeadingZeros = zeros
	}
}

// maybeStripInternationalPrefixAndNormalize removes a leading plus sign or
// the region's IDD from the number and normalizes it, reporting how the
// country code will be found.
func (u *Util) maybeStripInternationalPrefixAndNormalize(number, possibleIddPrefix string) (string, CountryCodeSource) {
	if number == "" {
		return number, SourceDefaultCountry
	}
	if end, ok := u.matchesPrefix(leadingPlusCharsPattern, number); ok {
		return u.Normalize(number[end:]), SourceNumberWithPlusSign
	}
	normalized := u.Normalize(number)
	if possibleIddPrefix != "" {
		if stripped, ok := u.parsePrefixAsIdd(possibleIddPrefix, normalized); ok {
			return stripped, SourceNumberWithIDD
		}
	}
	return normalized, SourceDefaultCountry
}

// parsePrefixAsIdd strips an IDD when it is followed by a non-zero digit;
// a zero would instead be the start of the national number in most plans.
func (u *Util) parsePrefixAsIdd(iddPattern, number string) (string, bool) {
	end, ok := u.matchesPrefix(iddPattern, number)
	if !ok {
		return number, false
	}
	rest := number[end:]
	if m := u.regexFor(capturingDigitPattern).FindStringSubmatch(rest); m != nil {
		if NormalizeDigitsOnly(m[1]) == "0" {
			return number, false
		}
	}
	return rest, true
}

// extractCountryCode tries 1 to 3 leading digits as a country calling code.
func (u *Util) extractCountryCode(fullNumber string) (int, string) {
	if fullNumber == "" || fullNumber[0] == '0' {
		// Country codes never begin with zero.
		return 0, fullNumber
	}
	for length := 1; length <= maxLengthCountryCode && length <= len(fullNumber); length++ {
		potential, err := strconv.Atoi(fullNumber[:length])
		if err != nil {
			break
		}
		if u.hasValidCountryCallingCode(potential) {
			return potential, fullNumber[length:]
		}
	}
	return 0, fullNumber
}

// maybeExtractCountryCode finds the country code of a number given optional
// default-region metadata, returning the code (0 if none), the remaining
// national number and the code's source.
func (u *Util) maybeExtractCountryCode(number string, defaultMetadata *metadata.Region) (int, string, CountryCodeSource, error) {
	if number == "" {
		return 0, "", SourceDefaultCountry, ErrNotANumber
	}
	possibleIddPrefix := ""
	if defaultMetadata != nil {
		possibleIddPrefix = defaultMetadata.InternationalPrefix
	}
	fullNumber, source := u.maybeStripInternationalPrefixAndNormalize(number, possibleIddPrefix)
	if source != SourceDefaultCountry {
		if len(fullNumber) <= minLengthForNSN {
			return 0, fullNumber, source, ErrTooShortAfterIDD
		}
		if cc, rest := u.extractCountryCode(fullNumber); cc != 0 {
			return cc, rest, source, nil
		}
		// A plus sign or IDD promises a country code; none was found.
		return 0, fullNumber, source, ErrInvalidCountryCode
	}
	if defaultMetadata != nil {
		countryCode := defaultMetadata.CountryCode
		countryCodeString := strconv.Itoa(countryCode)
		if strings.HasPrefix(fullNumber, countryCodeString) {
			potentialNational := fullNumber[len(countryCodeString):]
			general := defaultMetadata.GeneralDesc
			stripped, _ := u.maybeStripNationalPrefixAndCarrierCode(potentialNational, defaultMetadata)
			// The prefix is only a country code if dropping it yields a
			// plausible number while keeping it does not.
			if (general != nil && !u.matchesEntirely(general.NationalNumberPattern, fullNumber) &&
				u.matchesEntirely(general.NationalNumberPattern, stripped)) ||
				u.testNumberLengthForType(fullNumber, defaultMetadata, TypeUnknown) == TooLong {
				return countryCode, stripped, SourceNumberWithoutPlusSign, nil
			}
		}
	}
	return 0, fullNumber, SourceDefaultCountry, nil
}

// maybeStripNationalPrefixAndCarrierCode removes the national dialling
// prefix and any carrier code, applying the region's transform rule. The
// strip is abandoned when it would turn a valid number into an invalid one.
func (u *Util) maybeStripNationalPrefixAndCarrierCode(number string, meta *metadata.Region) (string, string) {
	possibleNationalPrefix := meta.NationalPrefixForParsing
	if number == "" || possibleNationalPrefix == "" {
		return number, ""
	}
	prefixRe := u.prefix(possibleNationalPrefix)
	if prefixRe == nil {
		return number, ""
	}
	m := prefixRe.FindStringSubmatchIndex(number)
	if m == nil {
		return number, ""
	}
	var generalPattern string
	if meta.GeneralDesc != nil {
		generalPattern = meta.GeneralDesc.NationalNumberPattern
	}
	isViableOriginal := u.matchesEntirely(generalPattern, number)
	numOfGroups := len(m)/2 - 1
	transformRule := meta.NationalPrefixTransformRule

	lastGroupEmpty := numOfGroups == 0 || m[numOfGroups*2] < 0 || m[numOfGroups*2] == m[numOfGroups*2+1]
	if transformRule == "" || lastGroupEmpty {
		stripped := number[m[1]:]
		if isViableOriginal && !u.matchesEntirely(generalPattern, stripped) {
			return number, ""
		}
		carrier := ""
		// Group 1 is only a carrier code when the last group took part in
		// the match.
		if numOfGroups > 0 && m[numOfGroups*2] >= 0 && m[2] >= 0 {
			carrier = number[m[2]:m[3]]
		}
		return stripped, carrier
	}

	transformed := expandFirstMatch(prefixRe, number, m, transformRule)
	if isViableOriginal && !u.matchesEntirely(generalPattern, transformed) {
		return number, ""
	}
	carrier := ""
	if numOfGroups > 1 && m[2] >= 0 {
		carrier = number[m[2]:m[3]]
	}
	return transformed, carrier
}

// expandFirstMatch rewrites the matched prefix using a "$n"-style template
// and keeps the rest of the string.
func expandFirstMatch(re *regexp.Regexp, s string, matchIndex []int, template string) string {
	expanded := re.ExpandString(nil, groupTemplate(template), s, matchIndex)
	return string(expanded) + s[matchIndex[1]:]
}
