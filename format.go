package phonekit

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/davidleathers/phonekit/metadata"
)

var (
	firstGroupTokenRe = regexp.MustCompile(`\$\d`)
	groupRefRe        = regexp.MustCompile(`\$(\d)`)
)

// groupTemplate converts "$n" group references to Go's "${n}" expansion
// syntax.
func groupTemplate(format string) string {
	return groupRefRe.ReplaceAllString(format, "${$1}")
}

// replaceFirstGroupToken splices rule into format in place of the first
// group token; "$1" inside the rule stands for that token.
func replaceFirstGroupToken(format, rule string) string {
	loc := firstGroupTokenRe.FindStringIndex(format)
	if loc == nil {
		return format
	}
	token := format[loc[0]:loc[1]]
	return format[:loc[0]] + strings.ReplaceAll(rule, "$1", token) + format[loc[1]:]
}

// chooseFormattingPattern picks the first format whose leading digits and
// full pattern match the national number.
func (u *Util) chooseFormattingPattern(formats []*metadata.NumberFormat, nationalNumber string) *metadata.NumberFormat {
	for _, f := range formats {
		if n := len(f.LeadingDigits); n > 0 {
			if _, ok := u.matchesPrefix(f.LeadingDigits[n-1], nationalNumber); !ok {
				continue
			}
		}
		if u.matchesEntirely(f.Pattern, nationalNumber) {
			return f
		}
	}
	return nil
}

// formatsFor selects national or international format lists.
func formatsFor(meta *metadata.Region, numberFormat PhoneNumberFormat) []*metadata.NumberFormat {
	if numberFormat != FormatNational && len(meta.IntlNumberFormats) > 0 {
		return meta.IntlNumberFormats
	}
	return meta.NumberFormats
}

// formatNsnUsingPattern renders a national number through one format,
// applying national-prefix or carrier rules for national output.
func (u *Util) formatNsnUsingPattern(nationalNumber string, f *metadata.NumberFormat, numberFormat PhoneNumberFormat, carrierCode string) string {
	formatRule := f.Format
	if numberFormat == FormatNational && carrierCode != "" && f.DomesticCarrierCodeFormattingRule != "" {
		carrierRule := strings.Replace(f.DomesticCarrierCodeFormattingRule, "$CC", carrierCode, 1)
		formatRule = replaceFirstGroupToken(formatRule, carrierRule)
	} else if numberFormat == FormatNational && f.NationalPrefixFormattingRule != "" {
		formatRule = replaceFirstGroupToken(formatRule, f.NationalPrefixFormattingRule)
	}
	re := u.entire(f.Pattern)
	if re == nil {
		return nationalNumber
	}
	formatted := re.ReplaceAllString(nationalNumber, groupTemplate(formatRule))
	if numberFormat == FormatRFC3966 {
		if end, ok := u.matchesPrefix(separatorPattern, formatted); ok {
			formatted = formatted[end:]
		}
		formatted = u.regexFor(separatorPattern).ReplaceAllString(formatted, "-")
	}
	return formatted
}

// formatNsn renders the national number with the region's own formats.
func (u *Util) formatNsn(nationalNumber string, meta *metadata.Region, numberFormat PhoneNumberFormat, carrierCode string) string {
	f := u.chooseFormattingPattern(formatsFor(meta, numberFormat), nationalNumber)
	if f == nil {
		return nationalNumber
	}
	return u.formatNsnUsingPattern(nationalNumber, f, numberFormat, carrierCode)
}

// maybeAppendFormattedExtension appends the extension in the style the
// output format and region call for.
func maybeAppendFormattedExtension(number *PhoneNumber, meta *metadata.Region, numberFormat PhoneNumberFormat, formatted string) string {
	if number.Extension == "" {
		return formatted
	}
	if numberFormat == FormatRFC3966 {
		return formatted + rfc3966ExtnPrefix + number.Extension
	}
	if meta != nil && meta.PreferredExtnPrefix != "" {
		return formatted + meta.PreferredExtnPrefix + number.Extension
	}
	return formatted + defaultExtnPrefix + number.Extension
}

// prefixWithCountryCallingCode attaches the calling code in the style of the
// output format.
func prefixWithCountryCallingCode(countryCode int, numberFormat PhoneNumberFormat, formatted string) string {
	cc := strconv.Itoa(countryCode)
	switch numberFormat {
	case FormatE164:
		return "+" + cc + formatted
	case FormatInternational:
		return "+" + cc + " " + formatted
	case FormatRFC3966:
		return rfc3966Prefix + "+" + cc + "-" + formatted
	default:
		return formatted
	}
}

// Format renders a parsed number in the requested representation.
func (u *Util) Format(number *PhoneNumber, numberFormat PhoneNumberFormat) string {
	if number.NationalNumber == 0 && number.RawInput != "" {
		// A raw input kept for an unparsable short string is shown as-is.
		return number.RawInput
	}
	countryCode := number.CountryCode
	nationalNumber := number.NationalSignificantNumber()
	if numberFormat == FormatE164 {
		return prefixWithCountryCallingCode(countryCode, FormatE164, nationalNumber)
	}
	if !u.hasValidCountryCallingCode(countryCode) {
		return nationalNumber
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	formatted := u.formatNsn(nationalNumber, meta, numberFormat, "")
	formatted = maybeAppendFormattedExtension(number, meta, numberFormat, formatted)
	return prefixWithCountryCallingCode(countryCode, numberFormat, formatted)
}

// FormatByPattern renders with caller-supplied formats. "$NP" and "$FG" in a
// format's national prefix rule stand for the region's prefix and the first
// group.
func (u *Util) FormatByPattern(number *PhoneNumber, numberFormat PhoneNumberFormat, userDefinedFormats []*metadata.NumberFormat) string {
	countryCode := number.CountryCode
	nationalNumber := number.NationalSignificantNumber()
	if !u.hasValidCountryCallingCode(countryCode) {
		return nationalNumber
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	f := u.chooseFormattingPattern(userDefinedFormats, nationalNumber)
	if f == nil {
		return maybeAppendFormattedExtension(number, meta, numberFormat, nationalNumber)
	}
	working := *f
	if rule := working.NationalPrefixFormattingRule; rule != "" {
		if nationalPrefix := meta.NationalPrefix; nationalPrefix != "" {
			rule = strings.Replace(rule, "$NP", nationalPrefix, 1)
			rule = strings.Replace(rule, "$FG", "$1", 1)
			working.NationalPrefixFormattingRule = rule
		} else {
			working.NationalPrefixFormattingRule = ""
		}
	}
	formatted := u.formatNsnUsingPattern(nationalNumber, &working, numberFormat, "")
	formatted = maybeAppendFormattedExtension(number, meta, numberFormat, formatted)
	return prefixWithCountryCallingCode(countryCode, numberFormat, formatted)
}

// FormatNationalNumberWithCarrierCode renders national format with a carrier
// code spliced in where the region's formats allow one.
func (u *Util) FormatNationalNumberWithCarrierCode(number *PhoneNumber, carrierCode string) string {
	countryCode := number.CountryCode
	nationalNumber := number.NationalSignificantNumber()
	if !u.hasValidCountryCallingCode(countryCode) {
		return nationalNumber
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	formatted := u.formatNsn(nationalNumber, meta, FormatNational, carrierCode)
	formatted = maybeAppendFormattedExtension(number, meta, FormatNational, formatted)
	return prefixWithCountryCallingCode(countryCode, FormatNational, formatted)
}

// FormatNationalNumberWithPreferredCarrierCode uses the carrier recorded at
// parse time, falling back to the supplied one.
func (u *Util) FormatNationalNumberWithPreferredCarrierCode(number *PhoneNumber, fallbackCarrierCode string) string {
	carrier := fallbackCarrierCode
	if number.HasPreferredDomesticCarrierCode() && *number.PreferredDomesticCarrierCode != "" {
		carrier = *number.PreferredDomesticCarrierCode
	}
	return u.FormatNationalNumberWithCarrierCode(number, carrier)
}

// hasFormattingPatternForNumber reports whether any format applies to the
// number in its own region.
func (u *Util) hasFormattingPatternForNumber(number *PhoneNumber) bool {
	countryCode := number.CountryCode
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	if meta == nil {
		return false
	}
	return u.chooseFormattingPattern(meta.NumberFormats, number.NationalSignificantNumber()) != nil
}

// rawInputContainsNationalPrefix detects a national prefix actually typed by
// the user, confirmed by the rest parsing to a valid number.
func (u *Util) rawInputContainsNationalPrefix(rawInput, nationalPrefix, regionCode string) bool {
	normalized := NormalizeDigitsOnly(rawInput)
	if !strings.HasPrefix(normalized, nationalPrefix) {
		return false
	}
	parsed, err := u.Parse(normalized[len(nationalPrefix):], regionCode)
	if err != nil {
		return false
	}
	return u.IsValidNumber(parsed)
}

// FormatInOriginalFormat reproduces, as closely as possible, the form the
// number was dialled in, based on the country code source kept at parse
// time. Numbers whose region has no applicable format come back as typed.
func (u *Util) FormatInOriginalFormat(number *PhoneNumber, regionCallingFrom string) string {
	rawInput := number.RawInput
	if rawInput != "" && !u.hasFormattingPatternForNumber(number) {
		return rawInput
	}
	var formatted string
	switch number.CountryCodeSource {
	case SourceNumberWithPlusSign:
		formatted = u.Format(number, FormatInternational)
	case SourceNumberWithIDD:
		formatted = u.FormatOutOfCountryCallingNumber(number, regionCallingFrom)
	case SourceNumberWithoutPlusSign:
		formatted = strings.TrimPrefix(u.Format(number, FormatInternational), "+")
	default:
		formatted = u.formatAsDialledDomestically(number)
	}
	if formatted != "" && rawInput != "" &&
		NormalizeDiallableCharsOnly(formatted) != NormalizeDiallableCharsOnly(rawInput) {
		// When formatting diverges from what was typed, trust the input.
		formatted = rawInput
	}
	return formatted
}

// formatAsDialledDomestically decides whether the national prefix belongs in
// output for a domestically dialled number.
func (u *Util) formatAsDialledDomestically(number *PhoneNumber) string {
	regionCode := u.GetRegionCodeForCountryCode(number.CountryCode)
	nationalFormat := u.Format(number, FormatNational)
	nationalPrefix := u.GetNddPrefixForRegion(regionCode, true)
	if nationalPrefix == "" {
		return nationalFormat
	}
	meta := u.store.Region(regionCode)
	if meta == nil {
		return nationalFormat
	}
	nationalNumber := number.NationalSignificantNumber()
	formatRule := u.chooseFormattingPattern(meta.NumberFormats, nationalNumber)
	if formatRule == nil {
		return nationalFormat
	}
	// Does the chosen format already place prefix digits before the number?
	ruleHasPrefixDigits := false
	rule := formatRule.NationalPrefixFormattingRule
	if firstGroup := strings.Index(rule, "$1"); firstGroup > 0 {
		ruleHasPrefixDigits = NormalizeDigitsOnly(rule[:firstGroup]) != ""
	}
	if u.rawInputContainsNationalPrefix(number.RawInput, nationalPrefix, regionCode) {
		if ruleHasPrefixDigits {
			// National format carries the prefix already.
			return nationalFormat
		}
		// The prefix was typed but the format omits it; put it back.
		return nationalPrefix + " " + nationalFormat
	}
	if !ruleHasPrefixDigits {
		return nationalFormat
	}
	// The prefix was not typed: try reformatting without the prefix rule, but
	// only trust the result when it dials the same digits as the input.
	working := *formatRule
	working.NationalPrefixFormattingRule = ""
	candidate := u.FormatByPattern(number, FormatNational, []*metadata.NumberFormat{&working})
	if NormalizeDiallableCharsOnly(candidate) == NormalizeDiallableCharsOnly(number.RawInput) {
		return candidate
	}
	return nationalFormat
}

// FormatOutOfCountryCallingNumber renders the digits to dial from another
// region: IDD, country code and international format, with same-region and
// NANPA shortcuts.
func (u *Util) FormatOutOfCountryCallingNumber(number *PhoneNumber, regionCallingFrom string) string {
	if !u.IsValidRegionCode(regionCallingFrom) {
		return u.Format(number, FormatInternational)
	}
	countryCode := number.CountryCode
	nationalNumber := number.NationalSignificantNumber()
	if !u.hasValidCountryCallingCode(countryCode) {
		return nationalNumber
	}
	if countryCode == nanpaCountryCode {
		if u.IsNANPACountry(regionCallingFrom) {
			// Within NANPA, prefix the country code to the national format.
			return strconv.Itoa(countryCode) + " " + u.Format(number, FormatNational)
		}
	} else if countryCode == u.GetCountryCodeForRegion(regionCallingFrom) {
		return u.Format(number, FormatNational)
	}
	metaCallingFrom := u.store.Region(regionCallingFrom)
	internationalPrefix := metaCallingFrom.InternationalPrefix
	internationalPrefixForFormatting := ""
	if u.matchesEntirely(singleInternationalPrefix, internationalPrefix) {
		internationalPrefixForFormatting = internationalPrefix
	} else if metaCallingFrom.PreferredInternationalPrefix != "" {
		internationalPrefixForFormatting = metaCallingFrom.PreferredInternationalPrefix
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	formatted := u.formatNsn(nationalNumber, meta, FormatInternational, "")
	formatted = maybeAppendFormattedExtension(number, meta, FormatInternational, formatted)
	if internationalPrefixForFormatting != "" {
		return internationalPrefixForFormatting + " " + strconv.Itoa(countryCode) + " " + formatted
	}
	return prefixWithCountryCallingCode(countryCode, FormatInternational, formatted)
}

// FormatOutOfCountryKeepingAlphaChars works like
// FormatOutOfCountryCallingNumber but preserves letters the number was
// typed with.
func (u *Util) FormatOutOfCountryKeepingAlphaChars(number *PhoneNumber, regionCallingFrom string) string {
	rawInput := number.RawInput
	if rawInput == "" {
		return u.FormatOutOfCountryCallingNumber(number, regionCallingFrom)
	}
	countryCode := number.CountryCode
	if !u.hasValidCountryCallingCode(countryCode) {
		return rawInput
	}
	rawInput = normalizeHelper(rawInput, allPlusNumberGroupingSymbols, true)
	nationalNumber := number.NationalSignificantNumber()
	if len(nationalNumber) > 3 {
		if idx := strings.Index(rawInput, nationalNumber[:3]); idx >= 0 {
			rawInput = rawInput[idx:]
		}
	}
	metaCallingFrom := u.store.Region(regionCallingFrom)
	if countryCode == nanpaCountryCode {
		if u.IsNANPACountry(regionCallingFrom) {
			return strconv.Itoa(countryCode) + " " + rawInput
		}
	} else if metaCallingFrom != nil && countryCode == u.GetCountryCodeForRegion(regionCallingFrom) {
		f := u.chooseFormattingPattern(metaCallingFrom.NumberFormats, nationalNumber)
		if f == nil {
			return rawInput
		}
		// Reuse the chosen format's prefix rule but let the pattern accept
		// the letters.
		working := *f
		working.Pattern = "(\\d+)(.*)"
		working.Format = "$1$2"
		return u.formatNsnUsingPattern(rawInput, &working, FormatNational, "")
	}
	internationalPrefixForFormatting := ""
	if metaCallingFrom != nil {
		internationalPrefix := metaCallingFrom.InternationalPrefix
		if u.matchesEntirely(singleInternationalPrefix, internationalPrefix) {
			internationalPrefixForFormatting = internationalPrefix
		} else {
			internationalPrefixForFormatting = metaCallingFrom.PreferredInternationalPrefix
		}
	}
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	meta := u.metadataForRegionOrCallingCode(countryCode, regionCode)
	formatted := maybeAppendFormattedExtension(number, meta, FormatInternational, rawInput)
	if internationalPrefixForFormatting != "" {
		return internationalPrefixForFormatting + " " + strconv.Itoa(countryCode) + " " + formatted
	}
	return prefixWithCountryCallingCode(countryCode, FormatInternational, formatted)
}

// FormatNumberForMobileDialing returns the digits a mobile handset should
// dial, or "" when the number cannot be reached that way.
func (u *Util) FormatNumberForMobileDialing(number *PhoneNumber, regionCallingFrom string, withFormatting bool) string {
	countryCode := number.CountryCode
	if !u.hasValidCountryCallingCode(countryCode) {
		return number.RawInput
	}
	formatted := ""
	working := number.clone()
	working.Extension = ""
	regionCode := u.GetRegionCodeForCountryCode(countryCode)
	numberType := u.GetNumberType(working)
	isValid := numberType != TypeUnknown
	if regionCallingFrom == regionCode {
		isFixedLineOrMobile := numberType == TypeFixedLine || numberType == TypeMobile || numberType == TypeFixedLineOrMobile
		switch {
		case regionCode == "CO" && numberType == TypeFixedLine:
			// Colombian fixed lines are dialled from mobiles with a
			// mobile-to-fixed carrier code.
			formatted = u.FormatNationalNumberWithCarrierCode(working, "3")
		case regionCode == "BR" && isFixedLineOrMobile:
			if working.HasPreferredDomesticCarrierCode() {
				formatted = u.FormatNationalNumberWithPreferredCarrierCode(working, "")
			} else {
				// Brazilian numbers cannot be dialled without a carrier.
				formatted = ""
			}
		case countryCode == nanpaCountryCode:
			regionMeta := u.store.Region(regionCallingFrom)
			if u.CanBeInternationallyDialled(working) &&
				u.testNumberLengthForType(working.NationalSignificantNumber(), regionMeta, TypeUnknown) != TooShort {
				formatted = u.Format(working, FormatInternational)
			} else {
				formatted = u.Format(working, FormatNational)
			}
		default:
			specialFixedOrMobile := (regionCode == "MX" || regionCode == "CL" || regionCode == "UZ") && isFixedLineOrMobile
			if (regionCode == NonGeoRegionID || specialFixedOrMobile) && u.CanBeInternationallyDialled(working) {
				formatted = u.Format(working, FormatInternational)
			} else {
				formatted = u.Format(working, FormatNational)
			}
		}
	} else if isValid && u.CanBeInternationallyDialled(working) {
		if withFormatting {
			return u.Format(working, FormatInternational)
		}
		return u.Format(working, FormatE164)
	}
	if withFormatting {
		return formatted
	}
	return NormalizeDiallableCharsOnly(formatted)
}

// allPlusNumberGroupingSymbols keeps letters (uppercased) and digits, and
// maps the common grouping punctuation to itself so it survives
// normalization.
var allPlusNumberGroupingSymbols = func() map[rune]rune {
	m := make(map[rune]rune)
	for k := range alphaMappings {
		m[k] = k
	}
	for d := '0'; d <= '9'; d++ {
		m[d] = d
	}
	for _, r := range "-./() " {
		m[r] = r
	}
	m['+'] = '+'
	return m
}()
