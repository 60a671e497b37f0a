// Package phonekit parses, validates, formats and matches international
// phone numbers against region-scoped numbering plan metadata.
package phonekit

import "strings"

// PhoneNumberFormat selects an output representation.
type PhoneNumberFormat int

const (
	FormatE164 PhoneNumberFormat = iota
	FormatInternational
	FormatNational
	FormatRFC3966
)

// PhoneNumberType classifies a number within its numbering plan.
type PhoneNumberType int

const (
	TypeFixedLine PhoneNumberType = iota
	TypeMobile
	TypeFixedLineOrMobile
	TypeTollFree
	TypePremiumRate
	TypeSharedCost
	TypeVoIP
	TypePersonalNumber
	TypePager
	TypeUAN
	TypeVoicemail
	TypeUnknown
)

func (t PhoneNumberType) String() string {
	switch t {
	case TypeFixedLine:
		return "FIXED_LINE"
	case TypeMobile:
		return "MOBILE"
	case TypeFixedLineOrMobile:
		return "FIXED_LINE_OR_MOBILE"
	case TypeTollFree:
		return "TOLL_FREE"
	case TypePremiumRate:
		return "PREMIUM_RATE"
	case TypeSharedCost:
		return "SHARED_COST"
	case TypeVoIP:
		return "VOIP"
	case TypePersonalNumber:
		return "PERSONAL_NUMBER"
	case TypePager:
		return "PAGER"
	case TypeUAN:
		return "UAN"
	case TypeVoicemail:
		return "VOICEMAIL"
	default:
		return "UNKNOWN"
	}
}

// CountryCodeSource records how the country calling code of a parsed number
// was derived.
type CountryCodeSource int

const (
	SourceUnspecified CountryCodeSource = iota
	SourceNumberWithPlusSign
	SourceNumberWithIDD
	SourceNumberWithoutPlusSign
	SourceDefaultCountry
)

// PhoneNumber is the parsed representation of a phone number.
//
// NationalNumber never carries leading zeros; ItalianLeadingZero plus
// NumberOfLeadingZeros preserve them. A zero NumberOfLeadingZeros means the
// default of one.
type PhoneNumber struct {
	CountryCode        int
	NationalNumber     uint64
	Extension          string
	ItalianLeadingZero bool
	NumberOfLeadingZeros int
	RawInput           string
	CountryCodeSource  CountryCodeSource
	// PreferredDomesticCarrierCode is nil when no preference was recorded;
	// an empty non-nil value is a recorded preference for no carrier code.
	PreferredDomesticCarrierCode *string
}

// LeadingZeroCount returns the effective number of leading zeros (default 1).
func (p *PhoneNumber) LeadingZeroCount() int {
	if p.NumberOfLeadingZeros == 0 {
		return 1
	}
	return p.NumberOfLeadingZeros
}

// HasPreferredDomesticCarrierCode reports whether a carrier preference was
// recorded, even an empty one.
func (p *PhoneNumber) HasPreferredDomesticCarrierCode() bool {
	return p.PreferredDomesticCarrierCode != nil
}

// SetPreferredDomesticCarrierCode records a carrier preference.
func (p *PhoneNumber) SetPreferredDomesticCarrierCode(code string) {
	p.PreferredDomesticCarrierCode = &code
}

func (p *PhoneNumber) clone() *PhoneNumber {
	out := *p
	if p.PreferredDomesticCarrierCode != nil {
		code := *p.PreferredDomesticCarrierCode
		out.PreferredDomesticCarrierCode = &code
	}
	return &out
}

// equalCore compares the fields that identify a number, ignoring raw input,
// source and carrier preference.
func (p *PhoneNumber) equalCore(o *PhoneNumber) bool {
	return p.CountryCode == o.CountryCode &&
		p.NationalNumber == o.NationalNumber &&
		p.Extension == o.Extension &&
		p.ItalianLeadingZero == o.ItalianLeadingZero &&
		p.LeadingZeroCount() == o.LeadingZeroCount()
}

// NationalSignificantNumber renders the national number as a string,
// restoring preserved leading zeros.
func (p *PhoneNumber) NationalSignificantNumber() string {
	var b strings.Builder
	if p.ItalianLeadingZero && p.LeadingZeroCount() > 0 {
		b.WriteString(strings.Repeat("0", p.LeadingZeroCount()))
	}
	b.WriteString(formatUint(p.NationalNumber))
	return b.String()
}
