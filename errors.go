package phonekit

import "errors"

// Parse failures. Callers distinguish them with errors.Is.
var (
	// ErrNotANumber means the input could not be interpreted as a phone
	// number at all.
	ErrNotANumber = errors.New("the string supplied did not seem to be a phone number")
	// ErrInvalidCountryCode means no country calling code could be derived
	// and no default region was supplied.
	ErrInvalidCountryCode = errors.New("could not interpret number as belonging to a valid country calling code")
	// ErrTooShortAfterIDD means an international dialling prefix was found
	// but too few digits followed it.
	ErrTooShortAfterIDD = errors.New("phone number had an IDD, but after this was not long enough to be a viable phone number")
	// ErrTooShortNSN means the national number is shorter than any number
	// could be.
	ErrTooShortNSN = errors.New("the string supplied is too short to be a phone number")
	// ErrTooLongNSN means the national number is longer than any number
	// could be.
	ErrTooLongNSN = errors.New("the string supplied is too long to be a phone number")
	// ErrNoExampleNumber means the requested example is not available.
	ErrNoExampleNumber = errors.New("no example number available")
)

// ValidationResult is the outcome of a possible-number length check.
type ValidationResult int

const (
	// IsPossible means the length matches a known number length.
	IsPossible ValidationResult = iota
	// IsPossibleLocalOnly means the length is only dialable locally.
	IsPossibleLocalOnly
	// InvalidCountryCode means the country calling code is not covered.
	InvalidCountryCode
	// TooShort means shorter than every known length.
	TooShort
	// InvalidLength means between known lengths but matching none.
	InvalidLength
	// TooLong means longer than every known length.
	TooLong
)

func (v ValidationResult) String() string {
	switch v {
	case IsPossible:
		return "IS_POSSIBLE"
	case IsPossibleLocalOnly:
		return "IS_POSSIBLE_LOCAL_ONLY"
	case InvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case TooShort:
		return "TOO_SHORT"
	case InvalidLength:
		return "INVALID_LENGTH"
	default:
		return "TOO_LONG"
	}
}

// IsPossibleResult reports whether the outcome counts as possible.
func (v ValidationResult) IsPossibleResult() bool {
	return v == IsPossible || v == IsPossibleLocalOnly
}

// MatchType grades how closely two numbers match.
type MatchType int

const (
	NotANumber MatchType = iota
	NoMatch
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

func (m MatchType) String() string {
	switch m {
	case NotANumber:
		return "NOT_A_NUMBER"
	case NoMatch:
		return "NO_MATCH"
	case ShortNSNMatch:
		return "SHORT_NSN_MATCH"
	case NSNMatch:
		return "NSN_MATCH"
	default:
		return "EXACT_MATCH"
	}
}
