package phonekit

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	// minLengthForNSN is the shortest national significant number anywhere.
	minLengthForNSN = 2
	// maxLengthForNSN is the longest national significant number anywhere.
	maxLengthForNSN = 17
	// maxLengthCountryCode is the longest country calling code.
	maxLengthCountryCode = 3
	// maxInputStringLength caps parser input; longer strings are junk.
	maxInputStringLength = 250

	nanpaCountryCode = 1

	defaultExtnPrefix = " ext. "

	rfc3966Prefix         = "tel:"
	rfc3966ExtnPrefix     = ";ext="
	rfc3966PhoneContext   = ";phone-context="
	rfc3966IsdnSubaddress = ";isub="
)

const (
	plusChars = "+＋"
	// validPunctuation covers the separators numbers are written with:
	// ASCII and unicode dashes, various spaces, brackets, dots, slashes and
	// wave dashes.
	validPunctuation = "-x‐-―−ー－-／ " +
		" ­​⁠　()（）［］.\\[\\]/~⁓∼～"
	starSign = "*"
)

var (
	leadingPlusCharsPattern = "[" + plusChars + "]+"
	validStartCharPattern   = "[" + plusChars + "]|\\p{Nd}"
	// unwantedEndCharPattern trims trailing characters that are neither
	// letters, digits nor '#'.
	unwantedEndCharPattern   = "[^\\p{N}\\p{L}#]+$"
	secondNumberStartPattern = `[\\/] *x`

	validAlphaPhonePattern = "(?:.*?[A-Za-z]){3}.*"

	// validPhoneNumber accepts either a bare short digit run or a plausible
	// number: optional plus signs, at least three digit groups separated by
	// punctuation, optional trailing alpha characters.
	validPhoneNumber = "\\p{Nd}{" + strconv.Itoa(minLengthForNSN) + "}|" +
		"[" + plusChars + "]*(?:[" + validPunctuation + starSign + "]*\\p{Nd}){3,}" +
		"[" + validPunctuation + starSign + "A-Za-z\\p{Nd}]*"

	extnPatternsForParsing = createExtnPattern(true)

	validPhoneNumberPattern = "(?i)(?:" + validPhoneNumber + ")(?:" + extnPatternsForParsing + ")?"
	extnPattern             = "(?i)(?:" + extnPatternsForParsing + ")$"

	// capturingDigitPattern picks the first digit following an IDD match.
	capturingDigitPattern = "(\\p{Nd})"

	// singleInternationalPrefix recognizes IDDs that are a plain digit
	// sequence, optionally split by a wait symbol, e.g. "011" or "8~10".
	singleInternationalPrefix = "[\\d]+(?:[~⁓∼～][\\d]+)?"

	separatorPattern = "[" + validPunctuation + "]+"

	// RFC 3966 phone-context values: either a global number or a domain name.
	rfc3966GlobalNumberDigitsPattern = "\\+(?:[-.()]*\\p{Nd})+[-.()]*"
	rfc3966DomainnamePattern         = "([a-zA-Z0-9]+((-)*[a-zA-Z0-9])*\\.)*[a-zA-Z]+((-)*[a-zA-Z0-9])*\\.?"
)

// extnDigits captures up to maxLength extension digits.
func extnDigits(maxLength int) string {
	return "(\\p{Nd}{1," + strconv.Itoa(maxLength) + "})"
}

// createExtnPattern builds the alternation recognizing extensions written
// after a number. Longer digit runs are only accepted after unambiguous
// labels.
func createExtnPattern(forParsing bool) string {
	const (
		extLimitAfterExplicitLabel = 20
		extLimitAfterLikelyLabel   = 15
		extLimitAfterAmbiguousChar = 9
		extLimitWhenNotSure        = 6
	)
	possibleSeparatorsBetweenNumberAndExtLabel := "[  \\t,]*"
	possibleCharsAfterExtLabel := "[:\\.．]?[  \\t,-]*"
	optionalExtnSuffix := "#?"

	// "ext", "extn", "extension" (with or without the accent), fullwidth
	// variants, Russian and Portuguese labels.
	explicitExtLabels := "(?:e?xt(?:ensi(?:ó?|ó))?n?|" +
		"ｅ?ｘｔｎ?|доб|anexo)"
	ambiguousExtLabels := "(?:[xｘ#＃~～]|int|ｉｎｔ)"
	ambiguousSeparator := "[- ]+"
	possibleSeparatorsNumberExtLabelNoComma := "[  \\t]*"
	autoDiallingAndExtLabelsFound := "(?:,{2}|;)"

	rfcExtn := rfc3966ExtnPrefix + extnDigits(extLimitAfterExplicitLabel)
	explicitExtn := possibleSeparatorsBetweenNumberAndExtLabel + explicitExtLabels +
		possibleCharsAfterExtLabel + extnDigits(extLimitAfterExplicitLabel) + optionalExtnSuffix
	ambiguousExtn := possibleSeparatorsBetweenNumberAndExtLabel + ambiguousExtLabels +
		possibleCharsAfterExtLabel + extnDigits(extLimitAfterAmbiguousChar) + optionalExtnSuffix
	americanStyleExtnWithSuffix := ambiguousSeparator + extnDigits(extLimitWhenNotSure) + "#"

	extensionPattern := rfcExtn + "|" + explicitExtn + "|" + ambiguousExtn + "|" + americanStyleExtnWithSuffix
	if forParsing {
		autoDiallingExtn := possibleSeparatorsNumberExtLabelNoComma + autoDiallingAndExtLabelsFound +
			possibleCharsAfterExtLabel + extnDigits(extLimitAfterLikelyLabel) + optionalExtnSuffix
		onlyCommasExtn := possibleSeparatorsNumberExtLabelNoComma + "(?:,)+" +
			possibleCharsAfterExtLabel + extnDigits(extLimitAfterAmbiguousChar) + optionalExtnSuffix
		return extensionPattern + "|" + autoDiallingExtn + "|" + onlyCommasExtn
	}
	return extensionPattern
}

// alphaMappings maps keypad letters to digits.
var alphaMappings = map[rune]rune{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// decimalDigitValue converts the decimal digits the engine normalizes:
// ASCII, fullwidth, Arabic-Indic and Eastern Arabic-Indic.
func decimalDigitValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 0xFF10 && r <= 0xFF19:
		return byte(r - 0xFF10), true
	case r >= 0x0660 && r <= 0x0669:
		return byte(r - 0x0660), true
	case r >= 0x06F0 && r <= 0x06F9:
		return byte(r - 0x06F0), true
	}
	return 0, false
}

// normalizeDigits keeps digits (converted to ASCII) and, when keepNonDigits
// is set, every other character verbatim.
func normalizeDigits(number string, keepNonDigits bool) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if d, ok := decimalDigitValue(r); ok {
			b.WriteByte('0' + d)
		} else if keepNonDigits {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeHelper rewrites number through a character mapping. Characters
// absent from the mapping are dropped when removeNonMatches is set and kept
// verbatim otherwise.
func normalizeHelper(number string, mappings map[rune]rune, removeNonMatches bool) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if m, ok := mappings[unicode.ToUpper(r)]; ok {
			b.WriteRune(m)
		} else if !removeNonMatches {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// alphaPhoneMappings extends the keypad letters with ASCII digits mapped to
// themselves.
var alphaPhoneMappings = func() map[rune]rune {
	m := make(map[rune]rune, len(alphaMappings)+10)
	for k, v := range alphaMappings {
		m[k] = v
	}
	for d := '0'; d <= '9'; d++ {
		m[d] = d
	}
	return m
}()

// NormalizeDigitsOnly strips everything but digits, converting non-ASCII
// decimal digits along the way.
func NormalizeDigitsOnly(number string) string {
	return normalizeDigits(number, false)
}

// NormalizeDiallableCharsOnly keeps digits and the diallable symbols '+',
// '*' and '#'.
func NormalizeDiallableCharsOnly(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		switch {
		case r == '+' || r == 0xFF0B:
			b.WriteByte('+')
		case r == '*' || r == '#':
			b.WriteRune(r)
		default:
			if d, ok := decimalDigitValue(r); ok {
				b.WriteByte('0' + d)
			}
		}
	}
	return b.String()
}

// ConvertAlphaCharactersInNumber converts keypad letters to digits and keeps
// every other character.
func ConvertAlphaCharactersInNumber(number string) string {
	return normalizeHelper(number, alphaPhoneMappings, false)
}

func formatUint(n uint64) string { return strconv.FormatUint(n, 10) }
