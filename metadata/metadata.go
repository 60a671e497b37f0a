// Package metadata holds the region-scoped numbering plan model that drives
// parsing, validation and formatting. Metadata is plain data: patterns are
// kept as strings and compiled lazily by the engine.
package metadata

// NumberFormat describes one way of grouping a national significant number,
// guarded by leading-digit patterns.
type NumberFormat struct {
	// Pattern captures the digit groups, e.g. `(\d{3})(\d{3})(\d{4})`.
	Pattern string `json:"pattern"`
	// Format references the captured groups with $1, $2, ...
	Format string `json:"format"`
	// LeadingDigits is a list of refinements; only the last entry is
	// consulted, matched against the start of the national number.
	LeadingDigits []string `json:"leadingDigits,omitempty"`
	// NationalPrefixFormattingRule, when non-empty, is spliced into Format
	// in place of the first group token for NATIONAL output. "$1" inside the
	// rule stands for that token, e.g. "0$1" or "(0$1)".
	NationalPrefixFormattingRule string `json:"nationalPrefixFormattingRule,omitempty"`
	// DomesticCarrierCodeFormattingRule works like the rule above but also
	// substitutes "$CC" with a carrier code before splicing.
	DomesticCarrierCodeFormattingRule string `json:"carrierCodeFormattingRule,omitempty"`
}

// Desc describes one class of numbers (fixed line, mobile, ...) within a
// region.
//
// A nil Desc means the region has no numbers of that class. A Desc whose
// PossibleLength is exactly [-1] carries no length data either; an empty
// PossibleLength inherits the general description's lengths.
type Desc struct {
	NationalNumberPattern   string `json:"nationalNumberPattern,omitempty"`
	PossibleLength          []int  `json:"possibleLength,omitempty"`
	PossibleLengthLocalOnly []int  `json:"possibleLengthLocalOnly,omitempty"`
	ExampleNumber           string `json:"exampleNumber,omitempty"`
}

// HasNationalNumberPattern reports whether the description constrains numbers
// by pattern at all.
func (d *Desc) HasNationalNumberPattern() bool {
	return d != nil && d.NationalNumberPattern != ""
}

// HasData reports whether the description carries usable length data. The
// single-element [-1] sentinel marks an intentionally empty description.
func (d *Desc) HasData() bool {
	if d == nil {
		return false
	}
	if len(d.PossibleLength) == 1 && d.PossibleLength[0] == -1 {
		return d.ExampleNumber != "" || d.NationalNumberPattern != ""
	}
	return true
}

// Region is the numbering plan for one region or one non-geographic entity
// (ID "001").
type Region struct {
	ID                           string `json:"id"`
	CountryCode                  int    `json:"countryCode"`
	InternationalPrefix          string `json:"internationalPrefix,omitempty"`
	PreferredInternationalPrefix string `json:"preferredInternationalPrefix,omitempty"`
	NationalPrefix               string `json:"nationalPrefix,omitempty"`
	PreferredExtnPrefix          string `json:"preferredExtnPrefix,omitempty"`
	// NationalPrefixForParsing defaults to NationalPrefix when empty; the
	// store fills it in at build time.
	NationalPrefixForParsing    string `json:"nationalPrefixForParsing,omitempty"`
	NationalPrefixTransformRule string `json:"nationalPrefixTransformRule,omitempty"`
	// LeadingDigits disambiguates regions sharing a calling code (e.g. YT
	// within +262).
	LeadingDigits      string `json:"leadingDigits,omitempty"`
	MainCountryForCode bool   `json:"mainCountryForCode,omitempty"`

	NumberFormats []*NumberFormat `json:"numberFormats,omitempty"`
	// IntlNumberFormats, when present, replaces NumberFormats for
	// INTERNATIONAL and RFC3966 output.
	IntlNumberFormats []*NumberFormat `json:"intlNumberFormats,omitempty"`

	GeneralDesc             *Desc `json:"generalDesc,omitempty"`
	FixedLine               *Desc `json:"fixedLine,omitempty"`
	Mobile                  *Desc `json:"mobile,omitempty"`
	TollFree                *Desc `json:"tollFree,omitempty"`
	PremiumRate             *Desc `json:"premiumRate,omitempty"`
	SharedCost              *Desc `json:"sharedCost,omitempty"`
	PersonalNumber          *Desc `json:"personalNumber,omitempty"`
	VoIP                    *Desc `json:"voip,omitempty"`
	Pager                   *Desc `json:"pager,omitempty"`
	UAN                     *Desc `json:"uan,omitempty"`
	Voicemail               *Desc `json:"voicemail,omitempty"`
	NoInternationalDialling *Desc `json:"noInternationalDialling,omitempty"`
}

// HasNationalPrefix reports whether numbers in the region are dialled with a
// national prefix.
func (r *Region) HasNationalPrefix() bool { return r.NationalPrefix != "" }
