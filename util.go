package phonekit

import (
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/davidleathers/phonekit/internal/regexcache"
	"github.com/davidleathers/phonekit/metadata"
)

// NonGeoRegionID identifies non-geographic numbering plans such as universal
// toll-free numbers.
const NonGeoRegionID = metadata.NonGeoRegionID

// UnknownRegionID is returned when a number's calling code is not covered.
const UnknownRegionID = metadata.UnknownRegionID

// mobileTokens are dialled between country code and national number for
// mobile numbers in some countries.
var mobileTokens = map[int]string{
	54: "9",
}

// geoMobileCountries are countries whose mobile numbers are geographical.
var geoMobileCountries = map[int]bool{
	52: true, // Mexico
	54: true, // Argentina
	55: true, // Brazil
	62: true, // Indonesia
	86: true, // China
}

// geoMobileCountriesWithoutMobileAreaCodes are geo-mobile countries whose
// mobile numbers still carry no area code.
var geoMobileCountriesWithoutMobileAreaCodes = map[int]bool{
	86: true, // China
}

// Util is the phone number engine. It is safe for concurrent use.
type Util struct {
	store *metadata.Store
	cache *regexcache.Cache
	log   *zap.Logger
}

// New builds an engine over a metadata store. A nil logger disables logging.
func New(store *metadata.Store, logger *zap.Logger) *Util {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Util{
		store: store,
		cache: regexcache.New(),
		log:   logger,
	}
}

// regexFor compiles a metadata pattern, treating compile failures as
// non-matching. Metadata is trusted input; a bad pattern is logged once.
func (u *Util) regexFor(pattern string) *regexp.Regexp {
	re, err := u.cache.Get(pattern)
	if err != nil {
		u.log.Warn("bad pattern in metadata", zap.String("pattern", pattern), zap.Error(err))
		return nil
	}
	return re
}

func (u *Util) entire(pattern string) *regexp.Regexp {
	re, err := u.cache.Entire(pattern)
	if err != nil {
		u.log.Warn("bad pattern in metadata", zap.String("pattern", pattern), zap.Error(err))
		return nil
	}
	return re
}

func (u *Util) prefix(pattern string) *regexp.Regexp {
	re, err := u.cache.Prefix(pattern)
	if err != nil {
		u.log.Warn("bad pattern in metadata", zap.String("pattern", pattern), zap.Error(err))
		return nil
	}
	return re
}

// matchesEntirely reports whether candidate as a whole matches pattern.
func (u *Util) matchesEntirely(pattern, candidate string) bool {
	if pattern == "" {
		return false
	}
	re := u.entire(pattern)
	return re != nil && re.MatchString(candidate)
}

// matchesPrefix reports whether pattern matches at the start of candidate,
// returning the match length.
func (u *Util) matchesPrefix(pattern, candidate string) (int, bool) {
	re := u.prefix(pattern)
	if re == nil {
		return 0, false
	}
	loc := re.FindStringIndex(candidate)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

// SupportedRegions lists every geographic region the store covers.
func (u *Util) SupportedRegions() []string { return u.store.RegionIDs() }

// SupportedCallingCodes lists every calling code the store covers.
func (u *Util) SupportedCallingCodes() []int { return u.store.CountryCodes() }

// SupportedGlobalNetworkCallingCodes lists the non-geographic calling codes.
func (u *Util) SupportedGlobalNetworkCallingCodes() []int { return u.store.NonGeoCountryCodes() }

// IsValidRegionCode reports whether the region is a known geographic region.
func (u *Util) IsValidRegionCode(regionCode string) bool {
	return regionCode != "" && u.store.Region(regionCode) != nil
}

func (u *Util) hasValidCountryCallingCode(countryCode int) bool {
	return u.store.HasCountryCode(countryCode)
}

// GetMetadataForRegion exposes the raw metadata of a geographic region.
func (u *Util) GetMetadataForRegion(regionCode string) *metadata.Region {
	return u.store.Region(regionCode)
}

// GetMetadataForNonGeographicalRegion exposes the metadata of a
// non-geographic calling code.
func (u *Util) GetMetadataForNonGeographicalRegion(countryCode int) *metadata.Region {
	return u.store.NonGeoEntity(countryCode)
}

// metadataForRegionOrCallingCode resolves metadata given a calling code and
// the region it maps to.
func (u *Util) metadataForRegionOrCallingCode(countryCode int, regionCode string) *metadata.Region {
	if regionCode == NonGeoRegionID {
		return u.store.NonGeoEntity(countryCode)
	}
	return u.store.Region(regionCode)
}

// GetRegionCodeForCountryCode returns the main region for a calling code,
// "001" for non-geographic codes, or "ZZ".
func (u *Util) GetRegionCodeForCountryCode(countryCode int) string {
	regions := u.store.RegionsForCountryCode(countryCode)
	if len(regions) == 0 {
		return UnknownRegionID
	}
	return regions[0]
}

// GetRegionCodesForCountryCode returns every region sharing a calling code,
// main country first. Nil for unknown codes.
func (u *Util) GetRegionCodesForCountryCode(countryCode int) []string {
	return u.store.RegionsForCountryCode(countryCode)
}

// GetCountryCodeForRegion returns the calling code of a region, or 0.
func (u *Util) GetCountryCodeForRegion(regionCode string) int {
	meta := u.store.Region(regionCode)
	if meta == nil {
		return 0
	}
	return meta.CountryCode
}

// GetRegionCodeForNumber finds the region a parsed number belongs to, using
// leading digits and type probing when the calling code is shared.
func (u *Util) GetRegionCodeForNumber(number *PhoneNumber) string {
	regions := u.store.RegionsForCountryCode(number.CountryCode)
	switch len(regions) {
	case 0:
		return UnknownRegionID
	case 1:
		return regions[0]
	}
	nsn := number.NationalSignificantNumber()
	for _, regionCode := range regions {
		meta := u.store.Region(regionCode)
		if meta == nil {
			continue
		}
		if meta.LeadingDigits != "" {
			if _, ok := u.matchesPrefix(meta.LeadingDigits, nsn); ok {
				return regionCode
			}
		} else if u.numberTypeHelper(nsn, meta) != TypeUnknown {
			return regionCode
		}
	}
	return UnknownRegionID
}

// IsNANPACountry reports whether the region participates in the North
// American Numbering Plan.
func (u *Util) IsNANPACountry(regionCode string) bool {
	for _, id := range u.store.RegionsForCountryCode(nanpaCountryCode) {
		if id == regionCode {
			return true
		}
	}
	return false
}

// GetNddPrefixForRegion returns the national dialling prefix of a region.
// With stripNonDigits set, a "~" wait marker is removed.
func (u *Util) GetNddPrefixForRegion(regionCode string, stripNonDigits bool) string {
	meta := u.store.Region(regionCode)
	if meta == nil {
		return ""
	}
	prefix := meta.NationalPrefix
	if stripNonDigits {
		prefix = removeAll(prefix, '~')
	}
	return prefix
}

// GetCountryMobileToken returns the token dialled before mobile national
// numbers for the given calling code, if any.
func GetCountryMobileToken(countryCode int) string {
	return mobileTokens[countryCode]
}

// SupportedTypesForRegion lists the number types a region has data for. The
// boolean is false for unknown regions.
func (u *Util) SupportedTypesForRegion(regionCode string) ([]PhoneNumberType, bool) {
	meta := u.store.Region(regionCode)
	if meta == nil {
		return nil, false
	}
	return supportedTypes(meta), true
}

// SupportedTypesForNonGeoEntity lists the number types a non-geographic
// calling code has data for.
func (u *Util) SupportedTypesForNonGeoEntity(countryCode int) ([]PhoneNumberType, bool) {
	meta := u.store.NonGeoEntity(countryCode)
	if meta == nil {
		return nil, false
	}
	return supportedTypes(meta), true
}

func supportedTypes(meta *metadata.Region) []PhoneNumberType {
	var out []PhoneNumberType
	for t := TypeFixedLine; t < TypeUnknown; t++ {
		if t == TypeFixedLineOrMobile {
			continue
		}
		if descByType(meta, t).HasData() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func descByType(meta *metadata.Region, numberType PhoneNumberType) *metadata.Desc {
	switch numberType {
	case TypeFixedLine, TypeFixedLineOrMobile:
		return meta.FixedLine
	case TypeMobile:
		return meta.Mobile
	case TypeTollFree:
		return meta.TollFree
	case TypePremiumRate:
		return meta.PremiumRate
	case TypeSharedCost:
		return meta.SharedCost
	case TypeVoIP:
		return meta.VoIP
	case TypePersonalNumber:
		return meta.PersonalNumber
	case TypePager:
		return meta.Pager
	case TypeUAN:
		return meta.UAN
	case TypeVoicemail:
		return meta.Voicemail
	default:
		return meta.GeneralDesc
	}
}

func removeAll(s string, c rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != c {
			out = append(out, r)
		}
	}
	return string(out)
}
