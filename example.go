package phonekit

import (
	"fmt"
	"strconv"

	"github.com/davidleathers/phonekit/metadata"
)

// GetExampleNumber returns a valid fixed-line example for a region.
func (u *Util) GetExampleNumber(regionCode string) (*PhoneNumber, error) {
	return u.GetExampleNumberForType(regionCode, TypeFixedLine)
}

// GetExampleNumberForType returns a valid example of the given type, or
// ErrNoExampleNumber when the region carries none.
func (u *Util) GetExampleNumberForType(regionCode string, numberType PhoneNumberType) (*PhoneNumber, error) {
	meta := u.store.Region(regionCode)
	if meta == nil {
		return nil, fmt.Errorf("region %q: %w", regionCode, ErrNoExampleNumber)
	}
	desc := descByType(meta, numberType)
	if desc == nil || desc.ExampleNumber == "" {
		return nil, fmt.Errorf("region %q has no %v example: %w", regionCode, numberType, ErrNoExampleNumber)
	}
	number, err := u.Parse(desc.ExampleNumber, regionCode)
	if err != nil {
		return nil, fmt.Errorf("region %q %v example: %w", regionCode, numberType, ErrNoExampleNumber)
	}
	return number, nil
}

// GetExampleNumberForTypeAnywhere searches every region, then the
// non-geographic entities, for an example of the given type.
func (u *Util) GetExampleNumberForTypeAnywhere(numberType PhoneNumberType) (*PhoneNumber, error) {
	for _, regionCode := range u.SupportedRegions() {
		if number, err := u.GetExampleNumberForType(regionCode, numberType); err == nil {
			return number, nil
		}
	}
	for _, countryCode := range u.store.NonGeoCountryCodes() {
		meta := u.store.NonGeoEntity(countryCode)
		desc := descByType(meta, numberType)
		if desc == nil || desc.ExampleNumber == "" {
			continue
		}
		number, err := u.Parse("+"+strconv.Itoa(countryCode)+desc.ExampleNumber, UnknownRegionID)
		if err == nil {
			return number, nil
		}
	}
	return nil, fmt.Errorf("no %v example anywhere: %w", numberType, ErrNoExampleNumber)
}

// GetExampleNumberForNonGeoEntity returns a valid example for a
// non-geographic calling code.
func (u *Util) GetExampleNumberForNonGeoEntity(countryCode int) (*PhoneNumber, error) {
	meta := u.store.NonGeoEntity(countryCode)
	if meta == nil {
		return nil, fmt.Errorf("calling code %d: %w", countryCode, ErrNoExampleNumber)
	}
	descs := []*metadata.Desc{
		meta.Mobile, meta.TollFree, meta.SharedCost, meta.VoIP,
		meta.Voicemail, meta.UAN, meta.PremiumRate,
	}
	for _, desc := range descs {
		if desc == nil || desc.ExampleNumber == "" {
			continue
		}
		number, err := u.Parse("+"+strconv.Itoa(countryCode)+desc.ExampleNumber, UnknownRegionID)
		if err == nil {
			return number, nil
		}
	}
	return nil, fmt.Errorf("calling code %d: %w", countryCode, ErrNoExampleNumber)
}

// GetInvalidExampleNumber returns a number that is possible in the region but
// not valid, built by truncating the fixed-line example. Useful for negative
// test fixtures.
func (u *Util) GetInvalidExampleNumber(regionCode string) (*PhoneNumber, error) {
	meta := u.store.Region(regionCode)
	if meta == nil {
		return nil, fmt.Errorf("region %q: %w", regionCode, ErrNoExampleNumber)
	}
	desc := meta.FixedLine
	if desc == nil || desc.ExampleNumber == "" {
		return nil, fmt.Errorf("region %q: %w", regionCode, ErrNoExampleNumber)
	}
	example := desc.ExampleNumber
	// Shortening a valid number usually produces an invalid one. Stop above
	// the global minimum so the candidate still parses.
	for length := len(example) - 1; length >= minLengthForNSN; length-- {
		candidate := example[:length]
		number, err := u.Parse(candidate, regionCode)
		if err != nil {
			continue
		}
		if !u.IsValidNumber(number) {
			return number, nil
		}
	}
	return nil, fmt.Errorf("region %q: %w", regionCode, ErrNoExampleNumber)
}
