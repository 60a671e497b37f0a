package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// NonGeoRegionID is the pseudo region assigned to country codes that do not
// map to a geographic region (universal toll-free, shared-cost networks, ...).
const NonGeoRegionID = "001"

// UnknownRegionID is returned for numbers whose calling code is not covered.
const UnknownRegionID = "ZZ"

// Store is a compiled, immutable index over a set of regions. Geographic
// regions are keyed by ID; non-geographic entities by calling code. For a
// shared calling code the main country is listed first.
type Store struct {
	regions  map[string]*Region
	nonGeo   map[int]*Region
	ccToReg  map[int][]string
	ccSorted []int
}

// NewStore indexes regions and normalizes parsing defaults. Region IDs must be
// unique; a calling code may be shared by several geographic regions but by at
// most one non-geographic entity.
func NewStore(regions []*Region) (*Store, error) {
	s := &Store{
		regions: make(map[string]*Region),
		nonGeo:  make(map[int]*Region),
		ccToReg: make(map[int][]string),
	}
	for _, r := range regions {
		if r.ID == "" || r.CountryCode <= 0 {
			return nil, fmt.Errorf("metadata: region %q with calling code %d is not usable", r.ID, r.CountryCode)
		}
		if r.NationalPrefixForParsing == "" {
			r.NationalPrefixForParsing = r.NationalPrefix
		}
		if r.ID == NonGeoRegionID {
			if _, dup := s.nonGeo[r.CountryCode]; dup {
				return nil, fmt.Errorf("metadata: duplicate non-geographic entity for calling code %d", r.CountryCode)
			}
			s.nonGeo[r.CountryCode] = r
			continue
		}
		if _, dup := s.regions[r.ID]; dup {
			return nil, fmt.Errorf("metadata: duplicate region %s", r.ID)
		}
		s.regions[r.ID] = r
		if r.MainCountryForCode {
			s.ccToReg[r.CountryCode] = append([]string{r.ID}, s.ccToReg[r.CountryCode]...)
		} else {
			s.ccToReg[r.CountryCode] = append(s.ccToReg[r.CountryCode], r.ID)
		}
	}
	for cc := range s.ccToReg {
		s.ccSorted = append(s.ccSorted, cc)
	}
	for cc := range s.nonGeo {
		if _, clash := s.ccToReg[cc]; clash {
			return nil, fmt.Errorf("metadata: calling code %d is both geographic and non-geographic", cc)
		}
		s.ccSorted = append(s.ccSorted, cc)
	}
	sort.Ints(s.ccSorted)
	return s, nil
}

// FromJSON decodes a JSON array of regions and builds a store.
func FromJSON(r io.Reader) (*Store, error) {
	var regions []*Region
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&regions); err != nil {
		return nil, fmt.Errorf("metadata: decode regions: %w", err)
	}
	return NewStore(regions)
}

// Region returns the metadata for a geographic region ID, or nil.
func (s *Store) Region(id string) *Region { return s.regions[id] }

// NonGeoEntity returns the metadata for a non-geographic calling code, or nil.
func (s *Store) NonGeoEntity(countryCode int) *Region { return s.nonGeo[countryCode] }

// RegionsForCountryCode lists the geographic region IDs sharing a calling
// code (main country first), or ["001"] for a non-geographic code, or nil.
func (s *Store) RegionsForCountryCode(countryCode int) []string {
	if ids, ok := s.ccToReg[countryCode]; ok {
		out := make([]string, len(ids))
		copy(out, ids)
		return out
	}
	if _, ok := s.nonGeo[countryCode]; ok {
		return []string{NonGeoRegionID}
	}
	return nil
}

// HasCountryCode reports whether the calling code is covered at all.
func (s *Store) HasCountryCode(countryCode int) bool {
	_, geo := s.ccToReg[countryCode]
	_, non := s.nonGeo[countryCode]
	return geo || non
}

// RegionIDs returns all geographic region IDs, sorted.
func (s *Store) RegionIDs() []string {
	ids := make([]string, 0, len(s.regions))
	for id := range s.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CountryCodes returns every covered calling code, sorted.
func (s *Store) CountryCodes() []int {
	out := make([]int, len(s.ccSorted))
	copy(out, s.ccSorted)
	return out
}

// NonGeoCountryCodes returns the calling codes of non-geographic entities,
// sorted.
func (s *Store) NonGeoCountryCodes() []int {
	var out []int
	for cc := range s.nonGeo {
		out = append(out, cc)
	}
	sort.Ints(out)
	return out
}
