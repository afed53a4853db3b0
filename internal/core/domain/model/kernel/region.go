package kernel

import (
	"fmt"

	"jastip/internal/pkg/errs"
)

// Region represents a destination region a customer's parcels are delivered to.
// It is a closed enumeration: any value outside the set is rejected at the
// point a customer's region is set.
//
// Region is a value object; the zero value (RegionUnknown) means "not set",
// which is a legal state for customers who have not filled in their address yet.
type Region int

const (
	// RegionUnknown means no destination region has been chosen yet.
	RegionUnknown Region = iota

	// RegionLembata is the Lembata destination region.
	RegionLembata

	// RegionWaiwerang is the Waiwerang destination region.
	RegionWaiwerang

	// RegionWitihama is the Witihama destination region.
	RegionWitihama

	// RegionLarantuka is the Larantuka destination region.
	RegionLarantuka
)

// getRegionCodes returns a map of valid Region values to their wire codes.
// RegionUnknown is intentionally excluded: it cannot be set explicitly.
func getRegionCodes() map[Region]string {
	return map[Region]string{
		RegionLembata:   "LEMBATA",
		RegionWaiwerang: "WAIWERANG",
		RegionWitihama:  "WITIHAMA",
		RegionLarantuka: "LARANTUKA",
	}
}

// getRegionLabels returns human-readable display names per region.
func getRegionLabels() map[Region]string {
	return map[Region]string{
		RegionLembata:   "Lembata",
		RegionWaiwerang: "Waiwerang",
		RegionWitihama:  "Witihama",
		RegionLarantuka: "Larantuka",
	}
}

// RegionFromString parses a region wire code (e.g. "LEMBATA").
// Returns an error for any value outside the closed set.
func RegionFromString(s string) (Region, error) {
	for region, code := range getRegionCodes() {
		if code == s {
			return region, nil
		}
	}
	return RegionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"region",
		fmt.Errorf("%q is not a known destination region", s),
	)
}

// String returns the wire code of the region ("LEMBATA", "WAIWERANG", ...).
// Returns an empty string for RegionUnknown so an unset region serializes
// as absent rather than as a bogus code.
func (r Region) String() string {
	if code, ok := getRegionCodes()[r]; ok {
		return code
	}
	return ""
}

// Label returns the display name of the region ("Lembata", "Waiwerang", ...).
// Returns "—" for RegionUnknown, matching how unset regions are shown on labels.
func (r Region) Label() string {
	if label, ok := getRegionLabels()[r]; ok {
		return label
	}
	return "—"
}

// IsSet reports whether the region has been chosen.
func (r Region) IsSet() bool {
	_, ok := getRegionCodes()[r]
	return ok
}

// Validate checks that the Region is one of the closed set of valid regions.
// RegionUnknown is invalid here: use IsSet when "not chosen yet" is acceptable.
func (r Region) Validate() error {
	if !r.IsSet() {
		return errs.NewValueIsInvalidErrorWithCause(
			"region",
			fmt.Errorf("%d is not a valid region", r),
		)
	}
	return nil
}
