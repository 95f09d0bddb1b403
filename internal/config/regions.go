package config

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultRegionalMultiplier applies to region codes missing from the table.
const DefaultRegionalMultiplier = 1.0

// defaultRegionalMultipliers maps state codes to construction cost indices
// relative to a national baseline of 1.0.
var defaultRegionalMultipliers = map[string]float64{
	// High-cost markets
	"NY": 1.35,
	"CA": 1.30,
	"MA": 1.25,
	"WA": 1.20,
	"HI": 2.00, // island logistics

	// Above average
	"IL": 1.15,
	"CO": 1.12,
	"OR": 1.10,
	"PA": 1.08,
	"MN": 1.50, // winter construction

	// Baseline
	"TX": 1.00,
	"FL": 1.00,
	"NC": 0.98,
	"GA": 0.97,
	"AZ": 0.96,

	// Below average
	"TN": 0.92,
	"OH": 0.90,
	"IN": 0.88,
	"NV": 0.95,
	"MI": 0.93,
}

// RegionTable is an immutable region code -> cost multiplier lookup.
type RegionTable struct {
	m map[string]float64
}

var defaultRegions = RegionTable{m: defaultRegionalMultipliers}

// DefaultRegions returns the built-in table.
func DefaultRegions() RegionTable {
	return defaultRegions
}

// NewRegionTable layers overrides on top of the built-in table. Codes are
// upper-cased; multipliers must be positive.
func NewRegionTable(overrides map[string]float64) (RegionTable, error) {
	m := make(map[string]float64, len(defaultRegionalMultipliers)+len(overrides))
	for code, mult := range defaultRegionalMultipliers {
		m[code] = mult
	}
	for code, mult := range overrides {
		if mult <= 0 {
			return RegionTable{}, fmt.Errorf("region %s: multiplier must be positive, got %g", code, mult)
		}
		m[normalizeRegion(code)] = mult
	}
	return RegionTable{m: m}, nil
}

// Multiplier returns the cost multiplier for code, or
// DefaultRegionalMultiplier when the code is unknown.
func (t RegionTable) Multiplier(code string) float64 {
	if mult, ok := t.m[normalizeRegion(code)]; ok {
		return mult
	}
	return DefaultRegionalMultiplier
}

// Known reports whether code has an explicit entry.
func (t RegionTable) Known(code string) bool {
	_, ok := t.m[normalizeRegion(code)]
	return ok
}

// Codes returns the region codes in the table, sorted.
func (t RegionTable) Codes() []string {
	codes := make([]string, 0, len(t.m))
	for code := range t.m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func normalizeRegion(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
