package catalog

import (
	"strings"

	"esim-store/internal/domain/geo"
)

// PlanFilter is the Plan Query Layer selection: exactly one of CountryISO2
// or RegionCode is expected, plus optional attribute filters.
type PlanFilter struct {
	CountryISO2 string // lowercase or uppercase, matched case-insensitively
	CategoryID  uint   // the country's category id, if known
	RegionCode  string
	Local       bool // region view: also surface country plans of member countries

	MinDays  int
	MaxDays  int
	MinGB    float64
	PlanType string // "country" | "regional" | "" (both)
}

// FilterPlans applies a selection to the synced plan set. A country view
// matches plans carrying that country's category as well as regional plans
// whose coverage list includes the country's ISO-3 equivalent. A region
// view matches regional plans with that region code, plus (when Local is
// set) country plans of the region's static member list.
func FilterPlans(plans []Plan, f PlanFilter) []Plan {
	var out []Plan
	for i := range plans {
		p := plans[i]
		if !p.Active {
			continue
		}
		if !matchesSelection(&p, f) {
			continue
		}
		if !matchesAttributes(&p, f) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSelection(p *Plan, f PlanFilter) bool {
	if f.CountryISO2 != "" {
		country, ok := geo.CountryByISO2(f.CountryISO2)
		if hasCategory(p, f.CategoryID) {
			return true
		}
		if p.PlanType == PlanTypeRegional && ok && p.CoversISO3(country.ISO3) {
			return true
		}
		// No category id supplied: fall back to the plan's own country code.
		if f.CategoryID == 0 && p.PlanType == PlanTypeCountry && ok &&
			p.CountryCode == lowerISO2(country.ISO2) {
			return true
		}
		return false
	}

	if f.RegionCode != "" {
		if p.PlanType == PlanTypeRegional && p.RegionCode == f.RegionCode {
			return true
		}
		if f.Local && p.PlanType == PlanTypeCountry {
			if region, ok := geo.RegionBySlug(f.RegionCode); ok {
				for _, slug := range region.Members {
					if c, ok := geo.CountryBySlug(slug); ok && lowerISO2(c.ISO2) == p.CountryCode {
						return true
					}
				}
			}
		}
		return false
	}

	return true
}

func matchesAttributes(p *Plan, f PlanFilter) bool {
	if f.PlanType != "" && p.PlanType != f.PlanType {
		return false
	}
	if f.MinDays > 0 && (p.ValidityDays == 0 || p.ValidityDays < f.MinDays) {
		return false
	}
	if f.MaxDays > 0 && p.ValidityDays > f.MaxDays {
		return false
	}
	if f.MinGB > 0 && p.DataGB < f.MinGB {
		return false
	}
	return true
}

func lowerISO2(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func hasCategory(p *Plan, id uint) bool {
	if id == 0 {
		return false
	}
	for _, c := range p.CategoryIDs {
		if uint(c) == id {
			return true
		}
	}
	return false
}
