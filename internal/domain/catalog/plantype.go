package catalog

import "strings"

// Plan type constants (single source of truth)
const (
	PlanTypeCountry  = "country"
	PlanTypeRegional = "regional"
)

// regionalKeywords is the fixed list of regional-sounding terms scanned in
// plan names when no stronger signal exists. Matched case-insensitively
// anywhere in the name.
var regionalKeywords = []string{
	"regional", "global", "multi country", "multipais", "multi-pais",
	"europa", "europe", "latinoamerica", "latam", "norteamerica",
	"caribe", "caribbean", "oriente medio", "middle east", "oceania",
}

// ClassifyPlanType resolves a plan's type through a priority cascade:
// an explicit type field beats a structural region/country signal, which
// beats the name keyword scan, which beats the "country" default.
func ClassifyPlanType(explicit, region, countryCode, name string) string {
	switch strings.ToLower(strings.TrimSpace(explicit)) {
	case PlanTypeCountry:
		return PlanTypeCountry
	case PlanTypeRegional:
		return PlanTypeRegional
	}

	if strings.TrimSpace(region) != "" {
		return PlanTypeRegional
	}
	if strings.TrimSpace(countryCode) != "" {
		return PlanTypeCountry
	}

	if NameLooksRegional(name) {
		return PlanTypeRegional
	}

	return PlanTypeCountry
}

// NameLooksRegional reports whether a plan name contains one of the fixed
// regional keywords, independent of position or casing.
func NameLooksRegional(name string) bool {
	lower := strings.ToLower(name)
	// Hyphens/accents in names would defeat a plain substring scan.
	lower = strings.ReplaceAll(lower, "-", " ")
	for _, kw := range regionalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// RegionFromName returns the region slug implied by a plan name, for plans
// classified regional purely by the keyword scan. Empty when the name only
// carries a generic term like "regional" or "global".
func RegionFromName(name string) string {
	lower := strings.ToLower(strings.ReplaceAll(name, "-", " "))
	candidates := []struct{ term, slug string }{
		{"europa", "europa"},
		{"europe", "europa"},
		{"latinoamerica", "latinoamerica"},
		{"latam", "latinoamerica"},
		{"norteamerica", "norteamerica"},
		{"caribe", "caribe"},
		{"caribbean", "caribe"},
		{"oriente medio", "oriente-medio"},
		{"middle east", "oriente-medio"},
		{"oceania", "oceania"},
	}
	for _, c := range candidates {
		if strings.Contains(lower, c.term) {
			return c.slug
		}
	}
	return ""
}
