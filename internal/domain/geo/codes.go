package geo

import "strings"

// Directional indices over the country table, built once at package init
// and consumed by reference everywhere else. The two ISO maps are exact
// inverses of each other by construction.
var (
	iso2ToISO3    map[string]string
	iso3ToISO2    map[string]string
	countryBySlug map[string]Country
	countryByISO2 map[string]Country
)

func init() {
	iso2ToISO3 = make(map[string]string, len(Countries))
	iso3ToISO2 = make(map[string]string, len(Countries))
	countryBySlug = make(map[string]Country, len(Countries))
	countryByISO2 = make(map[string]Country, len(Countries))

	for _, c := range Countries {
		iso2ToISO3[c.ISO2] = c.ISO3
		iso3ToISO2[c.ISO3] = c.ISO2
		countryBySlug[c.Slug] = c
		countryByISO2[c.ISO2] = c
	}
}

// ISO2ToISO3 converts an alpha-2 code to alpha-3. The lookup is
// case-insensitive; ok is false for codes outside the table.
func ISO2ToISO3(iso2 string) (string, bool) {
	v, ok := iso2ToISO3[strings.ToUpper(strings.TrimSpace(iso2))]
	return v, ok
}

// ISO3ToISO2 converts an alpha-3 code to alpha-2.
func ISO3ToISO2(iso3 string) (string, bool) {
	v, ok := iso3ToISO2[strings.ToUpper(strings.TrimSpace(iso3))]
	return v, ok
}

// CountryBySlug returns the table entry for a category slug.
func CountryBySlug(slug string) (Country, bool) {
	c, ok := countryBySlug[strings.ToLower(strings.TrimSpace(slug))]
	return c, ok
}

// CountryByISO2 returns the table entry for an alpha-2 code.
func CountryByISO2(iso2 string) (Country, bool) {
	c, ok := countryByISO2[strings.ToUpper(strings.TrimSpace(iso2))]
	return c, ok
}

// SlugByISO2 resolves the category slug for an alpha-2 code. Codes outside
// the table fall back to the lower-cased code itself so callers always get
// a usable join key.
func SlugByISO2(iso2 string) string {
	if c, ok := CountryByISO2(iso2); ok {
		return c.Slug
	}
	return strings.ToLower(strings.TrimSpace(iso2))
}
