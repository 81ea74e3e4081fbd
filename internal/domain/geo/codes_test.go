package geo_test

import (
	"testing"

	"esim-store/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISORoundTrip(t *testing.T) {
	for _, c := range geo.Countries {
		iso3, ok := geo.ISO2ToISO3(c.ISO2)
		require.True(t, ok, "missing ISO2 %s", c.ISO2)
		assert.Equal(t, c.ISO3, iso3)

		iso2, ok := geo.ISO3ToISO2(c.ISO3)
		require.True(t, ok, "missing ISO3 %s", c.ISO3)
		assert.Equal(t, c.ISO2, iso2)
	}
}

func TestISOLookupCaseInsensitive(t *testing.T) {
	iso3, ok := geo.ISO2ToISO3("es")
	require.True(t, ok)
	assert.Equal(t, "ESP", iso3)

	iso2, ok := geo.ISO3ToISO2("esp")
	require.True(t, ok)
	assert.Equal(t, "ES", iso2)
}

func TestISOUnknownCode(t *testing.T) {
	_, ok := geo.ISO3ToISO2("XXX")
	assert.False(t, ok)

	_, ok = geo.ISO2ToISO3("ZZ")
	assert.False(t, ok)
}

func TestSlugByISO2_Fallback(t *testing.T) {
	assert.Equal(t, "spain", geo.SlugByISO2("ES"))
	// Unknown codes still give a usable lowercase join key.
	assert.Equal(t, "zz", geo.SlugByISO2("ZZ"))
}

func TestRegionMembership(t *testing.T) {
	europa, ok := geo.RegionBySlug("europa")
	require.True(t, ok)

	for _, want := range []string{"spain", "france", "germany", "italy"} {
		assert.Contains(t, europa.Members, want)
	}

	// Every member must exist in the country table.
	for _, r := range geo.Regions {
		for _, slug := range r.Members {
			_, ok := geo.CountryBySlug(slug)
			assert.True(t, ok, "region %s member %s not in country table", r.Slug, slug)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"España", "espana"},
		{"  Côte   d'Ivoire ", "cote divoire"},
		{"LATINOAMÉRICA", "latinoamerica"},
		{"united-states", "united states"},
		{"¡¿Perú?!", "peru"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, geo.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeRegionCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Europe", "europa"},
		{"Europa", "europa"},
		{"Latin America", "latinoamerica"},
		{"LATAM", "latinoamerica"},
		{"latinoamérica", "latinoamerica"},
		{"Middle East", "oriente-medio"},
		{"oriente medio", "oriente-medio"},
		// Unmapped input passes through lower-cased, never fails.
		{"Asia Central", "asia-central"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, geo.NormalizeRegionCode(tt.in), "NormalizeRegionCode(%q)", tt.in)
	}
}
