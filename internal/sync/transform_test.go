package sync

import (
	"testing"
	"time"

	"esim-store/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syncTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestTransformPlan_ValidityClampAndDefaultTechnology(t *testing.T) {
	raw := RawPlan{
		ID:          1,
		SKU:         "es-5gb",
		Name:        "Plan España 5GB",
		CountryCode: "es",
		Validity:    "400",
	}

	plan, err := TransformPlan(raw, "woocommerce", syncTime)
	require.NoError(t, err)

	// 400 days is out of bounds and must not be stored.
	assert.Equal(t, 0, plan.ValidityDays)
	// No connectivity info and "5GB" is a data size, not a 5G hint.
	assert.Equal(t, catalog.Tech4G, plan.Technology)
	assert.False(t, plan.Has5G)
	assert.Equal(t, catalog.PlanTypeCountry, plan.PlanType)
	assert.Equal(t, "es", plan.CountryCode)
	assert.Empty(t, plan.RegionCode)
}

func TestTransformPlan_RegionalWithCoverageAndPrices(t *testing.T) {
	raw := RawPlan{
		ID:            2,
		PlanType:      "regional",
		Name:          "Plan sin nombre",
		CountriesISO3: []string{"ESP", "FRA", "DEU"},
		Prices:        []RawPrice{{Currency: "USD", Amount: "19.99"}},
	}

	plan, err := TransformPlan(raw, "external-plans", syncTime)
	require.NoError(t, err)

	assert.Equal(t, catalog.PlanTypeRegional, plan.PlanType)
	require.NotNil(t, plan.RegularPriceUSD)
	assert.InDelta(t, 19.99, *plan.RegularPriceUSD, 0.001)
	assert.Nil(t, plan.RegularPriceEUR)
	assert.Nil(t, plan.RegularPriceMXN)
	assert.Equal(t, []string{"ESP", "FRA", "DEU"}, plan.Meta().CountriesISO3)
	assert.Empty(t, plan.CountryCode)
}

func TestTransformPlan_TypeCodeInvariant(t *testing.T) {
	cases := []RawPlan{
		{ID: 1, CountryCode: "es", Name: "Plan España"},
		{ID: 2, Region: "Europe", Name: "x"},
		{ID: 3, Name: "Plan Europa 10GB"},
		{ID: 4, PlanType: "regional", Name: "Plan sin señal"},
		{ID: 5, CountriesISO3: []string{"JPN"}, Name: "Japón"},
	}

	for _, raw := range cases {
		plan, err := TransformPlan(raw, "t", syncTime)
		require.NoError(t, err, "raw id %d", raw.ID)

		if plan.PlanType == catalog.PlanTypeCountry {
			assert.NotEmpty(t, plan.CountryCode, "raw id %d", raw.ID)
			assert.Empty(t, plan.RegionCode, "raw id %d", raw.ID)
		} else {
			assert.NotEmpty(t, plan.RegionCode, "raw id %d", raw.ID)
			assert.Empty(t, plan.CountryCode, "raw id %d", raw.ID)
		}
	}
}

func TestTransformPlan_CountryCodeFromISO3(t *testing.T) {
	plan, err := TransformPlan(RawPlan{ID: 1, CountriesISO3: []string{"JPN"}, Name: "Japón"}, "t", syncTime)
	require.NoError(t, err)
	assert.Equal(t, "jp", plan.CountryCode)

	// Codes outside the table pass through uppercase instead of failing.
	plan, err = TransformPlan(RawPlan{ID: 2, CountriesISO3: []string{"xxx"}, Name: "Misterio"}, "t", syncTime)
	require.NoError(t, err)
	assert.Equal(t, "XXX", plan.CountryCode)
}

func TestTransformPlan_NoDerivableCountry(t *testing.T) {
	_, err := TransformPlan(RawPlan{ID: 9, Name: "Plan X"}, "t", syncTime)
	assert.ErrorIs(t, err, ErrNoCountry)
}

func TestTransformPlan_SKUSynthesis(t *testing.T) {
	plan, err := TransformPlan(RawPlan{ID: 42, CountryCode: "es", Name: "x"}, "woocommerce", syncTime)
	require.NoError(t, err)
	assert.Equal(t, "woocommerce-42", plan.SKU)

	_, err = TransformPlan(RawPlan{Name: "sin identidad", CountryCode: "es"}, "woocommerce", syncTime)
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestTransformPlan_DefaultsForMissingFields(t *testing.T) {
	plan, err := TransformPlan(RawPlan{ID: 1, CountryCode: "es"}, "t", syncTime)
	require.NoError(t, err)

	assert.Equal(t, "Plan sin nombre", plan.Name)
	assert.Equal(t, 0.0, plan.Price)
	assert.Equal(t, 0.0, plan.DataGB)
	assert.True(t, plan.Active)
	assert.Equal(t, "t-1", plan.Meta().ExternalID)
	assert.Equal(t, syncTime, plan.Meta().SyncedAt)
}

func TestTransformPlan_RegionalFromExplicitFlagOnly(t *testing.T) {
	plan, err := TransformPlan(RawPlan{ID: 3, PlanType: "regional", Name: "Pack mundial"}, "t", syncTime)
	require.NoError(t, err)
	// No region signal anywhere lands in the catch-all.
	assert.Equal(t, "global", plan.RegionCode)
}

func TestParseLooseFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{19.99, 19.99},
		{"19.99", 19.99},
		{"$1,234.50", 1234.50},
		{"20 USD", 20},
		{" 5GB ", 5},
		{"", 0},
		{"abc", 0},
		{nil, 0},
		{7, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLooseFloat(tt.in), "parseLooseFloat(%v)", tt.in)
	}
}

func TestParseLooseFloatPtr(t *testing.T) {
	assert.Nil(t, parseLooseFloatPtr(nil))
	assert.Nil(t, parseLooseFloatPtr("n/a"))

	v := parseLooseFloatPtr("9.50")
	require.NotNil(t, v)
	assert.InDelta(t, 9.5, *v, 0.001)

	zero := parseLooseFloatPtr("0")
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, *zero)
}
