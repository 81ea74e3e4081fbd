package sync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWooCommerceProvider_FetchPlans(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wc/v3/products", r.URL.Path)
		gotQuery = map[string]string{
			"consumer_key":    r.URL.Query().Get("consumer_key"),
			"consumer_secret": r.URL.Query().Get("consumer_secret"),
			"per_page":        r.URL.Query().Get("per_page"),
			"page":            r.URL.Query().Get("page"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": 101,
				"sku": "es-5gb-30d",
				"name": "Plan España 5GB",
				"description": "Cobertura nacional",
				"price": "12.99",
				"status": "publish",
				"meta_data": [
					{"key": "plan_type", "value": "country"},
					{"key": "country_code", "value": "es"},
					{"key": "data_gb", "value": "5"},
					{"key": "validity_days", "value": "30"},
					{"key": "has_5g", "value": "yes"},
					{"key": "regular_price_usd", "value": "14.99"},
					{"key": "custom_field", "value": "kept"}
				]
			},
			{
				"id": 102,
				"sku": "draft-plan",
				"name": "Borrador",
				"status": "draft",
				"meta_data": [
					{"key": "countries_iso3", "value": "ESP, FRA"}
				]
			}
		]`))
	}))
	defer server.Close()

	provider := NewWooCommerceProvider(server.URL, "ck_test", "cs_test")
	plans, err := provider.FetchPlans(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "ck_test", gotQuery["consumer_key"])
	assert.Equal(t, "cs_test", gotQuery["consumer_secret"])
	assert.Equal(t, "100", gotQuery["per_page"])
	assert.Equal(t, "2", gotQuery["page"])

	first := plans[0]
	assert.Equal(t, int64(101), first.ID)
	assert.Equal(t, "es-5gb-30d", first.SKU)
	assert.Equal(t, "country", first.PlanType)
	assert.Equal(t, "es", first.CountryCode)
	assert.Equal(t, "5", first.DataAmount)
	assert.Equal(t, "30", first.Validity)
	assert.Equal(t, "yes", first.Connectivity["5g"])
	require.Len(t, first.Prices, 1)
	assert.Equal(t, "USD", first.Prices[0].Currency)
	require.NotNil(t, first.Active)
	assert.True(t, *first.Active)
	// Unknown meta keys ride along untouched.
	assert.Equal(t, "kept", first.Meta["custom_field"])

	second := plans[1]
	require.NotNil(t, second.Active)
	assert.False(t, *second.Active, "non-publish status maps to inactive")
	assert.Equal(t, []string{"ESP", "FRA"}, second.CountriesISO3, "comma-separated list is split")
}

func TestWooCommerceProvider_FetchCategoriesPaginates(t *testing.T) {
	// Categories span two pages; the walk stops at the first empty page.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wc/v3/products/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`[
				{"id": 7, "name": "España", "slug": "spain", "parent": 0},
				{"id": 8, "name": "Islas Canarias", "slug": "canary-islands", "parent": 7}
			]`))
		case "2":
			w.Write([]byte(`[{"id": 9, "name": "Japón", "slug": "japan", "parent": 0}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	provider := NewWooCommerceProvider(server.URL, "k", "s")
	cats, err := provider.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 3)

	assert.Equal(t, int64(7), cats[0].ID)
	assert.Equal(t, "spain", cats[0].Slug)
	assert.Equal(t, int64(7), cats[1].Parent)
	assert.Equal(t, "japan", cats[2].Slug)
}

func TestWooCommerceProvider_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewWooCommerceProvider(server.URL, "bad", "bad")
	_, err := provider.FetchPlans(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestExternalPlansProvider_FetchPlans(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/plans", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("page"))
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"plans": [
				{
					"id": 55,
					"name": {"es": "Plan Europa", "en": "Europe Plan"},
					"description": {"es": "", "en": "Coverage across Europe"},
					"prices": [
						{"currency": "USD", "amount": 29.99},
						{"currency": "EUR", "amount": "27.50"}
					],
					"data_gb": 10,
					"validity_days": 15,
					"coverage": "regional",
					"region": "Europe",
					"countries": ["ESP", "FRA", "DEU"],
					"connectivity": {"5g": "true", "lte": "true"}
				},
				{
					"id": 56,
					"sku": "jp-unlimited",
					"name": {"es": "", "en": "Japan Unlimited"},
					"coverage": "country",
					"country_code": "jp"
				}
			]
		}`))
	}))
	defer server.Close()

	provider := NewExternalPlansProvider(server.URL, "tok-123")
	plans, err := provider.FetchPlans(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	assert.Equal(t, "Bearer tok-123", gotAuth)

	first := plans[0]
	assert.Equal(t, "ext-55", first.SKU, "missing sku is synthesized from the id")
	assert.Equal(t, "Plan Europa", first.Name)
	assert.Equal(t, "Europe Plan", first.NameEN)
	assert.Equal(t, "Coverage across Europe", first.Description, "falls back to English when Spanish is empty")
	assert.Equal(t, "regional", first.PlanType)
	assert.Equal(t, []string{"ESP", "FRA", "DEU"}, first.CountriesISO3)
	require.Len(t, first.Prices, 2)
	assert.Equal(t, "EUR", first.Prices[1].Currency)
	assert.Equal(t, "true", first.Connectivity["5g"])

	second := plans[1]
	assert.Equal(t, "jp-unlimited", second.SKU, "upstream sku wins over synthesis")
	assert.Equal(t, "Japan Unlimited", second.Name, "falls back to English name")
	assert.Equal(t, "jp", second.CountryCode)
}

func TestExternalPlansProvider_FetchCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") != "1" {
			w.Write([]byte(`{"categories": []}`))
			return
		}
		w.Write([]byte(`{"categories": [{"id": 3, "name": "Europa", "slug": "europa", "parent": 0}]}`))
	}))
	defer server.Close()

	provider := NewExternalPlansProvider(server.URL, "tok")
	cats, err := provider.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "europa", cats[0].Slug)
}
