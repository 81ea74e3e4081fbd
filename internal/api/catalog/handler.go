package catalogapi

import (
	"net/http"
	"strconv"
	"strings"

	"esim-store/config"
	"esim-store/database"
	"esim-store/internal/domain/catalog"
	"esim-store/internal/domain/geo"
	"esim-store/internal/search"
	syncengine "esim-store/internal/sync"

	"github.com/gin-gonic/gin"
)

// SyncWooCommerce triggers a full catalog sync from the WooCommerce store.
// Missing provider credentials fail fast before any network call.
func SyncWooCommerce(c *gin.Context) {
	if config.WOO_URL == "" || config.WOO_CONSUMER_KEY == "" || config.WOO_CONSUMER_SECRET == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WooCommerce provider not configured"})
		return
	}
	provider := syncengine.NewWooCommerceProvider(config.WOO_URL, config.WOO_CONSUMER_KEY, config.WOO_CONSUMER_SECRET)
	runSync(c, provider)
}

// SyncExternalPlans triggers a full catalog sync from the external plans API.
func SyncExternalPlans(c *gin.Context) {
	if config.PLANS_API_URL == "" || config.PLANS_API_TOKEN == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "External plans provider not configured"})
		return
	}
	provider := syncengine.NewExternalPlansProvider(config.PLANS_API_URL, config.PLANS_API_TOKEN)
	runSync(c, provider)
}

func runSync(c *gin.Context, provider syncengine.Provider) {
	engine := syncengine.NewEngine(syncengine.NewGormStore(database.DB))
	report, err := engine.Sync(c.Request.Context(), provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "stats": report})
		return
	}

	// The category snapshot may have changed.
	InvalidateSearchEngine()

	c.JSON(http.StatusOK, gin.H{
		"message": "Sync completed",
		"stats":   report,
	})
}

// SearchCategories runs the intelligent search. An empty query returns the
// whole catalog (browse mode); a query with no hits comes back with
// suggestions so the UI can render a "did you mean" state.
func SearchCategories(c *gin.Context) {
	engine, err := searchEngine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	query := c.Query("q")
	threshold := search.DefaultThreshold
	if raw := c.Query("threshold"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 && v <= 1 {
			threshold = v
		}
	}

	results := engine.Search(query, threshold)
	resp := gin.H{"results": results}
	if len(results) == 0 && strings.TrimSpace(query) != "" {
		resp["suggestions"] = engine.Suggestions(query)
	}
	c.JSON(http.StatusOK, resp)
}

// SearchSuggestions returns the top "did you mean" terms for a query.
func SearchSuggestions(c *gin.Context) {
	engine, err := searchEngine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": engine.Suggestions(c.Query("q"))})
}

// ListCategories returns the synced category set.
func ListCategories(c *gin.Context) {
	var categories []catalog.Category
	if err := categoriesQuery(database.DB).Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListPlans is the plan query layer: a country or region selection plus
// optional validity/data/type filters over the active plan set.
func ListPlans(c *gin.Context) {
	filter := catalog.PlanFilter{
		RegionCode: strings.ToLower(strings.TrimSpace(c.Query("region"))),
		Local:      c.Query("local") == "true",
		PlanType:   strings.ToLower(strings.TrimSpace(c.Query("plan_type"))),
		MinDays:    intQuery(c, "min_days"),
		MaxDays:    intQuery(c, "max_days"),
	}
	if raw := c.Query("min_gb"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinGB = v
		}
	}

	if country := strings.TrimSpace(c.Query("country")); country != "" {
		entry, ok := resolveCountry(country)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown country"})
			return
		}
		filter.CountryISO2 = entry.ISO2

		var cat catalog.Category
		if err := categoryBySlugQuery(database.DB, entry.Slug).First(&cat).Error; err == nil {
			filter.CategoryID = cat.ID
		}
	}

	var plans []catalog.Plan
	if err := activePlansQuery(database.DB).Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, catalog.FilterPlans(plans, filter))
}

// resolveCountry accepts a slug or an ISO-2 code.
func resolveCountry(raw string) (geo.Country, bool) {
	if entry, ok := geo.CountryBySlug(raw); ok {
		return entry, true
	}
	if entry, ok := geo.CountryByISO2(raw); ok {
		return entry, true
	}
	return geo.Country{}, false
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
