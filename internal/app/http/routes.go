package routes

import (
	cartapi "esim-store/internal/api/cart"
	catalogapi "esim-store/internal/api/catalog"
	"esim-store/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/categories", catalogapi.ListCategories)
	public.GET("/plans", catalogapi.ListPlans)
	public.GET("/search", middleware.SanitizeQueryParams("q"), catalogapi.SearchCategories)
	public.GET("/search/suggestions", middleware.SanitizeQueryParams("q"), catalogapi.SearchSuggestions)

	// Authenticated storefront users
	auth := r.Group("/")
	auth.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.AuthMiddleware())
	auth.GET("/cart", cartapi.GetCart)
	auth.POST("/cart", cartapi.AddToCart)
	auth.DELETE("/cart/:id", cartapi.RemoveFromCart)

	// Sync triggers, service token only. Callers must not re-trigger a
	// run while one is in flight.
	service := r.Group("/")
	service.Use(middleware.AuthMiddleware(), middleware.RequireRole("service"))
	service.POST("/sync-woocommerce", catalogapi.SyncWooCommerce)
	service.POST("/sync-external-plans", catalogapi.SyncExternalPlans)
}
