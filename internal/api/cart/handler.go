package cartapi

import (
	"net/http"

	"esim-store/database"
	"esim-store/internal/domain/catalog"
	"esim-store/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	PlanID   uint `json:"plan_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// GetCart lists the authenticated user's cart line items.
func GetCart(c *gin.Context) {
	userID := c.GetUint("user_id")

	var items []orders.CartItem
	if err := database.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart creates a line item from an active plan. Price, name and
// technology are snapshotted now; later catalog syncs do not touch them.
func AddToCart(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var plan catalog.Plan
	if err := database.DB.First(&plan, req.PlanID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	if !plan.Active {
		c.JSON(http.StatusConflict, gin.H{"error": "Plan is no longer available"})
		return
	}

	item := orders.CartItem{
		UserID:       userID,
		PlanID:       plan.ID,
		PlanSKU:      plan.SKU,
		Name:         plan.Name,
		Technology:   plan.Technology,
		UnitPrice:    plan.Price,
		UnitPriceUSD: plan.RegularPriceUSD,
		UnitPriceEUR: plan.RegularPriceEUR,
		UnitPriceMXN: plan.RegularPriceMXN,
		Quantity:     req.Quantity,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveFromCart deletes one of the user's own line items.
func RemoveFromCart(c *gin.Context) {
	userID := c.GetUint("user_id")

	res := database.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&orders.CartItem{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}
