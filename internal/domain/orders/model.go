package orders

import "time"

// CartItem is one line in a user's cart. Plan fields are copied in at
// add-to-cart time; a later catalog sync never rewrites an existing line
// item, it only affects what new adds snapshot.
type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	PlanID  uint   `json:"plan_id"`
	PlanSKU string `json:"plan_sku"`

	Name       string `json:"name"`
	Technology string `json:"technology"`

	UnitPrice    float64  `json:"unit_price"`
	UnitPriceUSD *float64 `gorm:"column:unit_price_usd" json:"unit_price_usd"`
	UnitPriceEUR *float64 `gorm:"column:unit_price_eur" json:"unit_price_eur"`
	UnitPriceMXN *float64 `gorm:"column:unit_price_mxn" json:"unit_price_mxn"`

	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
