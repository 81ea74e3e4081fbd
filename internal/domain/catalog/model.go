package catalog

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Category is a country or region entity synced from the provider. The slug
// is the join key to the static geo tables (flag rendering, display names,
// search all resolve through it).
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `json:"name"`
	Slug   string `gorm:"uniqueIndex:idx_categories_slug" json:"slug"`
	Parent *uint  `json:"parent,omitempty"`
}

// PlanMetadata is the opaque bag carried on every plan. CountriesISO3 is
// only populated for regional plans and comes straight from upstream
// coverage data, never from inference.
type PlanMetadata struct {
	CountriesISO3 []string  `json:"countries_iso3,omitempty"`
	ExternalID    string    `json:"external_id,omitempty"`
	Provider      string    `json:"provider,omitempty"`
	SyncedAt      time.Time `json:"synced_at,omitempty"`
}

// Plan is the canonical post-normalization plan record.
//
// Invariant: exactly one of CountryCode or RegionCode is set, matching
// PlanType. Currency price fields are independent; nil means "no price in
// that currency", and callers must not treat Price as authoritative once
// the per-currency fields exist.
type Plan struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SKU         string `gorm:"column:sku;not null;uniqueIndex:idx_plans_sku" json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Price           float64  `json:"price"`
	RegularPriceUSD *float64 `gorm:"column:regular_price_usd" json:"regular_price_usd"`
	RegularPriceEUR *float64 `gorm:"column:regular_price_eur" json:"regular_price_eur"`
	RegularPriceMXN *float64 `gorm:"column:regular_price_mxn" json:"regular_price_mxn"`

	DataGB       float64 `gorm:"column:data_gb" json:"data_gb"`      // 0 = unspecified/unlimited-unknown
	ValidityDays int     `json:"validity_days"`                      // 0 = unspecified; always clamped to (0, 365]
	Technology   string  `json:"technology"`                         // "5G" | "4G/LTE" | "4G" | "3G" | "2G"
	Has5G        bool    `gorm:"column:has_5g" json:"has_5g"`
	HasLTE       bool    `gorm:"column:has_lte" json:"has_lte"`

	PlanType    string `gorm:"index" json:"plan_type"`               // "country" | "regional"
	CountryCode string `json:"country_code,omitempty"`               // ISO-2, lowercase; country plans only
	RegionCode  string `json:"region_code,omitempty"`                // canonical slug; regional plans only

	CategoryIDs pq.Int64Array `gorm:"type:integer[]" json:"category_ids"`
	Active      bool          `gorm:"default:true;index" json:"active"`

	Metadata datatypes.JSONType[PlanMetadata] `gorm:"type:jsonb" json:"metadata"`
}

// Meta returns the decoded metadata bag.
func (p *Plan) Meta() PlanMetadata {
	return p.Metadata.Data()
}

// SetMeta replaces the metadata bag.
func (p *Plan) SetMeta(m PlanMetadata) {
	p.Metadata = datatypes.NewJSONType(m)
}

// CoversISO3 reports whether a regional plan's coverage list includes the
// given ISO-3 code.
func (p *Plan) CoversISO3(iso3 string) bool {
	for _, c := range p.Meta().CountriesISO3 {
		if c == iso3 {
			return true
		}
	}
	return false
}
