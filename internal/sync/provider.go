package sync

import "context"

// maxCategoryPages bounds the category pagination walk for both providers,
// the same way the engine's page ceiling bounds the plan fetch.
const maxCategoryPages = 50

// RawCategory is a provider category record before normalization.
type RawCategory struct {
	ID     int64
	Name   string
	Slug   string
	Parent int64
}

// RawPrice is one per-currency price entry from the external plans API.
type RawPrice struct {
	Currency string
	Amount   any // number or numeric string, possibly with symbols
}

// RawPlan is the loosely-typed union of both providers' plan shapes. The
// transform stage owns all interpretation; providers only reshape JSON
// into this struct without guessing at semantics.
type RawPlan struct {
	ID          int64
	SKU         string
	Name        string
	NameEN      string
	Description string

	Price      any // number, numeric string, or absent
	DataAmount any
	Validity   any

	PlanType      string // explicit "country"/"regional" when upstream says so
	Region        string // raw free-text region identifier
	CountryCode   string // raw ISO-2 when upstream supplies one
	CountriesISO3 []string

	Connectivity map[string]string
	Prices       []RawPrice
	Meta         map[string]any // WooCommerce meta_data flattened to key/value

	Active *bool // nil means upstream did not say; defaults to active
}

// Provider is a paginated feed of raw categories and plans. FetchPlans
// returns an empty slice when pagination is exhausted.
type Provider interface {
	Name() string
	FetchCategories(ctx context.Context) ([]RawCategory, error)
	FetchPlans(ctx context.Context, page int) ([]RawPlan, error)
}
