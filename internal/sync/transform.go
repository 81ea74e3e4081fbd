package sync

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"esim-store/internal/domain/catalog"
	"esim-store/internal/domain/geo"
)

const (
	// Plans claiming more than a year of validity are treated as
	// unspecified. Preserved policy; do not "fix".
	maxValidityDays = 365

	fallbackPlanName = "Plan sin nombre"
)

var (
	ErrNoIdentity = errors.New("plan has neither sku nor id")
	ErrNoCountry  = errors.New("country plan has no derivable country code")
)

// TransformPlan normalizes one raw provider record into the canonical plan
// shape. Malformed fields degrade to safe defaults and never abort the
// record; an error is returned only when the record cannot be keyed or
// classified at all, in which case the engine counts it and moves on.
func TransformPlan(raw RawPlan, providerName string, now time.Time) (catalog.Plan, error) {
	sku := strings.TrimSpace(raw.SKU)
	if sku == "" {
		if raw.ID == 0 {
			return catalog.Plan{}, ErrNoIdentity
		}
		sku = fmt.Sprintf("%s-%d", providerName, raw.ID)
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = fallbackPlanName
	}

	plan := catalog.Plan{
		SKU:         sku,
		Name:        name,
		Description: strings.TrimSpace(raw.Description),
		Price:       parseLooseFloat(raw.Price),
		DataGB:      parseLooseFloat(raw.DataAmount),
		Active:      raw.Active == nil || *raw.Active,
	}
	if plan.DataGB < 0 {
		plan.DataGB = 0
	}

	for _, price := range raw.Prices {
		v := parseLooseFloatPtr(price.Amount)
		switch strings.ToUpper(strings.TrimSpace(price.Currency)) {
		case "USD":
			plan.RegularPriceUSD = v
		case "EUR":
			plan.RegularPriceEUR = v
		case "MXN":
			plan.RegularPriceMXN = v
		}
	}
	if plan.Price == 0 && plan.RegularPriceUSD != nil {
		plan.Price = *plan.RegularPriceUSD
	}

	if v := int(parseLooseFloat(raw.Validity)); v > 0 && v <= maxValidityDays {
		plan.ValidityDays = v
	}

	plan.Technology = catalog.DeriveTechnology(raw.Connectivity, name)
	plan.Has5G, plan.HasLTE = catalog.TechnologyFlags(plan.Technology)

	meta := catalog.PlanMetadata{
		Provider: providerName,
		SyncedAt: now,
	}
	if raw.ID != 0 {
		meta.ExternalID = fmt.Sprintf("%s-%d", providerName, raw.ID)
	}

	plan.PlanType = catalog.ClassifyPlanType(raw.PlanType, raw.Region, raw.CountryCode, raw.Name)
	switch plan.PlanType {
	case catalog.PlanTypeRegional:
		plan.RegionCode = deriveRegionCode(raw)
		// Coverage comes straight from upstream, never inferred.
		meta.CountriesISO3 = raw.CountriesISO3
	default:
		cc, err := deriveCountryCode(raw)
		if err != nil {
			return catalog.Plan{}, err
		}
		plan.CountryCode = cc
	}

	plan.SetMeta(meta)
	return plan, nil
}

// deriveRegionCode resolves the canonical region slug for a regional plan.
// Free-text region strings go through the synonym table; a plan that is
// regional only by explicit flag, with no region signal anywhere, lands in
// the "global" catch-all so the type/code invariant always holds.
func deriveRegionCode(raw RawPlan) string {
	if code := geo.NormalizeRegionCode(raw.Region); code != "" {
		return code
	}
	if code := catalog.RegionFromName(raw.Name); code != "" {
		return code
	}
	return "global"
}

// deriveCountryCode resolves a lowercase ISO-2 code for a country plan.
// An ISO-3 coverage entry with no table mapping falls back to the raw
// uppercase code rather than inventing a mapping.
func deriveCountryCode(raw RawPlan) (string, error) {
	if cc := strings.ToLower(strings.TrimSpace(raw.CountryCode)); cc != "" {
		return cc, nil
	}
	if len(raw.CountriesISO3) > 0 {
		first := strings.TrimSpace(raw.CountriesISO3[0])
		if iso2, ok := geo.ISO3ToISO2(first); ok {
			return strings.ToLower(iso2), nil
		}
		if first != "" {
			return strings.ToUpper(first), nil
		}
	}
	return "", ErrNoCountry
}

// parseLooseFloat coerces a loosely-typed numeric value. Strings may carry
// currency symbols and thousands separators; everything except digits, a
// leading minus and the decimal point is stripped. Unparsable input is 0.
func parseLooseFloat(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		f, _ := val.Float64()
		return f
	case string:
		cleaned := cleanNumeric(val)
		if cleaned == "" {
			return 0
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func parseLooseFloatPtr(v any) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && cleanNumeric(s) == "" {
		return nil
	}
	f := parseLooseFloat(v)
	return &f
}

func cleanNumeric(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
