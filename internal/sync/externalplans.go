package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ExternalPlansProvider reads the generic external plans API: bearer-token
// auth, nested localized names, per-currency price list, ISO-3 coverage
// lists and a connectivity flag object.
type ExternalPlansProvider struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewExternalPlansProvider(baseURL, token string) *ExternalPlansProvider {
	return &ExternalPlansProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

func (p *ExternalPlansProvider) Name() string { return "external-plans" }

type extLocalized struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

type extPrice struct {
	Currency string `json:"currency"`
	Amount   any    `json:"amount"`
}

type extPlan struct {
	ID           int64             `json:"id"`
	SKU          string            `json:"sku"`
	Name         extLocalized      `json:"name"`
	Description  extLocalized      `json:"description"`
	Prices       []extPrice        `json:"prices"`
	DataGB       any               `json:"data_gb"`
	ValidityDays any               `json:"validity_days"`
	Coverage     string            `json:"coverage"` // "country" | "regional"
	Region       string            `json:"region"`
	CountryCode  string            `json:"country_code"`
	Countries    []string          `json:"countries"` // ISO-3
	Connectivity map[string]string `json:"connectivity"`
	Active       *bool             `json:"active"`
}

type extPlansResponse struct {
	Plans []extPlan `json:"plans"`
}

type extCategoriesResponse struct {
	Categories []struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Slug   string `json:"slug"`
		Parent int64  `json:"parent"`
	} `json:"categories"`
}

func (p *ExternalPlansProvider) FetchCategories(ctx context.Context) ([]RawCategory, error) {
	var out []RawCategory
	for page := 1; page <= maxCategoryPages; page++ {
		var resp extCategoriesResponse
		if err := p.getJSON(ctx, fmt.Sprintf("/categories?page=%d", page), &resp); err != nil {
			return nil, err
		}
		if len(resp.Categories) == 0 {
			break
		}
		for _, c := range resp.Categories {
			out = append(out, RawCategory{ID: c.ID, Name: c.Name, Slug: c.Slug, Parent: c.Parent})
		}
	}
	return out, nil
}

func (p *ExternalPlansProvider) FetchPlans(ctx context.Context, page int) ([]RawPlan, error) {
	var resp extPlansResponse
	if err := p.getJSON(ctx, fmt.Sprintf("/plans?page=%d", page), &resp); err != nil {
		return nil, err
	}

	out := make([]RawPlan, 0, len(resp.Plans))
	for _, pl := range resp.Plans {
		raw := RawPlan{
			ID:            pl.ID,
			SKU:           pl.SKU,
			Name:          pl.Name.ES,
			NameEN:        pl.Name.EN,
			Description:   pl.Description.ES,
			DataAmount:    pl.DataGB,
			Validity:      pl.ValidityDays,
			PlanType:      pl.Coverage,
			Region:        pl.Region,
			CountryCode:   pl.CountryCode,
			CountriesISO3: pl.Countries,
			Connectivity:  pl.Connectivity,
			Active:        pl.Active,
		}
		if raw.Name == "" {
			raw.Name = pl.Name.EN
		}
		if raw.Description == "" {
			raw.Description = pl.Description.EN
		}
		// This provider does not always carry a SKU; synthesize a stable
		// one from its id so upserts and reconciliation stay keyed.
		if raw.SKU == "" && pl.ID != 0 {
			raw.SKU = fmt.Sprintf("ext-%d", pl.ID)
		}
		for _, price := range pl.Prices {
			raw.Prices = append(raw.Prices, RawPrice{Currency: price.Currency, Amount: price.Amount})
		}
		out = append(out, raw)
	}
	return out, nil
}

func (p *ExternalPlansProvider) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
