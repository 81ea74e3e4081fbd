package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const wooPerPage = 100

// WooCommerceProvider reads categories and products from a
// WooCommerce-shaped REST API using consumer key/secret auth.
type WooCommerceProvider struct {
	httpClient *http.Client
	baseURL    string
	key        string
	secret     string
}

// NewWooCommerceProvider builds a provider for the given store base URL.
func NewWooCommerceProvider(baseURL, key, secret string) *WooCommerceProvider {
	return &WooCommerceProvider{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		secret:     secret,
	}
}

func (p *WooCommerceProvider) Name() string { return "woocommerce" }

type wooCategory struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Parent int64  `json:"parent"`
}

type wooMetaEntry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type wooProduct struct {
	ID          int64          `json:"id"`
	SKU         string         `json:"sku"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       any            `json:"price"`
	Status      string         `json:"status"`
	MetaData    []wooMetaEntry `json:"meta_data"`
}

func (p *WooCommerceProvider) FetchCategories(ctx context.Context) ([]RawCategory, error) {
	var out []RawCategory
	for page := 1; page <= maxCategoryPages; page++ {
		var cats []wooCategory
		if err := p.getJSON(ctx, "/wp-json/wc/v3/products/categories", page, &cats); err != nil {
			return nil, err
		}
		if len(cats) == 0 {
			break
		}
		for _, c := range cats {
			out = append(out, RawCategory{ID: c.ID, Name: c.Name, Slug: c.Slug, Parent: c.Parent})
		}
	}
	return out, nil
}

func (p *WooCommerceProvider) FetchPlans(ctx context.Context, page int) ([]RawPlan, error) {
	var products []wooProduct
	if err := p.getJSON(ctx, "/wp-json/wc/v3/products", page, &products); err != nil {
		return nil, err
	}

	out := make([]RawPlan, 0, len(products))
	for _, prod := range products {
		out = append(out, p.toRawPlan(prod))
	}
	return out, nil
}

// toRawPlan flattens the WooCommerce meta_data key/value array into the
// provider-neutral shape. Unknown meta keys ride along in Meta untouched.
func (p *WooCommerceProvider) toRawPlan(prod wooProduct) RawPlan {
	raw := RawPlan{
		ID:          prod.ID,
		SKU:         prod.SKU,
		Name:        prod.Name,
		Description: prod.Description,
		Price:       prod.Price,
		Meta:        make(map[string]any, len(prod.MetaData)),
	}

	if prod.Status != "" {
		active := prod.Status == "publish"
		raw.Active = &active
	}

	for _, m := range prod.MetaData {
		raw.Meta[m.Key] = m.Value
		switch m.Key {
		case "plan_type":
			raw.PlanType = asString(m.Value)
		case "region":
			raw.Region = asString(m.Value)
		case "country_code":
			raw.CountryCode = asString(m.Value)
		case "countries_iso3":
			raw.CountriesISO3 = asStringList(m.Value)
		case "data_gb":
			raw.DataAmount = m.Value
		case "validity_days":
			raw.Validity = m.Value
		case "has_5g":
			raw.Connectivity = setFlag(raw.Connectivity, "5g", m.Value)
		case "has_lte":
			raw.Connectivity = setFlag(raw.Connectivity, "lte", m.Value)
		case "regular_price_usd":
			raw.Prices = append(raw.Prices, RawPrice{Currency: "USD", Amount: m.Value})
		case "regular_price_eur":
			raw.Prices = append(raw.Prices, RawPrice{Currency: "EUR", Amount: m.Value})
		case "regular_price_mxn":
			raw.Prices = append(raw.Prices, RawPrice{Currency: "MXN", Amount: m.Value})
		}
	}

	return raw
}

func (p *WooCommerceProvider) getJSON(ctx context.Context, path string, page int, out any) error {
	q := url.Values{}
	q.Set("consumer_key", p.key)
	q.Set("consumer_secret", p.secret)
	q.Set("per_page", fmt.Sprint(wooPerPage))
	q.Set("page", fmt.Sprint(page))

	reqURL := p.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

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

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringList(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func setFlag(m map[string]string, key string, v any) map[string]string {
	if m == nil {
		m = make(map[string]string, 2)
	}
	switch val := v.(type) {
	case string:
		m[key] = val
	case bool:
		if val {
			m[key] = "yes"
		} else {
			m[key] = "no"
		}
	default:
		m[key] = fmt.Sprint(val)
	}
	return m
}
