package sync

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"esim-store/internal/domain/catalog"
	"esim-store/internal/domain/geo"

	"github.com/lib/pq"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

const (
	// Hard ceiling on pagination, bounding the run against an upstream
	// that never returns an empty page.
	defaultMaxPages = 50

	categoryBatchSize = 50
	planBatchSize     = 20

	defaultRetryBackoff = 2 * time.Second

	// Ids for categories synthesized from plans start here so they never
	// collide with provider-assigned ids.
	synthesizedCategoryIDBase = 10000
)

// Report is the outcome of one sync run. Partial success is a valid
// outcome; Errors counts records that failed after retry.
type Report struct {
	Provider          string    `json:"provider"`
	Success           int       `json:"success"`
	Created           int       `json:"created"`
	Updated           int       `json:"updated"`
	Skipped           int       `json:"skipped"`
	Errors            int       `json:"errors"`
	Deactivated       int       `json:"deactivated"`
	MaxPages          int       `json:"maxPages"`
	Truncated         bool      `json:"truncated,omitempty"`
	CategoriesDerived bool      `json:"categories_derived,omitempty"`
	SyncedAt          time.Time `json:"synced_at"`
}

// Engine runs the catalog sync pipeline: fetch, transform, upsert,
// reconcile. It is idempotent against unchanged upstream data. Callers
// must serialize runs; the engine does not lock.
type Engine struct {
	Store        Store
	Limiter      *rate.Limiter // paces plan upsert batches
	MaxPages     int
	RetryBackoff time.Duration
	Now          func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{
		Store:        store,
		Limiter:      rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		MaxPages:     defaultMaxPages,
		RetryBackoff: defaultRetryBackoff,
		Now:          time.Now,
	}
}

// Sync runs the full pipeline against one provider. A malformed record is
// counted and skipped, never fatal; a failed plans fetch on the first page
// is fatal; a failed categories fetch falls back to deriving categories
// from the plans themselves. A fetch cut short mid-pagination still upserts
// what arrived but skips reconciliation, so plans on the unfetched pages
// are never deactivated over a transport blip.
func (e *Engine) Sync(ctx context.Context, provider Provider) (Report, error) {
	report := Report{Provider: provider.Name(), SyncedAt: e.Now()}

	rawCats, catErr := provider.FetchCategories(ctx)
	if catErr != nil {
		log.Printf("sync %s: categories fetch failed, will derive from plans: %v", provider.Name(), catErr)
	}

	rawPlans, pages, complete, err := e.fetchAllPlans(ctx, provider)
	if err != nil {
		return report, stageErr("fetch plans", err)
	}
	report.MaxPages = pages
	report.Truncated = !complete

	plans := e.transformAll(rawPlans, provider.Name(), &report)

	categories := categoriesFromRaw(rawCats)
	if catErr != nil || len(categories) == 0 {
		categories = deriveCategories(plans)
		report.CategoriesDerived = true
	}

	slugToID, err := e.syncCategories(ctx, categories)
	if err != nil {
		return report, stageErr("sync categories", err)
	}

	resolveCategoryIDs(plans, slugToID)
	e.syncPlans(ctx, plans, &report)

	if complete {
		deactivated, err := e.reconcile(ctx, provider.Name(), plans)
		if err != nil {
			return report, stageErr("reconcile", err)
		}
		report.Deactivated = deactivated
	} else {
		log.Printf("sync %s: plan fetch incomplete, skipping reconciliation", provider.Name())
	}

	report.Success = report.Created + report.Updated
	return report, nil
}

// fetchAllPlans walks the provider's pages. complete is true only when an
// empty page confirmed the feed was exhausted; a mid-run fetch failure or
// hitting the page ceiling with a full last page leaves the set partial.
func (e *Engine) fetchAllPlans(ctx context.Context, provider Provider) (all []RawPlan, pages int, complete bool, err error) {
	for page := 1; page <= e.MaxPages; page++ {
		batch, err := provider.FetchPlans(ctx, page)
		if err != nil {
			if page == 1 {
				return nil, 0, false, err
			}
			// Mid-run transport failure: keep what we have rather than
			// throwing the whole fetch away.
			log.Printf("sync %s: page %d fetch failed, stopping pagination: %v", provider.Name(), page, err)
			return all, pages, false, nil
		}
		if len(batch) == 0 {
			return all, pages, true, nil
		}
		pages = page
		all = append(all, batch...)
	}
	return all, pages, false, nil
}

// transformAll normalizes every raw record, counting duplicates as skipped
// and untransformable records as errors.
func (e *Engine) transformAll(raw []RawPlan, providerName string, report *Report) []*catalog.Plan {
	now := e.Now()
	seen := make(map[string]bool, len(raw))
	out := make([]*catalog.Plan, 0, len(raw))

	for i := range raw {
		plan, err := TransformPlan(raw[i], providerName, now)
		if err != nil {
			if err == ErrNoIdentity {
				report.Skipped++
			} else {
				report.Errors++
			}
			log.Printf("sync %s: dropping plan %q: %v", providerName, raw[i].Name, err)
			continue
		}
		if seen[plan.SKU] {
			report.Skipped++
			continue
		}
		seen[plan.SKU] = true
		p := plan
		out = append(out, &p)
	}
	return out
}

func categoriesFromRaw(raw []RawCategory) []*catalog.Category {
	out := make([]*catalog.Category, 0, len(raw))
	for _, c := range raw {
		if c.ID == 0 || c.Slug == "" {
			continue
		}
		cat := &catalog.Category{ID: uint(c.ID), Name: c.Name, Slug: c.Slug}
		if c.Parent > 0 {
			parent := uint(c.Parent)
			cat.Parent = &parent
		}
		out = append(out, cat)
	}
	return out
}

// deriveCategories synthesizes one category per distinct country or region
// code found in the plans. Ids are assigned from a reserved high offset in
// sorted-slug order, so repeated fallback runs stay idempotent.
func deriveCategories(plans []*catalog.Plan) []*catalog.Category {
	names := make(map[string]string)
	for _, p := range plans {
		slug := planCategorySlug(p)
		if slug == "" || names[slug] != "" {
			continue
		}
		names[slug] = categoryDisplayName(p, slug)
	}

	slugs := make([]string, 0, len(names))
	for slug := range names {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	out := make([]*catalog.Category, 0, len(slugs))
	for i, slug := range slugs {
		out = append(out, &catalog.Category{
			ID:   uint(synthesizedCategoryIDBase + i),
			Name: names[slug],
			Slug: slug,
		})
	}
	return out
}

// planCategorySlug resolves the category join key for a plan: the geo slug
// of its country, or its region code.
func planCategorySlug(p *catalog.Plan) string {
	if p.PlanType == catalog.PlanTypeRegional {
		return p.RegionCode
	}
	if c, ok := geo.CountryByISO2(p.CountryCode); ok {
		return c.Slug
	}
	return strings.ToLower(p.CountryCode)
}

func categoryDisplayName(p *catalog.Plan, slug string) string {
	if p.PlanType == catalog.PlanTypeRegional {
		if region, ok := geo.RegionBySlug(slug); ok && len(region.Names) > 0 {
			return region.Names[0]
		}
		return cases.Title(language.Spanish).String(strings.ReplaceAll(slug, "-", " "))
	}
	if c, ok := geo.CountryBySlug(slug); ok {
		return c.NameES
	}
	return strings.ToUpper(slug)
}

func (e *Engine) syncCategories(ctx context.Context, categories []*catalog.Category) (map[string]uint, error) {
	slugToID := make(map[string]uint, len(categories))
	for start := 0; start < len(categories); start += categoryBatchSize {
		end := start + categoryBatchSize
		if end > len(categories) {
			end = len(categories)
		}
		for _, cat := range categories[start:end] {
			if _, err := e.Store.UpsertCategory(ctx, cat); err != nil {
				return nil, err
			}
			slugToID[cat.Slug] = cat.ID
		}
	}
	return slugToID, nil
}

func resolveCategoryIDs(plans []*catalog.Plan, slugToID map[string]uint) {
	for _, p := range plans {
		if id, ok := slugToID[planCategorySlug(p)]; ok {
			p.CategoryIDs = pq.Int64Array{int64(id)}
		}
	}
}

// syncPlans upserts in small batches, pacing between batches and retrying
// each failed batch once after a fixed backoff. Records still failing
// after the retry are counted as errors and the run continues.
func (e *Engine) syncPlans(ctx context.Context, plans []*catalog.Plan, report *Report) {
	for start := 0; start < len(plans); start += planBatchSize {
		end := start + planBatchSize
		if end > len(plans) {
			end = len(plans)
		}
		batch := plans[start:end]

		if err := e.Limiter.Wait(ctx); err != nil {
			report.Errors += len(plans) - start
			return
		}

		failed := e.upsertBatch(ctx, batch, report)
		if len(failed) == 0 {
			continue
		}

		time.Sleep(e.RetryBackoff)
		if still := e.upsertBatch(ctx, failed, report); len(still) > 0 {
			report.Errors += len(still)
			log.Printf("sync: %d plans failed after retry", len(still))
		}
	}
}

func (e *Engine) upsertBatch(ctx context.Context, batch []*catalog.Plan, report *Report) []*catalog.Plan {
	var failed []*catalog.Plan
	for _, p := range batch {
		created, err := e.Store.UpsertPlan(ctx, p)
		if err != nil {
			failed = append(failed, p)
			continue
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}
	return failed
}

// reconcile deactivates this provider's previously active plans whose SKU
// was absent from the run. Plans owned by other providers are out of scope;
// rows are never deleted, so cart and order line items keep their
// references.
func (e *Engine) reconcile(ctx context.Context, providerName string, plans []*catalog.Plan) (int, error) {
	active, err := e.Store.ActivePlanSKUs(ctx, providerName)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(plans))
	for _, p := range plans {
		seen[p.SKU] = true
	}

	var missing []string
	for _, sku := range active {
		if !seen[sku] {
			missing = append(missing, sku)
		}
	}

	n, err := e.Store.DeactivatePlans(ctx, missing)
	return int(n), err
}
