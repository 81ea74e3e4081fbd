package search

import (
	"sort"
	"strings"

	"esim-store/internal/domain/catalog"
	"esim-store/internal/domain/geo"

	"github.com/agnivade/levenshtein"
)

type MatchType string

const (
	MatchRegion     MatchType = "region"
	MatchExact      MatchType = "exact"
	MatchAlias      MatchType = "alias"
	MatchFuzzy      MatchType = "fuzzy"
	MatchFuzzyAlias MatchType = "fuzzy_alias"
	MatchBrowse     MatchType = "browse" // empty query, browse-all mode
)

// DefaultThreshold is the score cutoff applied when the caller passes none.
const DefaultThreshold = 0.3

// Result is one scored category match.
type Result struct {
	Category  catalog.Category `json:"category"`
	Score     float64          `json:"score"`
	MatchType MatchType        `json:"match_type"`
	MatchedOn string           `json:"matched_on,omitempty"`
}

// Engine runs scored search over a fixed snapshot of categories. It holds
// no mutable state after construction and is safe for concurrent use.
type Engine struct {
	categories []catalog.Category
	entries    []entry
	bySlug     map[string]int // slug -> entries index
}

// entry precomputes the normalized comparison fields for one category.
type entry struct {
	cat     catalog.Category
	slug    string
	nameES  string
	nameEN  string
	aliases []string
}

// NewEngine builds an engine over a category snapshot. Comparison fields
// are normalized once here; display fields keep their original form.
func NewEngine(categories []catalog.Category) *Engine {
	e := &Engine{
		categories: categories,
		entries:    make([]entry, 0, len(categories)),
		bySlug:     make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		ent := entry{
			cat:  cat,
			slug: geo.Normalize(cat.Slug),
		}
		if c, ok := geo.CountryBySlug(cat.Slug); ok {
			ent.nameES = geo.Normalize(c.NameES)
			ent.nameEN = geo.Normalize(c.NameEN)
		} else {
			ent.nameES = geo.Normalize(cat.Name)
			ent.nameEN = ent.nameES
		}
		for _, alias := range geo.CountryAliases[cat.Slug] {
			ent.aliases = append(ent.aliases, geo.Normalize(alias))
		}
		e.bySlug[cat.Slug] = len(e.entries)
		e.entries = append(e.entries, ent)
	}
	return e
}

// Similarity is the normalized Levenshtein similarity between two
// already-normalized strings: 1 - distance/maxLength.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// Search returns categories matching the query, best score first. Rules run
// region expansion, exact substring, alias, fuzzy, fuzzy alias — in that
// order; when a category matches several rules, the earlier rule wins.
// An empty or whitespace-only query returns every category unsorted.
func (e *Engine) Search(query string, threshold float64) []Result {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	q := geo.Normalize(query)
	if q == "" {
		out := make([]Result, 0, len(e.categories))
		for _, cat := range e.categories {
			out = append(out, Result{Category: cat, MatchType: MatchBrowse})
		}
		return out
	}

	var candidates []Result
	candidates = append(candidates, e.regionMatches(q)...)
	candidates = append(candidates, e.exactMatches(q)...)
	candidates = append(candidates, e.aliasMatches(q)...)
	candidates = append(candidates, e.fuzzyMatches(q)...)
	candidates = append(candidates, e.fuzzyAliasMatches(q)...)

	seen := make(map[uint]bool, len(candidates))
	out := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.Category.ID] || c.Score < threshold {
			continue
		}
		seen[c.Category.ID] = true
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// regionMatches expands a region-looking query into its member countries.
// A region match is penalized slightly against a direct country hit.
func (e *Engine) regionMatches(q string) []Result {
	var out []Result
	for _, region := range geo.Regions {
		best := 0.0
		for _, name := range region.Names {
			if sim := Similarity(q, geo.Normalize(name)); sim > best {
				best = sim
			}
		}
		if best < 0.7 {
			continue
		}
		for _, slug := range region.Members {
			idx, ok := e.bySlug[slug]
			if !ok {
				continue
			}
			out = append(out, Result{
				Category:  e.entries[idx].cat,
				Score:     best * 0.9,
				MatchType: MatchRegion,
				MatchedOn: region.Slug,
			})
		}
	}
	return out
}

// exactMatches requires at least two normalized characters; a single
// letter is a substring of half the catalog and means nothing.
func (e *Engine) exactMatches(q string) []Result {
	if len(q) < 2 {
		return nil
	}
	var out []Result
	for _, ent := range e.entries {
		switch {
		case contains(ent.slug, q):
			out = append(out, Result{Category: ent.cat, Score: 1.0, MatchType: MatchExact, MatchedOn: "slug"})
		case contains(ent.nameES, q), contains(ent.nameEN, q):
			out = append(out, Result{Category: ent.cat, Score: 0.95, MatchType: MatchExact, MatchedOn: "name"})
		}
	}
	return out
}

func (e *Engine) aliasMatches(q string) []Result {
	if len(q) < 2 {
		return nil
	}
	var out []Result
	for _, ent := range e.entries {
		for _, alias := range ent.aliases {
			if contains(alias, q) {
				out = append(out, Result{Category: ent.cat, Score: 0.9, MatchType: MatchAlias, MatchedOn: alias})
				break
			}
		}
	}
	return out
}

// fuzzyMatches scores typo-distance matches. The upper bound of the band
// avoids double-counting near-exact hits the substring rule already owns.
func (e *Engine) fuzzyMatches(q string) []Result {
	var out []Result
	for _, ent := range e.entries {
		best, field := 0.0, ""
		for _, f := range []struct{ name, value string }{
			{"slug", ent.slug}, {"name_es", ent.nameES}, {"name_en", ent.nameEN},
		} {
			if sim := Similarity(q, f.value); sim > best {
				best, field = sim, f.name
			}
		}
		if best >= 0.4 && best < 0.8 {
			out = append(out, Result{Category: ent.cat, Score: best * 0.8, MatchType: MatchFuzzy, MatchedOn: field})
		}
	}
	return out
}

func (e *Engine) fuzzyAliasMatches(q string) []Result {
	var out []Result
	for _, ent := range e.entries {
		best, matched := 0.0, ""
		for _, alias := range ent.aliases {
			if sim := Similarity(q, alias); sim > best {
				best, matched = sim, alias
			}
		}
		if best >= 0.5 && best < 0.8 {
			out = append(out, Result{Category: ent.cat, Score: best * 0.7, MatchType: MatchFuzzyAlias, MatchedOn: matched})
		}
	}
	return out
}

func contains(haystack, needle string) bool {
	return haystack != "" && needle != "" && strings.Contains(haystack, needle)
}
