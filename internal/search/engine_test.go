package search_test

import (
	"testing"

	"esim-store/internal/domain/catalog"
	"esim-store/internal/domain/geo"
	"esim-store/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot builds one category per country in the static table, the way a
// full sync would.
func snapshot() []catalog.Category {
	out := make([]catalog.Category, 0, len(geo.Countries))
	for i, c := range geo.Countries {
		out = append(out, catalog.Category{
			ID:   uint(i + 1),
			Name: c.NameES,
			Slug: c.Slug,
		})
	}
	return out
}

func resultSlugs(results []search.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Category.Slug)
	}
	return out
}

func TestSearch_DiacriticInsensitiveExactMatch(t *testing.T) {
	engine := search.NewEngine(snapshot())

	results := engine.Search("espana", 0)
	require.NotEmpty(t, results)

	top := results[0]
	assert.Equal(t, "spain", top.Category.Slug)
	assert.Equal(t, search.MatchExact, top.MatchType)
	assert.GreaterOrEqual(t, top.Score, 0.95)
}

func TestSearch_RegionExpansion(t *testing.T) {
	engine := search.NewEngine(snapshot())

	results := engine.Search("europa", 0)
	slugs := resultSlugs(results)

	for _, want := range []string{"spain", "france", "germany", "italy"} {
		assert.Contains(t, slugs, want)
	}
	for _, r := range results {
		if r.Category.Slug == "spain" {
			assert.Equal(t, search.MatchRegion, r.MatchType)
			assert.InDelta(t, 0.9, r.Score, 0.001)
		}
	}
}

func TestSearch_RegionExpansionEnglishSpelling(t *testing.T) {
	engine := search.NewEngine(snapshot())

	results := engine.Search("Europe", 0)
	assert.Contains(t, resultSlugs(results), "spain")
}

func TestSearch_AliasMatch(t *testing.T) {
	engine := search.NewEngine(snapshot())

	results := engine.Search("usa", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "united-states", results[0].Category.Slug)
	assert.Equal(t, search.MatchAlias, results[0].MatchType)
	assert.InDelta(t, 0.9, results[0].Score, 0.001)
}

func TestSearch_FuzzyTypo(t *testing.T) {
	engine := search.NewEngine(snapshot())

	results := engine.Search("grmny", 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "germany", results[0].Category.Slug)
	assert.Equal(t, search.MatchFuzzy, results[0].MatchType)
}

func TestSearch_EmptyQueryBrowsesAll(t *testing.T) {
	cats := snapshot()
	engine := search.NewEngine(cats)

	assert.Len(t, engine.Search("", 0), len(cats))
	assert.Len(t, engine.Search("   ", 0), len(cats))
}

func TestSearch_NonsenseSingleCharIsNotBrowseAll(t *testing.T) {
	cats := snapshot()
	engine := search.NewEngine(cats)

	results := engine.Search("z", 0)
	// A junk one-letter query must never fall back to the full catalog.
	assert.Less(t, len(results), 5)
	assert.NotEqual(t, len(cats), len(results))
}

func TestSearch_DedupKeepsHigherPriorityRule(t *testing.T) {
	engine := search.NewEngine(snapshot())

	results := engine.Search("europa", 0)
	seen := map[uint]int{}
	for _, r := range results {
		seen[r.Category.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "category %d appeared %d times", id, n)
	}
}

func TestSearch_ThresholdFiltersWeakMatches(t *testing.T) {
	engine := search.NewEngine(snapshot())

	// "grmny" scores 0.714*0.8 ≈ 0.57 against Germany; a higher
	// threshold must drop it.
	results := engine.Search("grmny", 0.6)
	assert.NotContains(t, resultSlugs(results), "germany")
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, search.Similarity("spain", "spain"))
	assert.Equal(t, 0.0, search.Similarity("", "spain"))
	assert.InDelta(t, 0.8, search.Similarity("spin", "spain"), 0.001)
}

func TestSuggestions(t *testing.T) {
	engine := search.NewEngine(snapshot())

	suggestions := engine.Suggestions("spin")
	require.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 5)

	found := false
	for _, s := range suggestions {
		if s == "spain" || s == "Spain" || s == "España" {
			found = true
		}
	}
	assert.True(t, found, "expected a Spain-ish suggestion, got %v", suggestions)
}

func TestSuggestions_EmptyQuery(t *testing.T) {
	engine := search.NewEngine(snapshot())
	assert.Empty(t, engine.Suggestions(""))
}
