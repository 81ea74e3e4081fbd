package search

import (
	"sort"

	"esim-store/internal/domain/geo"
)

const (
	suggestionCutoff = 0.3
	maxSuggestions   = 5
)

// Suggestions produces up to five human-readable "did you mean" terms for
// the no-results case. This is a flat scoring pass over every region name
// and every category's slug, names and aliases — no rule tiers, one
// cutoff — and is not meant to drive selection.
func (e *Engine) Suggestions(query string) []string {
	q := geo.Normalize(query)
	if q == "" {
		return nil
	}

	type scored struct {
		term  string
		score float64
	}
	var all []scored
	add := func(display string) {
		if display == "" {
			return
		}
		if sim := Similarity(q, geo.Normalize(display)); sim >= suggestionCutoff {
			all = append(all, scored{term: display, score: sim})
		}
	}

	for _, region := range geo.Regions {
		for _, name := range region.Names {
			add(name)
		}
	}
	for _, ent := range e.entries {
		add(ent.cat.Slug)
		if c, ok := geo.CountryBySlug(ent.cat.Slug); ok {
			add(c.NameES)
			add(c.NameEN)
		} else {
			add(ent.cat.Name)
		}
		for _, alias := range geo.CountryAliases[ent.cat.Slug] {
			add(alias)
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	seen := make(map[string]bool, maxSuggestions)
	out := make([]string, 0, maxSuggestions)
	for _, s := range all {
		if seen[s.term] {
			continue
		}
		seen[s.term] = true
		out = append(out, s.term)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
