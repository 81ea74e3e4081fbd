package geo

import "strings"

// Region groups countries by a static membership list. Names carries the
// display spellings (Spanish and English) that search compares against.
type Region struct {
	Slug    string
	Names   []string
	Members []string // country slugs
}

var Regions = []Region{
	{
		Slug:  "europa",
		Names: []string{"Europa", "Europe"},
		Members: []string{
			"spain", "france", "germany", "italy", "portugal", "netherlands",
			"belgium", "austria", "switzerland", "united-kingdom", "ireland",
			"sweden", "norway", "denmark", "finland", "poland", "czech-republic",
			"greece", "hungary", "romania", "croatia", "iceland",
		},
	},
	{
		Slug:  "latinoamerica",
		Names: []string{"Latinoamérica", "Latin America", "América Latina"},
		Members: []string{
			"mexico", "argentina", "brazil", "chile", "colombia", "peru",
			"ecuador", "uruguay", "paraguay", "bolivia", "venezuela",
			"guatemala", "costa-rica", "panama",
		},
	},
	{
		Slug:    "norteamerica",
		Names:   []string{"Norteamérica", "North America"},
		Members: []string{"united-states", "canada", "mexico"},
	},
	{
		Slug:    "caribe",
		Names:   []string{"Caribe", "Caribbean"},
		Members: []string{"dominican-republic", "cuba", "jamaica", "bahamas"},
	},
	{
		Slug:  "asia",
		Names: []string{"Asia"},
		Members: []string{
			"japan", "china", "south-korea", "thailand", "vietnam", "singapore",
			"malaysia", "indonesia", "india", "philippines", "hong-kong", "taiwan",
		},
	},
	{
		Slug:    "africa",
		Names:   []string{"África", "Africa"},
		Members: []string{"egypt", "morocco", "south-africa", "kenya", "nigeria", "tanzania"},
	},
	{
		Slug:    "oceania",
		Names:   []string{"Oceanía", "Oceania"},
		Members: []string{"australia", "new-zealand", "fiji"},
	},
	{
		Slug:  "oriente-medio",
		Names: []string{"Oriente Medio", "Middle East"},
		Members: []string{
			"united-arab-emirates", "israel", "saudi-arabia", "qatar",
			"turkey", "jordan",
		},
	},
}

// regionSynonyms maps free-text region spellings (English/Spanish, with and
// without hyphens or accents) to the canonical region slug. Keys are stored
// already normalized.
var regionSynonyms = map[string]string{
	"europa":          "europa",
	"europe":          "europa",
	"european union":  "europa",
	"union europea":   "europa",
	"eurozona":        "europa",
	"eu":              "europa",
	"latinoamerica":   "latinoamerica",
	"latin america":   "latinoamerica",
	"latam":           "latinoamerica",
	"america latina":  "latinoamerica",
	"sudamerica":      "latinoamerica",
	"south america":   "latinoamerica",
	"norteamerica":    "norteamerica",
	"north america":   "norteamerica",
	"caribe":          "caribe",
	"caribbean":       "caribe",
	"asia":            "asia",
	"asia pacifico":   "asia",
	"asia pacific":    "asia",
	"apac":            "asia",
	"africa":          "africa",
	"oceania":         "oceania",
	"oriente medio":   "oriente-medio",
	"middle east":     "oriente-medio",
	"medio oriente":   "oriente-medio",
}

// NormalizeRegionCode maps a raw free-text region string to its canonical
// slug. Unmapped input passes through lower-cased; this never fails.
func NormalizeRegionCode(raw string) string {
	norm := Normalize(raw)
	if norm == "" {
		return ""
	}
	if slug, ok := regionSynonyms[norm]; ok {
		return slug
	}
	return strings.ReplaceAll(norm, " ", "-")
}

// RegionBySlug returns the region entry for a canonical slug.
func RegionBySlug(slug string) (Region, bool) {
	for _, r := range Regions {
		if r.Slug == slug {
			return r, true
		}
	}
	return Region{}, false
}
