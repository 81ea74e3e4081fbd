package geo

// CountryAliases maps a country slug to common alternate spellings and
// abbreviations users actually type. Matched after slug/name comparisons.
var CountryAliases = map[string][]string{
	"united-states":        {"usa", "us", "eeuu", "united states of america", "america"},
	"united-kingdom":       {"uk", "great britain", "inglaterra", "england"},
	"united-arab-emirates": {"uae", "emiratos", "dubai"},
	"south-korea":          {"korea", "corea"},
	"czech-republic":       {"czechia", "chequia"},
	"netherlands":          {"holland", "holanda"},
	"germany":              {"deutschland"},
	"switzerland":          {"swiss"},
	"china":                {"prc"},
	"vietnam":              {"viet nam"},
	"saudi-arabia":         {"ksa"},
	"new-zealand":          {"nz"},
	"hong-kong":            {"hongkong"},
	"turkey":               {"turkiye"},
	"dominican-republic":   {"rd", "santo domingo"},
}
