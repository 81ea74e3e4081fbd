package catalog

import (
	"regexp"
	"strings"
)

// Technology constants (single source of truth)
const (
	Tech5G  = "5G"
	TechLTE = "4G/LTE"
	Tech4G  = "4G" // default when nothing can be determined
	Tech3G  = "3G"
	Tech2G  = "2G"
)

// Word-bounded so "5GB" (a data size) never reads as 5G technology.
var (
	name5G  = regexp.MustCompile(`(?i)\b5g\b`)
	nameLTE = regexp.MustCompile(`(?i)\b(4g|lte)\b`)
	name3G  = regexp.MustCompile(`(?i)\b3g\b`)
	name2G  = regexp.MustCompile(`(?i)\b2g\b`)
)

// DeriveTechnology resolves a plan's technology with strict precedence:
// explicit 5G flag, then explicit LTE flag, then a name scan as a last
// resort, then "4G". The default is deliberately not "3G" — an unknown
// plan is assumed modern, not legacy.
func DeriveTechnology(connectivity map[string]string, name string) string {
	if flagSet(connectivity, "5g") {
		return Tech5G
	}
	// Upstream spells the LTE key both ways.
	if flagSet(connectivity, "lte") || flagSet(connectivity, "late") {
		return TechLTE
	}

	switch {
	case name5G.MatchString(name):
		return Tech5G
	case nameLTE.MatchString(name):
		return TechLTE
	case name3G.MatchString(name):
		return Tech3G
	case name2G.MatchString(name):
		return Tech2G
	}

	return Tech4G
}

// TechnologyFlags derives the has_5g/has_lte booleans from the technology
// value. These are derived, never independently authoritative.
func TechnologyFlags(technology string) (has5G, hasLTE bool) {
	switch technology {
	case Tech5G:
		return true, true
	case TechLTE:
		return false, true
	default:
		return false, false
	}
}

func flagSet(m map[string]string, key string) bool {
	if m == nil {
		return false
	}
	v := strings.ToLower(strings.TrimSpace(m[key]))
	switch v {
	case "yes", "true", "1", "si", "sí":
		return true
	}
	return false
}
