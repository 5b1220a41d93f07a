// Package geo resolves free-text location strings into structured
// city/state records.
//
// Resolution is total: every input maps to some Location, with
// "Unknown"/"XX" as the universal fallback. No errors are ever returned.
package geo

import "strings"

// UnknownAbbr is the sentinel state abbreviation for unresolved locations.
// Aggregations over states must skip it.
const UnknownAbbr = "XX"

type stateInfo struct {
	state string
	abbr  string
}

// cityStates maps major US cities (lower-cased) to their state.
var cityStates = map[string]stateInfo{
	// California
	"los angeles":   {"California", "CA"},
	"san francisco": {"California", "CA"},
	"san diego":     {"California", "CA"},
	"sacramento":    {"California", "CA"},
	"oakland":       {"California", "CA"},

	// Texas
	"houston":     {"Texas", "TX"},
	"dallas":      {"Texas", "TX"},
	"austin":      {"Texas", "TX"},
	"san antonio": {"Texas", "TX"},

	// Florida
	"miami":        {"Florida", "FL"},
	"orlando":      {"Florida", "FL"},
	"tampa":        {"Florida", "FL"},
	"jacksonville": {"Florida", "FL"},

	// New York
	"new york":  {"New York", "NY"},
	"buffalo":   {"New York", "NY"},
	"rochester": {"New York", "NY"},
	"brooklyn":  {"New York", "NY"},
	"queens":    {"New York", "NY"},

	"chicago": {"Illinois", "IL"},

	"philadelphia": {"Pennsylvania", "PA"},
	"pittsburgh":   {"Pennsylvania", "PA"},

	"phoenix": {"Arizona", "AZ"},
	"tucson":  {"Arizona", "AZ"},

	"las vegas": {"Nevada", "NV"},

	"seattle": {"Washington", "WA"},

	"boston": {"Massachusetts", "MA"},

	"atlanta": {"Georgia", "GA"},

	"denver": {"Colorado", "CO"},

	"detroit": {"Michigan", "MI"},

	"portland": {"Oregon", "OR"},

	"nashville": {"Tennessee", "TN"},
	"memphis":   {"Tennessee", "TN"},

	"charlotte": {"North Carolina", "NC"},

	"columbus":  {"Ohio", "OH"},
	"cleveland": {"Ohio", "OH"},

	"indianapolis": {"Indiana", "IN"},
}

// Location is a resolved complaint location. Derived once per complaint and
// never mutated after creation.
type Location struct {
	Street    string // optional, title-cased
	City      string // title-cased
	State     string // full name, or "Unknown"
	StateAbbr string // 2-letter code, or "XX"
	Raw       string // original input text
}

// Resolve maps a free-text location (or explicit city/state fields) to a
// Location.
//
// Explicit city and state take precedence verbatim when both are present.
// In that path the state value doubles as the abbreviation with no
// normalization applied; downstream filtering keys off whatever lands in
// StateAbbr, so this stays as observed.
func Resolve(locationText, explicitCity, explicitState string) Location {
	if explicitCity != "" && explicitState != "" {
		return Location{
			City:      explicitCity,
			State:     explicitState,
			StateAbbr: explicitState,
			Raw:       locationText,
		}
	}
	return Parse(locationText)
}

// Parse resolves a free-text location string.
//
// Comma-separated input is tried as "street, city" first, then "city, ...",
// and finally treated as an unrecognized city/state pair with the
// abbreviation truncated from the second part. Single-part input is looked
// up directly. Empty input and lookup misses fall back to Unknown/XX.
func Parse(locationText string) Location {
	if locationText == "" {
		return Location{
			City:      "Unknown",
			State:     "Unknown",
			StateAbbr: UnknownAbbr,
			Raw:       "Unknown",
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(locationText))
	parts := strings.Split(normalized, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var street, city, state, abbr string

	if len(parts) >= 2 {
		first, second := parts[0], parts[1]
		if match, ok := cityStates[second]; ok {
			street = first
			city = second
			state = match.state
			abbr = match.abbr
		} else if match, ok := cityStates[first]; ok {
			city = first
			state = match.state
			abbr = match.abbr
		} else {
			city = first
			state = second
			abbr = truncAbbr(second)
		}
	} else {
		if match, ok := cityStates[normalized]; ok {
			city = normalized
			state = match.state
			abbr = match.abbr
		} else {
			city = normalized
			state = "Unknown"
			abbr = UnknownAbbr
		}
	}

	return Location{
		Street:    titleCase(street),
		City:      titleCase(city),
		State:     state,
		StateAbbr: abbr,
		Raw:       locationText,
	}
}

func truncAbbr(s string) string {
	if len(s) < 2 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:2])
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
