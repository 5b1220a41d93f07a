package geo

import "testing"

func TestParseKnownCity(t *testing.T) {
	loc := Parse("Miami")

	if loc.City != "Miami" {
		t.Errorf("expected city Miami, got %q", loc.City)
	}
	if loc.State != "Florida" {
		t.Errorf("expected state Florida, got %q", loc.State)
	}
	if loc.StateAbbr != "FL" {
		t.Errorf("expected abbr FL, got %q", loc.StateAbbr)
	}
	if loc.Raw != "Miami" {
		t.Errorf("expected raw input preserved, got %q", loc.Raw)
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	for _, input := range []string{"miami", "MIAMI", "  Miami  "} {
		loc := Parse(input)
		if loc.StateAbbr != "FL" {
			t.Errorf("Parse(%q): expected FL, got %q", input, loc.StateAbbr)
		}
	}
}

func TestParseStreetCityPair(t *testing.T) {
	// Second part is a known city: first part is treated as a street.
	loc := Parse("123 Main St, Houston")

	if loc.Street != "123 Main St" {
		t.Errorf("expected street kept, got %q", loc.Street)
	}
	if loc.City != "Houston" {
		t.Errorf("expected city Houston, got %q", loc.City)
	}
	if loc.StateAbbr != "TX" {
		t.Errorf("expected TX, got %q", loc.StateAbbr)
	}
}

func TestParseCityStatePair(t *testing.T) {
	// First part is a known city, second part is not.
	loc := Parse("Tampa, FL")

	if loc.City != "Tampa" {
		t.Errorf("expected city Tampa, got %q", loc.City)
	}
	if loc.StateAbbr != "FL" {
		t.Errorf("expected FL, got %q", loc.StateAbbr)
	}
}

func TestParseUnrecognizedPair(t *testing.T) {
	// Neither part is known: second part becomes the state, abbreviation
	// truncated to its first two letters.
	loc := Parse("Smallville, Kansas")

	if loc.City != "Smallville" {
		t.Errorf("expected city Smallville, got %q", loc.City)
	}
	if loc.State != "kansas" {
		t.Errorf("expected state kept as-is, got %q", loc.State)
	}
	if loc.StateAbbr != "KA" {
		t.Errorf("expected truncated abbr KA, got %q", loc.StateAbbr)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, input := range []string{"", "narnia"} {
		loc := Parse(input)
		if loc.StateAbbr != UnknownAbbr {
			t.Errorf("Parse(%q): expected %s, got %q", input, UnknownAbbr, loc.StateAbbr)
		}
		if loc.State != "Unknown" {
			t.Errorf("Parse(%q): expected Unknown state, got %q", input, loc.State)
		}
	}

	// Unknown free text still keeps the city guess.
	if loc := Parse("narnia"); loc.City != "Narnia" {
		t.Errorf("expected city Narnia, got %q", loc.City)
	}
}

func TestResolveExplicitFieldsWin(t *testing.T) {
	loc := Resolve("Miami", "Springfield", "IL")

	if loc.City != "Springfield" {
		t.Errorf("expected explicit city to win, got %q", loc.City)
	}
	if loc.StateAbbr != "IL" {
		t.Errorf("expected explicit state as abbr, got %q", loc.StateAbbr)
	}
	if loc.Raw != "Miami" {
		t.Errorf("expected raw text preserved, got %q", loc.Raw)
	}
}

func TestResolveFallsBackToText(t *testing.T) {
	// Explicit fields only win when BOTH are present.
	loc := Resolve("Denver", "Springfield", "")

	if loc.City != "Denver" {
		t.Errorf("expected parse of location text, got city %q", loc.City)
	}
	if loc.StateAbbr != "CO" {
		t.Errorf("expected CO, got %q", loc.StateAbbr)
	}
}

func TestParsePurity(t *testing.T) {
	a := Parse("Brooklyn, New York")
	b := Parse("Brooklyn, New York")
	if a != b {
		t.Errorf("expected identical results for identical input: %+v vs %+v", a, b)
	}
}
