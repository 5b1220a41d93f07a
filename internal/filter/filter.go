// Package filter provides pure filter and sort functions over the enriched
// complaint collection. All functions are simple: []Enriched in, []Enriched
// out. No side effects.
package filter

import (
	"sort"
	"strings"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/tone"
)

// Criteria is the active filter selection. Zero values mean "unset": an
// empty Criteria passes everything.
type Criteria struct {
	Category string    // normalized category name, "" = any
	Anger    tone.Band // "" = any
	State    string    // state abbreviation, "" = any
	Keywords []string  // OR semantics; empty = any
	Search   string    // case-insensitive substring; "" = any
}

// Empty reports whether no filter is active.
func (c Criteria) Empty() bool {
	return c.Category == "" && c.Anger == "" && c.State == "" &&
		len(c.Keywords) == 0 && c.Search == ""
}

// ToggleKeyword returns a copy of the criteria with the keyword's
// membership flipped.
func (c Criteria) ToggleKeyword(kw string) Criteria {
	out := make([]string, 0, len(c.Keywords)+1)
	found := false
	for _, k := range c.Keywords {
		if k == kw {
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		out = append(out, kw)
	}
	c.Keywords = out
	return c
}

// HasKeyword reports whether the keyword is part of the active selection.
func (c Criteria) HasKeyword(kw string) bool {
	for _, k := range c.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Matches reports whether a record passes every active filter.
func (c Criteria) Matches(e complaint.Enriched) bool {
	if c.Category != "" && complaint.NormalizeCategory(e.Category) != c.Category {
		return false
	}
	if c.Anger != "" && e.Anger.Band != c.Anger {
		return false
	}
	if c.State != "" && e.Location.StateAbbr != c.State {
		return false
	}
	if len(c.Keywords) > 0 {
		// OR semantics: at least one selected keyword must be present.
		// Records without a keywords array never match.
		any := false
		for _, kw := range c.Keywords {
			if e.HasKeyword(kw) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if c.Search != "" && !matchesSearch(e, c.Search) {
		return false
	}
	return true
}

// matchesSearch checks the customer name, every thread message and the city
// for a case-insensitive substring match.
func matchesSearch(e complaint.Enriched, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Customer.Name), q) {
		return true
	}
	for _, m := range e.Thread {
		if strings.Contains(strings.ToLower(m.Message), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.Location.City), q)
}

// DeriveView produces the visible ordered view: records failing any active
// filter are excluded, then starred records sort before unstarred and each
// partition is ordered most-recent-first. The sort is stable, so exact
// timestamp ties keep insertion order.
func DeriveView(items []complaint.Enriched, c Criteria, starred map[int]bool) []complaint.Enriched {
	result := make([]complaint.Enriched, 0, len(items))
	for _, e := range items {
		if c.Matches(e) {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		si, sj := starred[result[i].ID], starred[result[j].ID]
		if si != sj {
			return si
		}
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return result
}
