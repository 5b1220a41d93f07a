package filter

import (
	"sort"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/geo"
	"github.com/abelbrown/warroom/internal/tone"
)

// Count is a label with an occurrence count, for sidebar sections and the
// analytics chart.
type Count struct {
	Label string
	N     int
}

// CategoryCounts tallies complaints per normalized category, sorted by
// count descending. Labels with equal counts sort alphabetically so the
// sidebar is stable between renders.
func CategoryCounts(items []complaint.Enriched) []Count {
	counts := make(map[string]int)
	for _, e := range items {
		counts[complaint.NormalizeCategory(e.Category)]++
	}
	return sortedCounts(counts)
}

// AngerCounts tallies complaints per band, in fixed band order (most severe
// first). Every band is present even at zero.
func AngerCounts(items []complaint.Enriched) []Count {
	counts := make(map[tone.Band]int)
	for _, e := range items {
		counts[e.Anger.Band]++
	}
	out := make([]Count, 0, len(tone.Bands))
	for _, b := range tone.Bands {
		out = append(out, Count{Label: string(b), N: counts[b]})
	}
	return out
}

// StateCounts tallies complaints per state abbreviation, sorted by count
// descending. The "XX" sentinel for unresolved locations is excluded from
// the aggregate.
func StateCounts(items []complaint.Enriched) []Count {
	counts := make(map[string]int)
	for _, e := range items {
		if e.Location.StateAbbr == geo.UnknownAbbr {
			continue
		}
		counts[e.Location.StateAbbr]++
	}
	return sortedCounts(counts)
}

// KeywordCounts tallies keyword occurrences across all records, sorted by
// frequency descending, capped at limit (0 = no cap).
func KeywordCounts(items []complaint.Enriched, limit int) []Count {
	counts := make(map[string]int)
	for _, e := range items {
		for _, kw := range e.Keywords {
			counts[kw]++
		}
	}
	out := sortedCounts(counts)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedCounts(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, Count{Label: label, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})
	return out
}
