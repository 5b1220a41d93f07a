package filter

import (
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/tone"
)

// Stats are the header-bar aggregates over the full enriched collection.
type Stats struct {
	Total    int
	Today    int     // received since local midnight
	Priority int     // explicit high priority or furious band
	AvgAnger float64 // mean anger level, 0 for an empty collection
}

// ComputeStats derives the header stats. "Today" is relative to the local
// midnight before now.
func ComputeStats(items []complaint.Enriched, now time.Time) Stats {
	s := Stats{Total: len(items)}
	if len(items) == 0 {
		return s
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sum := 0
	for _, e := range items {
		if !e.Timestamp.Before(midnight) {
			s.Today++
		}
		if e.RawComplaint.Priority == "high" || e.Anger.Band == tone.Furious {
			s.Priority++
		}
		sum += e.Anger.Level
	}
	s.AvgAnger = float64(sum) / float64(len(items))
	return s
}
