// Package enrich composes the location, customer and tone resolvers over a
// raw dataset, producing the enriched collection the rest of the app
// operates on.
package enrich

import (
	"math/rand"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/geo"
	"github.com/abelbrown/warroom/internal/synth"
	"github.com/abelbrown/warroom/internal/tone"
)

// simulatedWindow is how far back a simulated receipt timestamp may land.
const simulatedWindow = 24 * time.Hour

// Pipeline enriches raw complaints. The clock and RNG are injectable so
// tests can pin the one non-deterministic step (the timestamp draw);
// everything else is a pure function of the record.
type Pipeline struct {
	Now  func() time.Time
	Rand *rand.Rand
}

// New returns a pipeline backed by the wall clock and a time-seeded RNG.
func New() *Pipeline {
	return &Pipeline{
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Enrich maps every raw record to an enriched one. Order-preserving; never
// drops or merges records. Runs once at startup.
func (p *Pipeline) Enrich(raws []complaint.RawComplaint) []complaint.Enriched {
	enriched := make([]complaint.Enriched, 0, len(raws))
	for _, raw := range raws {
		enriched = append(enriched, p.enrichOne(raw))
	}
	return enriched
}

func (p *Pipeline) enrichOne(raw complaint.RawComplaint) complaint.Enriched {
	// Explicit city/state fields win over free-text parsing.
	loc := geo.Resolve(raw.Extracted.Location, raw.Extracted.City, raw.Extracted.State)
	cust := synth.Generate(raw.ID, loc.State, loc.StateAbbr, loc.City)
	anger := tone.Classify(raw.Tone)

	// Simulate "received sometime in the last 24 hours".
	minutesAgo := p.Rand.Intn(int(simulatedWindow / time.Minute))
	ts := p.Now().Add(-time.Duration(minutesAgo) * time.Minute)

	return complaint.Enriched{
		RawComplaint: raw,
		Customer:     cust,
		Location:     loc,
		Anger:        anger,
		Timestamp:    ts,
	}
}
