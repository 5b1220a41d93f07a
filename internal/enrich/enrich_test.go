package enrich

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/tone"
)

func fixedPipeline(seed int64) *Pipeline {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &Pipeline{
		Now:  func() time.Time { return now },
		Rand: rand.New(rand.NewSource(seed)),
	}
}

func TestEnrichPreservesOrderAndCount(t *testing.T) {
	raws := []complaint.RawComplaint{
		{ID: 3, Tone: "neutral"},
		{ID: 1, Tone: "aggressive"},
		{ID: 2, Tone: "confused"},
	}

	out := fixedPipeline(1).Enrich(raws)

	if len(out) != 3 {
		t.Fatalf("expected 3 enriched records, got %d", len(out))
	}
	for i, want := range []int{3, 1, 2} {
		if out[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, out[i].ID)
		}
	}
}

func TestEnrichDerivesFields(t *testing.T) {
	raws := []complaint.RawComplaint{{
		ID:   7,
		Tone: "aggressive",
		Extracted: complaint.ExtractedData{
			Location: "Houston",
		},
	}}

	out := fixedPipeline(1).Enrich(raws)
	e := out[0]

	if e.Location.StateAbbr != "TX" {
		t.Errorf("expected TX location, got %q", e.Location.StateAbbr)
	}
	if e.Customer.Name == "" || e.Customer.Phone == "" {
		t.Errorf("expected synthesized customer, got %+v", e.Customer)
	}
	if e.Customer.City != "Houston" {
		t.Errorf("customer city = %q, expected Houston", e.Customer.City)
	}
	if e.Anger.Band != tone.Furious || e.Anger.Level != 10 {
		t.Errorf("expected furious level 10, got %+v", e.Anger)
	}
}

func TestEnrichTimestampWithinWindow(t *testing.T) {
	raws := make([]complaint.RawComplaint, 50)
	for i := range raws {
		raws[i] = complaint.RawComplaint{ID: i + 1}
	}

	p := fixedPipeline(99)
	now := p.Now()
	out := p.Enrich(raws)

	for _, e := range out {
		if e.Timestamp.After(now) {
			t.Errorf("id %d: timestamp %v in the future", e.ID, e.Timestamp)
		}
		if now.Sub(e.Timestamp) >= 24*time.Hour {
			t.Errorf("id %d: timestamp %v older than 24h", e.ID, e.Timestamp)
		}
	}
}

func TestEnrichDoesNotMutateRaw(t *testing.T) {
	raw := complaint.RawComplaint{
		ID:       1,
		Category: "cold food",
		Tone:     "frustrated",
		Keywords: []string{"cold fries"},
	}

	out := fixedPipeline(1).Enrich([]complaint.RawComplaint{raw})

	if out[0].Category != "cold food" || out[0].Tone != "frustrated" {
		t.Errorf("raw fields altered: %+v", out[0].RawComplaint)
	}
	if len(out[0].Keywords) != 1 || out[0].Keywords[0] != "cold fries" {
		t.Errorf("keywords altered: %v", out[0].Keywords)
	}
}

func TestEnrichSameIDSameCustomer(t *testing.T) {
	raw := complaint.RawComplaint{ID: 42, Extracted: complaint.ExtractedData{Location: "Denver"}}

	a := fixedPipeline(1).Enrich([]complaint.RawComplaint{raw})[0]
	b := fixedPipeline(2).Enrich([]complaint.RawComplaint{raw})[0]

	if a.Customer != b.Customer {
		t.Errorf("customer identity not stable across runs: %+v vs %+v", a.Customer, b.Customer)
	}
}
