package detail

import (
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/abelbrown/warroom/internal/geo"
	"github.com/abelbrown/warroom/internal/synth"
	"github.com/abelbrown/warroom/internal/tone"
)

func testComplaint() *complaint.Enriched {
	return &complaint.Enriched{
		RawComplaint: complaint.RawComplaint{
			ID:       1,
			Category: "wrong order",
			Thread: []complaint.ThreadMessage{
				{Role: "customer", Message: "my whopper was missing"},
				{Role: "bk", Message: "escalating to the restaurant", Escalation: true},
				{Role: "bk", Message: "refund issued", Type: "final"},
			},
			Extracted: complaint.ExtractedData{
				Issue:         "missing item",
				HealthConcern: true,
			},
		},
		Customer:  synth.Customer{Name: "Marcus Johnson", Phone: "(713) 555-1234"},
		Location:  geo.Location{City: "Houston", StateAbbr: "TX"},
		Anger:     tone.Classify("aggressive"),
		Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestViewPlaceholderWithoutSelection(t *testing.T) {
	m := New()
	m.SetSize(60, 30)

	if !strings.Contains(m.View(), "Select a complaint") {
		t.Errorf("expected placeholder, got:\n%s", m.View())
	}
}

func TestViewShowsConversation(t *testing.T) {
	m := New()
	m.SetSize(60, 40)
	m.SetComplaint(testComplaint(), false)

	view := m.View()

	if !strings.Contains(view, "Marcus Johnson") {
		t.Errorf("missing customer name:\n%s", view)
	}
	if !strings.Contains(view, "FURIOUS 10/10") {
		t.Errorf("missing anger badge:\n%s", view)
	}
	if !strings.Contains(view, "Houston, TX") {
		t.Errorf("missing location:\n%s", view)
	}
	if !strings.Contains(view, "my whopper was missing") {
		t.Errorf("missing thread message:\n%s", view)
	}
	if !strings.Contains(view, "escalated") {
		t.Errorf("missing escalation mark:\n%s", view)
	}
	if !strings.Contains(view, "final response") {
		t.Errorf("missing final mark:\n%s", view)
	}
	if !strings.Contains(view, "health concern") {
		t.Errorf("missing health alert:\n%s", view)
	}
}

func TestViewHidesUnknownState(t *testing.T) {
	item := testComplaint()
	item.Location = geo.Location{City: "Unknown", StateAbbr: geo.UnknownAbbr}

	m := New()
	m.SetSize(60, 40)
	m.SetComplaint(item, false)

	if strings.Contains(m.View(), ", XX") {
		t.Errorf("sentinel state abbreviation leaked into view:\n%s", m.View())
	}
}

func TestStarShownInTitle(t *testing.T) {
	m := New()
	m.SetSize(60, 40)
	m.SetComplaint(testComplaint(), true)

	if !strings.Contains(m.View(), "★") {
		t.Error("expected star in title")
	}
}
