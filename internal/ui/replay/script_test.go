package replay

import (
	"testing"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
)

func customer(msg string) complaint.ThreadMessage {
	return complaint.ThreadMessage{Role: "customer", Message: msg}
}

func responder(msg string) complaint.ThreadMessage {
	return complaint.ThreadMessage{Role: "bk", Message: msg}
}

func TestScriptEmptyThread(t *testing.T) {
	if events := Script(nil); len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestScriptSingleMessage(t *testing.T) {
	events := Script([]complaint.ThreadMessage{customer("hello")})

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].After != 2300*time.Millisecond {
		t.Errorf("first reveal at %v, expected lead-in plus reveal pause", events[0].After)
	}
	if events[0].Show != 1 || events[0].Typing {
		t.Errorf("expected one message shown without typing, got %+v", events[0])
	}
}

func TestScriptAnsweredPair(t *testing.T) {
	events := Script([]complaint.ThreadMessage{
		customer("where is my order"),
		responder("let me check"),
	})

	if len(events) != 2 {
		t.Fatalf("expected 2 events for a pair, got %d", len(events))
	}

	// Typing indicator partway into the exchange, lead-in included.
	if events[0].After != 1700*time.Millisecond || !events[0].Typing {
		t.Errorf("typing event wrong: %+v", events[0])
	}
	// Both sides revealed together when the pause completes.
	if events[1].After != 2300*time.Millisecond || events[1].Typing {
		t.Errorf("reveal event wrong: %+v", events[1])
	}
	if events[1].Show != 2 {
		t.Errorf("expected both messages shown, got %d", events[1].Show)
	}

	if Duration(events) != 4000*time.Millisecond {
		t.Errorf("pair duration = %v, expected 4s", Duration(events))
	}
}

func TestScriptUnansweredCustomerMessages(t *testing.T) {
	events := Script([]complaint.ThreadMessage{
		customer("first"),
		customer("second"),
	})

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Typing {
			t.Errorf("event %d: no typing expected for back-to-back customer messages", i)
		}
		if e.Show != i+1 {
			t.Errorf("event %d: show = %d, expected %d", i, e.Show, i+1)
		}
	}
	if events[1].After != revealPause {
		t.Errorf("second reveal at %v, expected plain reveal pause", events[1].After)
	}
}

func TestScriptMixedThread(t *testing.T) {
	thread := []complaint.ThreadMessage{
		customer("complaint"),
		responder("apology"),
		customer("followup"),
		responder("resolution"),
	}

	events := Script(thread)

	if len(events) != 4 {
		t.Fatalf("expected 4 events (two pairs), got %d", len(events))
	}
	if events[1].Show != 2 || events[3].Show != 4 {
		t.Errorf("pair reveals wrong: %+v", events)
	}
	// Only the first pair carries the lead-in.
	if events[2].After != typingStart {
		t.Errorf("second pair typing at %v, expected %v", events[2].After, typingStart)
	}

	// The reveal count never decreases.
	prev := 0
	shown := 0
	for _, e := range events {
		if e.Show < prev {
			t.Errorf("reveal count went backwards: %d after %d", e.Show, prev)
		}
		if e.Show > prev {
			prev = e.Show
		}
		shown = e.Show
	}
	if shown != len(thread) {
		t.Errorf("final event shows %d of %d messages", shown, len(thread))
	}
}

func TestScriptResponderOpens(t *testing.T) {
	// A responder message with no preceding customer message reveals on the
	// plain cadence.
	events := Script([]complaint.ThreadMessage{
		responder("automated greeting"),
		customer("hello?"),
	})

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Typing || events[1].Typing {
		t.Error("no typing expected without an answered customer message")
	}
}
