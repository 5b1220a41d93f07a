// Package replay plays a complaint thread back as a live chat: messages
// appear one at a time with a simulated typing pause before each responder
// reply.
package replay

import (
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
)

// Reveal pacing. A customer message that is immediately answered shows a
// typing indicator partway through its pause and then reveals both sides
// together; everything else appears on a fixed cadence.
const (
	leadIn        = 500 * time.Millisecond
	revealPause   = 1800 * time.Millisecond
	typingStart   = 1200 * time.Millisecond
	exchangePause = 3500 * time.Millisecond
)

// Event is one step of the reveal schedule. After its delay (relative to
// the previous event) elapses, the view shows the first Show messages of
// the thread and the typing indicator state becomes Typing.
type Event struct {
	After  time.Duration
	Show   int
	Typing bool
}

// Script precomputes the full reveal schedule for a thread. The schedule is
// a plain value: reveal order and pause durations are testable without
// running any timers.
func Script(thread []complaint.ThreadMessage) []Event {
	var events []Event
	first := true

	delay := func(d time.Duration) time.Duration {
		if first {
			first = false
			return leadIn + d
		}
		return d
	}

	i := 0
	for i < len(thread) {
		answered := thread[i].FromCustomer() &&
			i+1 < len(thread) && !thread[i+1].FromCustomer()
		if answered {
			events = append(events,
				Event{After: delay(typingStart), Show: i, Typing: true},
				Event{After: exchangePause - typingStart, Show: i + 2, Typing: false},
			)
			i += 2
		} else {
			events = append(events, Event{After: delay(revealPause), Show: i + 1, Typing: false})
			i++
		}
	}

	return events
}

// Duration returns the total wall time the script takes to play.
func Duration(events []Event) time.Duration {
	var total time.Duration
	for _, e := range events {
		total += e.After
	}
	return total
}
