// Package complaint defines the complaint data model and the dataset loader.
//
// A RawComplaint is exactly what the dataset file contains. The enrichment
// pipeline wraps it into an Enriched value with derived display fields; the
// raw record itself is never mutated after load.
package complaint

import (
	"time"

	"github.com/abelbrown/warroom/internal/geo"
	"github.com/abelbrown/warroom/internal/synth"
	"github.com/abelbrown/warroom/internal/tone"
)

// Thread message roles as they appear on the wire. Anything that is not
// the customer renders as the responder side of the conversation.
const (
	RoleCustomer = "customer"
)

// ThreadMessage is one message in a complaint's conversational thread.
// Order is conversational order and is significant: the first customer
// message opens the complaint, a "final" message typically closes it.
type ThreadMessage struct {
	Role       string `json:"role"`
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"` // e.g. "final"
	Escalation bool   `json:"escalation,omitempty"`
	Attachment bool   `json:"attachment,omitempty"`
}

// FromCustomer reports whether the message was sent by the customer.
func (m ThreadMessage) FromCustomer() bool {
	return m.Role == RoleCustomer
}

// Final reports whether the message closes the thread.
func (m ThreadMessage) Final() bool {
	return m.Type == "final"
}

// ExtractedData is the sparse bag of structured fields pulled out of a
// complaint. Every field is optional; absent fields simply suppress the
// corresponding UI element.
type ExtractedData struct {
	Location                 string `json:"location,omitempty"`
	City                     string `json:"city,omitempty"`
	State                    string `json:"state,omitempty"`
	Issue                    string `json:"issue,omitempty"`
	Time                     string `json:"time,omitempty"`
	OrderDetails             string `json:"order_details,omitempty"`
	EmployeeDescription      string `json:"employee_description,omitempty"`
	EmployeeName             string `json:"employee_name,omitempty"`
	ManagerName              string `json:"manager_name,omitempty"`
	ResolutionRequested      string `json:"resolution_requested,omitempty"`
	HealthConcern            bool   `json:"health_concern,omitempty"`
	DiscriminationComplaint  bool   `json:"discrimination_complaint,omitempty"`
	ThreatsMade              string `json:"threats_made,omitempty"`
	PreviousAttempts         string `json:"previous_attempts,omitempty"`
	Evidence                 string `json:"evidence,omitempty"`
	SpecificFoodItem         string `json:"specific_food_item,omitempty"`
	AppIssue                 string `json:"app_issue,omitempty"`
	PaymentProblem           string `json:"payment_problem,omitempty"`
	DeliveryIssue            string `json:"delivery_issue,omitempty"`
	RefundStatus             string `json:"refund_status,omitempty"`
	Frequency                string `json:"frequency,omitempty"`
	Priority                 string `json:"priority,omitempty"`
	Status                   string `json:"status,omitempty"`
}

// RawComplaint is one record from the dataset, untouched.
type RawComplaint struct {
	ID        int             `json:"id"`
	Category  string          `json:"category"`
	Tone      string          `json:"tone"`
	Keywords  []string        `json:"keywords"`
	Priority  string          `json:"priority,omitempty"` // "high" or "medium"
	HasTypos  bool            `json:"has_typos,omitempty"`
	Thread    []ThreadMessage `json:"thread"`
	Extracted ExtractedData   `json:"extracted_data"`
}

// HasKeyword reports whether the record carries the given keyword.
// Records without a keywords array never match.
func (r RawComplaint) HasKeyword(kw string) bool {
	for _, k := range r.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Opener returns the first customer message, or the empty string if the
// thread is empty.
func (r RawComplaint) Opener() string {
	for _, m := range r.Thread {
		if m.FromCustomer() {
			return m.Message
		}
	}
	return ""
}

// Enriched is a RawComplaint plus the display fields derived at load time.
// Created once per record; never mutated afterwards. The timestamp is drawn
// once at enrichment time and is stable for the process lifetime.
type Enriched struct {
	RawComplaint

	Customer  synth.Customer
	Location  geo.Location
	Anger     tone.Assessment
	Timestamp time.Time
}
