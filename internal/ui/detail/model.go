// Package detail renders the conversation panel for a selected complaint:
// the full SMS-style thread plus the extracted-data card.
package detail

import (
	"fmt"
	"strings"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the detail panel.
type Model struct {
	item    *complaint.Enriched
	starred bool
	width   int
	height  int
	vp      viewport.Model
	focused bool
}

// New creates a detail model.
func New() Model {
	return Model{vp: viewport.New(0, 0)}
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height - 1 // title row
	m.refresh()
}

// SetFocused marks whether keyboard scrolling targets this panel.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Focused reports current focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetComplaint replaces the displayed complaint. Nil clears the panel.
func (m *Model) SetComplaint(item *complaint.Enriched, starred bool) {
	m.item = item
	m.starred = starred
	m.vp.GotoTop()
	m.refresh()
}

// Update handles scrolling while the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused || m.item == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.item == nil {
		return
	}
	m.vp.SetContent(m.renderContent())
}

// View renders the panel.
func (m Model) View() string {
	if m.item == nil {
		return placeholderStyle.Width(m.width).Render("Select a complaint to see the conversation.")
	}

	title := m.renderTitle()
	return title + "\n" + m.vp.View()
}

func (m Model) renderTitle() string {
	e := m.item
	meta := e.Anger.Band.Metadata()
	star := ""
	if m.starred {
		star = starStyle.Render(" ★")
	}
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(meta.Color)).
		Bold(true).
		Render(fmt.Sprintf("%s %s %d/10", meta.Emoji, meta.Label, e.Anger.Level))
	return titleStyle.Width(m.width).Render(
		fmt.Sprintf("%s%s  %s  %s", e.Customer.Name, star, badge, e.Customer.Phone))
}

func (m Model) renderContent() string {
	e := m.item
	var b strings.Builder

	loc := e.Location.City
	if e.Location.StateAbbr != "XX" {
		loc += ", " + e.Location.StateAbbr
	}
	b.WriteString(metaStyle.Render(fmt.Sprintf("📍 %s   🕐 %s", loc, e.Timestamp.Format("Jan 2, 2006 3:04 PM"))))
	b.WriteString("\n\n")

	bubbleWidth := m.width - 10
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	for _, msg := range e.Thread {
		b.WriteString(renderBubble(msg, bubbleWidth, m.width))
		b.WriteString("\n")
	}

	if data := renderExtracted(e.Extracted, m.width-4); data != "" {
		b.WriteString("\n")
		b.WriteString(extractedTitle.Render("EXTRACTED DETAILS"))
		b.WriteString("\n")
		b.WriteString(data)
	}

	return b.String()
}

// renderBubble lays out one thread message, customer on the left and
// responder on the right, iMessage style.
func renderBubble(msg complaint.ThreadMessage, bubbleWidth, panelWidth int) string {
	text := msg.Message
	if msg.Attachment {
		text += "\n📎 attachment"
	}

	var bubble string
	if msg.FromCustomer() {
		bubble = customerBubble.MaxWidth(bubbleWidth).Render(text)
	} else {
		bubble = responderBubble.MaxWidth(bubbleWidth).Render(text)
		bubble = lipgloss.PlaceHorizontal(panelWidth-2, lipgloss.Right, bubble)
	}

	var marks []string
	if msg.Escalation {
		marks = append(marks, escalationMark.Render("⚠ escalated"))
	}
	if msg.Final() {
		marks = append(marks, finalMark.Render("✓ final response"))
	}
	if len(marks) > 0 {
		tag := strings.Join(marks, "  ")
		if !msg.FromCustomer() {
			tag = lipgloss.PlaceHorizontal(panelWidth-2, lipgloss.Right, tag)
		}
		bubble += "\n" + tag
	}

	return bubble
}

// renderExtracted emits one label/value row per populated field; absent
// fields render nothing.
func renderExtracted(d complaint.ExtractedData, width int) string {
	var rows []string
	row := func(label, value string) {
		if value == "" {
			return
		}
		rows = append(rows, dataLabel.Render(label+":")+" "+dataValue.MaxWidth(width-len(label)-2).Render(value))
	}

	row("Location", d.Location)
	row("Issue", d.Issue)
	row("Time", d.Time)
	row("Order", d.OrderDetails)
	row("Employee", d.EmployeeName)
	row("Manager", d.ManagerName)
	row("Resolution", d.ResolutionRequested)
	row("Frequency", d.Frequency)
	row("Refund", d.RefundStatus)
	row("Status", d.Status)

	if d.HealthConcern {
		rows = append(rows, alertMark.Render("⚕ health concern"))
	}
	if d.DiscriminationComplaint {
		rows = append(rows, alertMark.Render("⚖ discrimination complaint"))
	}

	return strings.Join(rows, "\n")
}

// Styles

var (
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("236"))
	metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	starStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))

	customerBubble = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255"))
	responderBubble = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#FF8732")).
			Foreground(lipgloss.Color("232"))

	escalationMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#D62300")).Bold(true)
	finalMark      = lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759"))
	alertMark      = lipgloss.NewStyle().Foreground(lipgloss.Color("#D62300"))

	extractedTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true).Padding(0, 1)
	dataLabel      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 0, 0, 1)
	dataValue      = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)
