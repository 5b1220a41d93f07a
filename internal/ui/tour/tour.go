// Package tour is the onboarding walkthrough shown on first launch.
package tour

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Step is one page of the walkthrough.
type Step struct {
	Title string
	Body  string
}

// Steps returns the walkthrough pages in display order.
func Steps() []Step {
	return []Step{
		{
			Title: "👋 Welcome to the War Room",
			Body: "This is your command center for customer complaints.\n\n" +
				"Press n to continue, b to go back, esc to skip the tour.",
		},
		{
			Title: "📊 Live Statistics",
			Body: "The header shows totals at a glance: all complaints, today's\n" +
				"count, priority cases and the average anger level.",
		},
		{
			Title: "🔍 Smart Search",
			Body: "Press / and type to search customer names, message text and\n" +
				"cities. The feed updates as you type.",
		},
		{
			Title: "🎯 Filters",
			Body: "Press f for the filter panel: complaint type, anger level,\n" +
				"state and keywords, each with live counts. Selecting a chosen\n" +
				"value again clears it; keywords stack.",
		},
		{
			Title: "📱 The Feed",
			Body: "Navigate with j/k or the arrow keys. Enter opens the full\n" +
				"conversation; tab moves keyboard focus between the feed and\n" +
				"the conversation panel.",
		},
		{
			Title: "⭐ Starring",
			Body: "Press s to star the highlighted complaint. Starred complaints\n" +
				"sort to the top and survive restarts.",
		},
		{
			Title: "🏷 Keywords",
			Body: "The highlighted card numbers its keywords. Press 1-9 to toggle\n" +
				"that keyword as a filter and find similar issues.",
		},
		{
			Title: "🎬 Live Replay",
			Body: "Press v to watch the selected conversation unfold message by\n" +
				"message, typing pauses included.",
		},
		{
			Title: "📈 Analytics",
			Body: "Press a for the keyword frequency chart.\n\n" +
				"That's everything - press enter to start. Press ? anytime to\n" +
				"see this tour again.",
		},
	}
}

// FinishedMsg is sent when the tour ends, by completion or by skipping.
// Either way the seen-flag should be persisted.
type FinishedMsg struct{}

// Model is the tour overlay.
type Model struct {
	steps  []Step
	step   int
	width  int
	height int
}

// New creates a tour model on the first step.
func New() Model {
	return Model{steps: Steps()}
}

// SetSize updates overlay dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Restart rewinds to the first step.
func (m *Model) Restart() {
	m.step = 0
}

// Step returns the current step index (for testing).
func (m Model) Step() int {
	return m.step
}

// Update advances the walkthrough.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "n", "right", "enter", " ":
		if m.step >= len(m.steps)-1 {
			return m, func() tea.Msg { return FinishedMsg{} }
		}
		m.step++
	case "b", "left":
		if m.step > 0 {
			m.step--
		}
	case "esc":
		return m, func() tea.Msg { return FinishedMsg{} }
	}
	return m, nil
}

// View renders the overlay centered on the screen.
func (m Model) View() string {
	s := m.steps[m.step]

	progress := fmt.Sprintf("%d / %d", m.step+1, len(m.steps))
	next := "n next"
	if m.step == len(m.steps)-1 {
		next = "enter finish"
	}

	content := titleStyle.Render(s.Title) + "\n\n" +
		bodyStyle.Render(s.Body) + "\n\n" +
		footerStyle.Render(progress+"   "+next+" · b back · esc skip")

	box := boxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Styles

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF8732")).
			Padding(1, 3).
			Width(56)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8732"))
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
