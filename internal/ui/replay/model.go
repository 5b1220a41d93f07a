package replay

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CloseMsg asks the root model to leave the replay view.
type CloseMsg struct{}

// tickMsg fires the next scheduled event. The generation stamp cancels
// ticks from an earlier run: switching complaints or restarting bumps the
// generation, so a stale callback can never mutate the new playback.
type tickMsg struct {
	gen  int
	next int
}

// Model is the full-screen live chat replay.
type Model struct {
	item   *complaint.Enriched
	events []Event
	next   int // index of the next unapplied event
	show   int // messages currently revealed
	typing bool
	gen    int
	width  int
	height int
}

// New creates a replay model.
func New() Model {
	return Model{}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Start begins playback for a complaint, cancelling any previous run.
func (m *Model) Start(item *complaint.Enriched) tea.Cmd {
	m.item = item
	m.events = Script(item.Thread)
	m.next = 0
	m.show = 0
	m.typing = false
	m.gen++
	return m.scheduleNext()
}

// Stop invalidates pending ticks. Safe to call on teardown.
func (m *Model) Stop() {
	m.gen++
}

// Done reports whether the full thread is revealed.
func (m Model) Done() bool {
	return m.next >= len(m.events)
}

// Revealed returns how many messages are visible (for testing).
func (m Model) Revealed() int {
	return m.show
}

// Typing reports whether the typing indicator is showing (for testing).
func (m Model) Typing() bool {
	return m.typing
}

func (m Model) scheduleNext() tea.Cmd {
	if m.next >= len(m.events) {
		return nil
	}
	gen, next := m.gen, m.next
	return tea.Tick(m.events[next].After, func(time.Time) tea.Msg {
		return tickMsg{gen: gen, next: next}
	})
}

// Update handles playback ticks and keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen || msg.next != m.next {
			// Stale tick from a cancelled run.
			return m, nil
		}
		ev := m.events[m.next]
		m.show = ev.Show
		m.typing = ev.Typing
		m.next++
		return m, m.scheduleNext()

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			// Skip to the end of the playback.
			m.gen++
			m.next = len(m.events)
			if m.item != nil {
				m.show = len(m.item.Thread)
			}
			m.typing = false
			return m, nil
		case "r":
			if m.item != nil {
				item := m.item
				return m, m.Start(item)
			}
		case "esc", "q":
			m.Stop()
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	return m, nil
}

// View renders the chat so far, themed by the complaint's anger band.
func (m Model) View() string {
	if m.item == nil {
		return ""
	}
	e := m.item
	meta := e.Anger.Band.Metadata()
	accent := lipgloss.Color(meta.Color)

	header := replayHeader.
		Width(m.width).
		BorderForeground(accent).
		Render(fmt.Sprintf("🎬 LIVE  %s %s  %s · %s", meta.Emoji, e.Customer.Name,
			complaint.NormalizeCategory(e.Category), e.Customer.Phone))

	bubbleWidth := m.width * 2 / 3
	if bubbleWidth < 24 {
		bubbleWidth = 24
	}

	var lines []string
	for i := 0; i < m.show && i < len(e.Thread); i++ {
		msg := e.Thread[i]
		if msg.FromCustomer() {
			lines = append(lines, customerBubble.MaxWidth(bubbleWidth).Render(msg.Message))
		} else {
			bubble := responderBubble.Background(accent).MaxWidth(bubbleWidth).Render(msg.Message)
			lines = append(lines, lipgloss.PlaceHorizontal(m.width-2, lipgloss.Right, bubble))
		}
		lines = append(lines, "")
	}
	if m.typing {
		lines = append(lines, lipgloss.PlaceHorizontal(m.width-2, lipgloss.Right,
			typingStyle.Render("● ● ●  typing")))
	}
	if m.Done() && !m.typing {
		lines = append(lines, doneStyle.Render("— end of conversation —"))
	}

	// Keep the most recent lines in view, like a real chat window.
	body := lines
	maxLines := m.height - 4
	total := 0
	for _, l := range lines {
		total += lipgloss.Height(l)
	}
	for len(body) > 0 && total > maxLines {
		total -= lipgloss.Height(body[0])
		body = body[1:]
	}

	hint := hintStyle.Render("space skip · r restart · esc close")
	return header + "\n\n" + strings.Join(body, "\n") + "\n" + hint
}

// Styles

var (
	replayHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false)
	customerBubble = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255"))
	responderBubble = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("232"))
	typingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
