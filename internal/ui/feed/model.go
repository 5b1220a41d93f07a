// Package feed renders the scrolling complaint list with live search.
package feed

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/abelbrown/warroom/internal/complaint"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// frameInterval drives the scroll spring. 30fps is plenty for a list.
const frameInterval = time.Second / 30

// FrameMsg advances the scroll animation.
type FrameMsg struct{}

// Model is the feed view showing the derived complaint list.
type Model struct {
	items      []complaint.Enriched
	starred    map[int]bool
	selectedKw map[string]bool
	cursor     int
	selectedID int // track by id so the cursor survives re-derivation
	width      int
	height     int
	compact    bool
	now        func() time.Time

	search    textinput.Model
	searching bool

	// Smooth scrolling with spring physics.
	scrollSpring   harmonica.Spring
	scrollPos      float64
	scrollVelocity float64
	scrollTarget   float64
	animating      bool
}

// New creates a feed model.
func New(compact bool) Model {
	ti := textinput.New()
	ti.Placeholder = "search name, message or city"
	ti.Prompt = "🔍 "
	ti.CharLimit = 80

	return Model{
		compact:      compact,
		now:          time.Now,
		search:       ti,
		scrollSpring: harmonica.NewSpring(harmonica.FPS(30), 6.0, 0.8),
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = width - 6
}

// SetNow overrides the clock (for tests).
func (m *Model) SetNow(now func() time.Time) {
	m.now = now
}

// SetItems replaces the visible list. The cursor follows the previously
// highlighted complaint when it is still present, otherwise it clamps.
func (m *Model) SetItems(items []complaint.Enriched, starred map[int]bool, selectedKw map[string]bool) {
	m.items = items
	m.starred = starred
	m.selectedKw = selectedKw

	if m.selectedID != 0 {
		for i, e := range items {
			if e.ID == m.selectedID {
				m.cursor = i
				m.scrollTarget = float64(i)
				return
			}
		}
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollTarget = float64(m.cursor)
	if len(items) > 0 {
		m.selectedID = items[m.cursor].ID
	}
}

// Items returns the current items (for testing).
func (m Model) Items() []complaint.Enriched {
	return m.items
}

// Cursor returns the cursor position (for testing).
func (m Model) Cursor() int {
	return m.cursor
}

// Current returns the complaint under the cursor.
func (m Model) Current() (complaint.Enriched, bool) {
	if m.cursor >= 0 && m.cursor < len(m.items) {
		return m.items[m.cursor], true
	}
	return complaint.Enriched{}, false
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.search.Value()
}

// StartSearch focuses the search input.
func (m *Model) StartSearch() tea.Cmd {
	m.searching = true
	return m.search.Focus()
}

func (m *Model) moveCursor(to int) tea.Cmd {
	if to < 0 || to >= len(m.items) {
		return nil
	}
	m.cursor = to
	m.selectedID = m.items[to].ID
	m.scrollTarget = float64(to)
	if !m.animating {
		m.animating = true
		return frameTick()
	}
	return nil
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc", "enter":
				m.searching = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			return m, m.StartSearch()
		case "j", "down":
			return m, m.moveCursor(m.cursor + 1)
		case "k", "up":
			return m, m.moveCursor(m.cursor - 1)
		case "g", "home":
			return m, m.moveCursor(0)
		case "G", "end":
			return m, m.moveCursor(len(m.items) - 1)
		}

	case FrameMsg:
		m.scrollPos, m.scrollVelocity = m.scrollSpring.Update(m.scrollPos, m.scrollVelocity, m.scrollTarget)
		if math.Abs(m.scrollPos-m.scrollTarget) < 0.01 && math.Abs(m.scrollVelocity) < 0.01 {
			m.scrollPos = m.scrollTarget
			m.animating = false
			return m, nil
		}
		return m, frameTick()
	}

	return m, nil
}

// View renders the feed: search bar on top, then the list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(searchBar.Render(m.search.View()))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(emptyStyle.Render("No complaints match the active filters."))
		return b.String()
	}

	linesPer := 2
	if m.compact {
		linesPer = 1
	}
	available := m.height - 2 // search bar + spacer
	visible := available / linesPer
	if visible < 1 {
		visible = 1
	}

	offset := m.scrollOffset(visible)
	for i := offset; i < len(m.items) && i < offset+visible; i++ {
		b.WriteString(m.renderCard(m.items[i], i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// scrollOffset keeps the cursor inside the window, following the animated
// scroll position rather than the cursor itself.
func (m Model) scrollOffset(visible int) int {
	pos := int(math.Round(m.scrollPos))
	offset := pos - visible/2
	if offset > len(m.items)-visible {
		offset = len(m.items) - visible
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m Model) renderCard(e complaint.Enriched, selected bool) string {
	meta := e.Anger.Band.Metadata()
	star := "  "
	if m.starred[e.ID] {
		star = starStyle.Render("★ ")
	}

	angerBadge := lipgloss.NewStyle().Foreground(lipgloss.Color(meta.Color)).Bold(true).Render(meta.Label)
	name := nameStyle.Render(e.Customer.Name)
	cat := complaint.CategoryEmoji(e.Category) + " " + complaint.NormalizeCategory(e.Category)
	when := mutedStyle.Render(RelTimeShort(e.Timestamp, m.now()))

	left := fmt.Sprintf("%s%s  %s  %s · %s", star, angerBadge, name, cat, e.Location.StateAbbr)
	line1 := padBetween(left, when, m.width-2)

	if m.compact {
		if selected {
			return selectedCard.Width(m.width - 2).Render(line1)
		}
		return normalCard.Width(m.width - 2).Render(line1)
	}

	preview := truncate(e.Opener(), m.width-8)
	var kws []string
	for i, kw := range e.Keywords {
		tag := "[" + kw + "]"
		if selected && i < 9 {
			tag = fmt.Sprintf("[%d:%s]", i+1, kw)
		}
		if m.selectedKw[kw] {
			kws = append(kws, keywordOn.Render(tag))
		} else {
			kws = append(kws, keywordOff.Render(tag))
		}
	}
	line2 := "   " + mutedStyle.Render(truncate(preview, m.width-6))
	if len(kws) > 0 {
		line2 = padBetween(line2, strings.Join(kws, " "), m.width-2)
	}

	card := line1 + "\n" + line2
	if selected {
		return selectedCard.Width(m.width - 2).Render(card)
	}
	return normalCard.Width(m.width - 2).Render(card)
}

// RelTimeShort is the compact relative-time stamp used on cards.
func RelTimeShort(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// padBetween joins left and right with enough spaces to fill width.
// Falls back to a single space when the parts don't fit.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, max int) string {
	if max <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Styles

var (
	searchBar  = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(1, 2)
	starStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	keywordOn  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62"))
	keywordOff = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	selectedCard = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#FF8732")).
			Bold(false)
	normalCard = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("236"))
)
