// Package sidebar is the filter panel: category, anger band, state and
// keyword sections with counts over the full collection.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/abelbrown/warroom/internal/filter"
	"github.com/abelbrown/warroom/internal/tone"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section identifies a filter group.
type Section int

const (
	SectionCategory Section = iota
	SectionAnger
	SectionState
	SectionKeyword
)

var sectionTitles = map[Section]string{
	SectionCategory: "COMPLAINT TYPE",
	SectionAnger:    "ANGER LEVEL",
	SectionState:    "STATE",
	SectionKeyword:  "KEYWORDS",
}

// ToggleMsg reports that the operator toggled a filter value. Toggling an
// already-selected category/anger/state clears it; keywords are a multiset.
type ToggleMsg struct {
	Section Section
	Value   string
}

// ClearMsg asks for all filters to be cleared.
type ClearMsg struct{}

// CloseMsg asks the root model to close the sidebar.
type CloseMsg struct{}

// entry is one selectable row.
type entry struct {
	section Section
	value   string
	count   int
	total   int
}

// Model is the sidebar view.
type Model struct {
	entries  []entry
	headers  map[int]Section // row index -> section header shown before it
	cursor   int
	criteria filter.Criteria
	width    int
	height   int
	offset   int
}

// New creates a sidebar model.
func New() Model {
	return Model{}
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData rebuilds the section entries from the aggregate counts and
// remembers the active criteria for highlighting.
func (m *Model) SetData(categories, angers, states, keywords []filter.Count, total int, criteria filter.Criteria) {
	m.criteria = criteria
	m.entries = m.entries[:0]
	m.headers = make(map[int]Section)

	add := func(section Section, counts []filter.Count) {
		if len(counts) == 0 {
			return
		}
		m.headers[len(m.entries)] = section
		for _, c := range counts {
			m.entries = append(m.entries, entry{section: section, value: c.Label, count: c.N, total: total})
		}
	}

	add(SectionCategory, categories)
	add(SectionAnger, angers)
	add(SectionState, states)
	add(SectionKeyword, keywords)

	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles navigation and toggling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}
	case "tab", "l":
		m.cursor = m.nextSectionStart(1)
	case "shift+tab", "h":
		m.cursor = m.nextSectionStart(-1)
	case "enter", " ":
		if m.cursor < len(m.entries) {
			e := m.entries[m.cursor]
			return m, func() tea.Msg { return ToggleMsg{Section: e.section, Value: e.value} }
		}
	case "c":
		return m, func() tea.Msg { return ClearMsg{} }
	case "esc", "f", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}

	return m, nil
}

// nextSectionStart jumps the cursor to the first row of the adjacent
// section, wrapping around.
func (m Model) nextSectionStart(dir int) int {
	if len(m.entries) == 0 {
		return 0
	}
	current := m.entries[m.cursor].section
	i := m.cursor
	for range m.entries {
		i = (i + dir + len(m.entries)) % len(m.entries)
		if m.entries[i].section != current {
			break
		}
	}
	// Walk back to the section's first row.
	for i > 0 && m.entries[i-1].section == m.entries[i].section {
		i--
	}
	return i
}

// selected reports whether an entry is part of the active criteria.
func (m Model) selected(e entry) bool {
	switch e.section {
	case SectionCategory:
		return m.criteria.Category == e.value
	case SectionAnger:
		return string(m.criteria.Anger) == e.value
	case SectionState:
		return m.criteria.State == e.value
	case SectionKeyword:
		return m.criteria.HasKeyword(e.value)
	}
	return false
}

// View renders the sidebar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FILTERS"))
	b.WriteString("\n")

	// Build all lines, then window around the cursor.
	var lines []string
	cursorLine := 0
	for i, e := range m.entries {
		if section, ok := m.headers[i]; ok {
			lines = append(lines, sectionStyle.Render(sectionTitles[section]))
		}
		if i == m.cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, m.renderEntry(e, i == m.cursor))
	}

	available := m.height - 3
	offset := 0
	if cursorLine >= available {
		offset = cursorLine - available + 1
	}
	for i := offset; i < len(lines) && i-offset < available; i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter toggle · c clear · esc close"))
	return panelStyle.Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderEntry(e entry, cursor bool) string {
	label := e.value
	if e.section == SectionAnger {
		meta := tone.Band(e.value).Metadata()
		label = meta.Emoji + " " + e.value
	}

	pct := 0
	if e.total > 0 {
		pct = e.count * 100 / e.total
	}
	row := fmt.Sprintf("%-*s %4d  %s", m.width-16, truncate(label, m.width-16), e.count, miniBar(pct))

	style := rowStyle
	if m.selected(e) {
		style = selectedRow
	}
	if cursor {
		style = cursorRow
	}
	return style.Render(row)
}

// miniBar renders a 5-cell percentage bar.
func miniBar(pct int) string {
	filled := pct / 20
	if pct > 0 && filled == 0 {
		filled = 1
	}
	return barOn.Render(strings.Repeat("▰", filled)) + barOff.Render(strings.Repeat("▱", 5-filled))
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
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginTop(1)
	rowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selectedRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62"))
	cursorRow    = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("#FF8732"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	barOn        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8732"))
	barOff       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)
