// Package analytics renders the keyword-frequency bar chart.
package analytics

import (
	"fmt"
	"strings"

	"github.com/abelbrown/warroom/internal/filter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CloseMsg asks the root model to return to the dashboard.
type CloseMsg struct{}

// barColors cycle across the chart rows.
var barColors = []lipgloss.Color{
	"#007AFF", "#FF8732", "#9333EA", "#34C759",
	"#FF3B30", "#EC4899", "#6366F1", "#14B8A6",
}

// Model is the keyword analytics view.
type Model struct {
	counts []filter.Count
	total  int // complaints in the collection, for percentages
	width  int
	height int
	offset int
}

// New creates an analytics model.
func New() Model {
	return Model{}
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the chart data.
func (m *Model) SetData(counts []filter.Count, total int) {
	m.counts = counts
	m.total = total
	m.offset = 0
}

// Update handles scrolling and close keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.offset < len(m.counts)-1 {
			m.offset++
		}
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
	case "esc", "a", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders one horizontal bar per keyword, scaled to the most frequent
// keyword.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📈 KEYWORD ANALYTICS"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("top %d keywords by frequency", len(m.counts))))
	b.WriteString("\n\n")

	if len(m.counts) == 0 {
		b.WriteString(subtitleStyle.Render("No keywords in the dataset."))
		return b.String()
	}

	maxCount := m.counts[0].N
	for _, c := range m.counts {
		if c.N > maxCount {
			maxCount = c.N
		}
	}

	labelWidth := 0
	for _, c := range m.counts {
		if len(c.Label) > labelWidth {
			labelWidth = len(c.Label)
		}
	}
	if labelWidth > 24 {
		labelWidth = 24
	}

	barSpace := m.width - labelWidth - 16
	if barSpace < 10 {
		barSpace = 10
	}

	rows := m.height - 4
	for i := m.offset; i < len(m.counts) && i-m.offset < rows; i++ {
		c := m.counts[i]
		barLen := c.N * barSpace / maxCount
		if barLen == 0 {
			barLen = 1
		}
		color := barColors[i%len(barColors)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))

		pct := ""
		if m.total > 0 {
			pct = fmt.Sprintf("%.1f%%", float64(c.N)*100/float64(m.total))
		}
		b.WriteString(fmt.Sprintf("%*s %s %d %s\n",
			labelWidth, truncate(c.Label, labelWidth), bar, c.N, pctStyle.Render(pct)))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("j/k scroll · esc back to dashboard"))
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// Styles

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8732"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pctStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
