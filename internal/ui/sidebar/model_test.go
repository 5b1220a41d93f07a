package sidebar

import (
	"strings"
	"testing"

	"github.com/abelbrown/warroom/internal/filter"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	m := New()
	m.SetSize(36, 30)
	m.SetData(
		[]filter.Count{{Label: "Wrong Orders", N: 5}, {Label: "Cold Food", N: 3}},
		[]filter.Count{{Label: "furious", N: 2}, {Label: "angry", N: 3}, {Label: "annoyed", N: 2}, {Label: "calm", N: 1}},
		[]filter.Count{{Label: "TX", N: 4}, {Label: "CA", N: 2}},
		[]filter.Count{{Label: "refund", N: 6}},
		8,
		filter.Criteria{},
	)
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleEmitsSelection(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(ToggleMsg)
	if !ok {
		t.Fatalf("expected ToggleMsg, got %T", cmd())
	}
	if msg.Section != SectionCategory || msg.Value != "Wrong Orders" {
		t.Errorf("unexpected toggle: %+v", msg)
	}
}

func TestNavigationAcrossSections(t *testing.T) {
	m := newTestModel()

	// Jump to the next section start: first anger entry.
	m, _ = m.Update(key("l"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd().(ToggleMsg)
	if msg.Section != SectionAnger || msg.Value != "furious" {
		t.Errorf("expected first anger entry, got %+v", msg)
	}

	// And back.
	m, _ = m.Update(key("h"))
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg = cmd().(ToggleMsg)
	if msg.Section != SectionCategory {
		t.Errorf("expected category section, got %+v", msg)
	}
}

func TestClearAndClose(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(key("c"))
	if _, ok := cmd().(ClearMsg); !ok {
		t.Errorf("expected ClearMsg, got %T", cmd())
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(CloseMsg); !ok {
		t.Errorf("expected CloseMsg, got %T", cmd())
	}
}

func TestCursorClampsOnShrinkingData(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(key("G"))

	m.SetData(
		[]filter.Count{{Label: "Wrong Orders", N: 5}},
		nil, nil, nil, 5, filter.Criteria{},
	)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a toggle after clamp")
	}
	msg := cmd().(ToggleMsg)
	if msg.Value != "Wrong Orders" {
		t.Errorf("expected clamped cursor on remaining entry, got %+v", msg)
	}
}

func TestViewMarksActiveFilters(t *testing.T) {
	m := New()
	m.SetSize(36, 30)
	m.SetData(
		[]filter.Count{{Label: "Wrong Orders", N: 5}},
		nil,
		[]filter.Count{{Label: "TX", N: 4}},
		nil,
		5,
		filter.Criteria{State: "TX"},
	)

	view := m.View()
	if !strings.Contains(view, "TX") {
		t.Fatalf("expected TX entry in view:\n%s", view)
	}
	if !strings.Contains(view, "Wrong Orders") {
		t.Errorf("expected category entry in view:\n%s", view)
	}
}
