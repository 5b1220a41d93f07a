package tour

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStepsNonEmpty(t *testing.T) {
	steps := Steps()
	if len(steps) < 5 {
		t.Fatalf("expected a full walkthrough, got %d steps", len(steps))
	}
	for i, s := range steps {
		if s.Title == "" || s.Body == "" {
			t.Errorf("step %d incomplete: %+v", i, s)
		}
	}
}

func TestAdvanceAndBack(t *testing.T) {
	m := New()

	m, _ = m.Update(key("n"))
	if m.Step() != 1 {
		t.Errorf("step = %d after n, expected 1", m.Step())
	}

	m, _ = m.Update(key("b"))
	if m.Step() != 0 {
		t.Errorf("step = %d after b, expected 0", m.Step())
	}

	// Back clamps at the first step.
	m, _ = m.Update(key("b"))
	if m.Step() != 0 {
		t.Errorf("step = %d, expected clamp at 0", m.Step())
	}
}

func TestFinishOnLastStep(t *testing.T) {
	m := New()

	var cmd tea.Cmd
	for i := 0; i < len(Steps())-1; i++ {
		m, cmd = m.Update(key("n"))
		if cmd != nil {
			t.Fatalf("unexpected finish at step %d", i)
		}
	}

	_, cmd = m.Update(key("n"))
	if cmd == nil {
		t.Fatal("expected finish command on last step")
	}
	if _, ok := cmd().(FinishedMsg); !ok {
		t.Errorf("expected FinishedMsg, got %T", cmd())
	}
}

func TestSkipFinishes(t *testing.T) {
	m := New()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected finish command on esc")
	}
	if _, ok := cmd().(FinishedMsg); !ok {
		t.Errorf("expected FinishedMsg on skip, got %T", cmd())
	}
}

func TestRestart(t *testing.T) {
	m := New()
	m, _ = m.Update(key("n"))
	m, _ = m.Update(key("n"))

	m.Restart()
	if m.Step() != 0 {
		t.Errorf("step = %d after restart, expected 0", m.Step())
	}
}

func TestViewShowsProgress(t *testing.T) {
	m := New()
	m.SetSize(80, 24)

	view := m.View()
	if !strings.Contains(view, "1 / ") {
		t.Errorf("expected progress indicator in view:\n%s", view)
	}
	if !strings.Contains(view, Steps()[0].Title) {
		t.Errorf("expected first step title in view:\n%s", view)
	}
}
