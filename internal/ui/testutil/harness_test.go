package testutil

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct{}

// counter counts key presses and ticks until it reaches stop.
type counter struct {
	keys  []string
	mouse []tea.MouseAction
	ticks int
	stop  int
	size  [2]int
}

func (c counter) Update(msg tea.Msg) (counter, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
	case tea.MouseMsg:
		c.mouse = append(c.mouse, msg.Action)
	case tea.WindowSizeMsg:
		c.size = [2]int{msg.Width, msg.Height}
	case tickMsg:
		c.ticks++
		if c.ticks < c.stop {
			return c, tea.Batch(nil, func() tea.Msg { return tickMsg{} })
		}
	}
	return c, nil
}

func (c counter) View() string {
	return fmt.Sprintf("\x1b[1mticks\x1b[0m %d\n\n", c.ticks)
}

func TestHarness_Input(t *testing.T) {
	h := NewHarness(counter{})
	h.SendKey("a")
	h.SendKey(" ")
	h.SendSpecialKey(tea.KeyLeft)
	h.Press(1, 1)
	h.Move(2, 1, true)
	h.Release(2, 1)
	h.Resize(80, 24)

	m := h.Model()
	if got := fmt.Sprint(m.keys); got != "[a   left]" {
		t.Errorf("keys = %s", got)
	}
	if len(m.mouse) != 3 || m.mouse[1] != tea.MouseActionMotion {
		t.Errorf("mouse = %v", m.mouse)
	}
	if m.size != [2]int{80, 24} {
		t.Errorf("size = %v", m.size)
	}
	if len(h.Commands()) != 0 {
		t.Errorf("no command expected, got %d", len(h.Commands()))
	}
}

func TestHarness_Drain(t *testing.T) {
	h := NewHarness(counter{stop: 3})
	sent := h.Drain(func() tea.Msg { return tickMsg{} }, 100, nil)

	if sent != 3 {
		t.Errorf("Drain() sent %d messages, want 3", sent)
	}
	if got := h.ViewLines(); len(got) != 1 || got[0] != "ticks 3" {
		t.Errorf("ViewLines() = %q", got)
	}
	h.ClearCommands()
	if len(h.Commands()) != 0 {
		t.Error("ClearCommands should drop collected commands")
	}
}

func TestHarness_DrainLimitAndFilter(t *testing.T) {
	h := NewHarness(counter{stop: 100})
	if sent := h.Drain(func() tea.Msg { return tickMsg{} }, 5, nil); sent != 5 {
		t.Errorf("Drain() with limit sent %d, want 5", sent)
	}

	h = NewHarness(counter{stop: 100})
	skip := func(tea.Msg) bool { return false }
	if sent := h.Drain(func() tea.Msg { return tickMsg{} }, 5, skip); sent != 0 {
		t.Errorf("Drain() with rejecting filter sent %d, want 0", sent)
	}
}

func TestExecuteCmd(t *testing.T) {
	if ExecuteCmd(nil) != nil {
		t.Error("nil command should produce nil")
	}
	cmd := tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
	if _, ok := ExecuteCmd(cmd).(tickMsg); !ok {
		t.Error("ExecuteCmd should return the tick message")
	}
}
