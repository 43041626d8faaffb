package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a Bubble Tea component whose Update returns its own type.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness drives a component in tests, collecting the commands it returns.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness wraps m.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current component state.
func (h *Harness[M]) Model() M {
	return h.model
}

// Send delivers msg and returns the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	if key == " " {
		return h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key (arrows, home, end...).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Resize sends a window size message.
func (h *Harness[M]) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Press sends a left button press at (x, y).
func (h *Harness[M]) Press(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// Move sends pointer motion to (x, y); dragging reports a held left button.
func (h *Harness[M]) Move(x, y int, dragging bool) tea.Cmd {
	button := tea.MouseButtonNone
	if dragging {
		button = tea.MouseButtonLeft
	}
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: button})
}

// Release sends a left button release at (x, y).
func (h *Harness[M]) Release(x, y int) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

// Commands returns the commands collected since creation or ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands forgets the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Drain runs cmd and feeds every resulting message back into the component
// until no command is left, keep rejects a message, or limit messages were
// delivered. Batches are expanded. It returns the number of messages sent.
func (h *Harness[M]) Drain(cmd tea.Cmd, limit int, keep func(tea.Msg) bool) int {
	queue := []tea.Cmd{cmd}
	sent := 0
	for len(queue) > 0 && sent < limit {
		next := queue[0]
		queue = queue[1:]
		msg := ExecuteCmd(next)
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		}
		if keep != nil && !keep(msg) {
			continue
		}
		sent++
		if c := h.Send(msg); c != nil {
			queue = append(queue, c)
		}
	}
	return sent
}

// ViewText returns the rendered view without escapes.
func (h *Harness[M]) ViewText() string {
	return StripANSI(h.model.View())
}

// ViewLines returns the plain view split into lines.
func (h *Harness[M]) ViewLines() []string {
	return SplitLines(h.ViewText())
}
