package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/deck"
)

// ErrorTimeout is how long an error stays in the status row.
const ErrorTimeout = 5 * time.Second

// LoadDeckCmd reads the deck at path in the background.
func LoadDeckCmd(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(path)
		return DeckLoadedMsg{Deck: d, Err: err}
	}
}

// ClearErrorCmd sends ClearErrorMsg after ErrorTimeout.
func ClearErrorCmd(version int) tea.Cmd {
	return tea.Tick(ErrorTimeout, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{Version: version}
	})
}

// watchCmd waits for the next deck change, or does nothing without a watcher.
func (m Model) watchCmd() tea.Cmd {
	if m.Watcher == nil {
		return nil
	}
	return m.Watcher.Next()
}
