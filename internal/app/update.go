package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refreshStatus()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Help.Width = msg.Width
		return m.forward(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.ShowHelp {
			return nil
		}
		return m.forward(msg)
	case deck.ChangedMsg:
		m.Log.Info("deck changed on disk", "path", msg.Path)
		return tea.Batch(LoadDeckCmd(m.DeckPath), m.watchCmd())
	case DeckLoadedMsg:
		return m.handleDeckLoaded(msg)
	case ClearErrorMsg:
		if msg.Version == m.errorVersion {
			m.ErrorMsg = ""
		}
		return nil
	}
	return m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := m.Keys.ResolveMsg(msg)
	if action == keymap.ActionQuit {
		return m.quit()
	}

	// The overlay swallows everything but its own toggles.
	if m.ShowHelp {
		if action == keymap.ActionHelp || msg.Type == tea.KeyEsc {
			m.ShowHelp = false
		}
		return nil
	}

	switch action {
	case keymap.ActionHelp:
		m.ShowHelp = true
		// The overlay eats the release that would end a drag.
		return m.Carousel.CancelGesture()
	case keymap.ActionReload:
		return LoadDeckCmd(m.DeckPath)
	}
	return m.forward(msg)
}

func (m *Model) quit() tea.Cmd {
	m.Carousel.Close()
	if m.Watcher != nil {
		if err := m.Watcher.Close(); err != nil {
			m.Log.Warn("close deck watcher", "err", err)
		}
	}
	return tea.Quit
}

func (m *Model) handleDeckLoaded(msg DeckLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.Log.Warn("reload deck", "path", m.DeckPath, "err", msg.Err)
		return m.setError(errmsg.FormatWith(errmsg.OpDeckReload, m.DeckPath, msg.Err))
	}
	m.ErrorMsg = ""
	m.Log.Info("deck reloaded", "path", m.DeckPath, "slides", msg.Deck.Len())
	return m.Carousel.SetDeck(msg.Deck)
}

// refreshStatus rebuilds the status row text.
func (m *Model) refreshStatus() {
	if m.ErrorMsg != "" {
		m.Carousel.SetStatus(m.ErrorMsg)
		return
	}

	var parts []string
	if s := m.Carousel.Slider(); s != nil && !s.Inert() && s.Count() > 0 {
		parts = append(parts, humanize.Ordinal(s.Current()+1)+" of "+humanize.Comma(int64(s.Count())))
		if s.AutoplayRunning() {
			if s.AutoplayPaused() {
				parts = append(parts, "autoplay paused")
			} else {
				parts = append(parts, "autoplay every "+s.AutoplayInterval().String())
			}
		}
	}
	if m.Watcher != nil {
		parts = append(parts, "watching")
	}
	parts = append(parts, "? help")
	m.Carousel.SetStatus(strings.Join(parts, " · "))
}
