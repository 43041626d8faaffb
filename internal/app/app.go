// Package app is the root bubbletea model: it owns the carousel, the help
// overlay and deck reloading.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/deck"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/slider"
	"github.com/llehouerou/carousel/internal/ui/carousel"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Model is the root application model containing all state.
type Model struct {
	Carousel carousel.Model
	Help     help.Model
	HelpKeys keymap.Help
	ShowHelp bool
	Keys     *keymap.Resolver

	DeckPath string
	Watcher  *deck.Watcher // nil when watching is disabled
	Log      *slog.Logger

	ErrorMsg     string
	errorVersion int

	Width, Height int
}

// New creates the root model. watcher may be nil.
func New(cfg slider.Config, d *deck.Deck, deckPath string, watcher *deck.Watcher, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := help.New()
	t := styles.T()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(t.Primary)
	h.Styles.FullKey = h.Styles.FullKey.Foreground(t.Primary)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(t.FgMuted)
	h.Styles.FullDesc = h.Styles.FullDesc.Foreground(t.FgMuted)

	m := Model{
		Carousel: carousel.New(cfg, d, log),
		Help:     h,
		HelpKeys: keymap.NewHelp(keymap.Bindings),
		Keys:     keymap.NewResolver(keymap.Bindings),
		DeckPath: deckPath,
		Watcher:  watcher,
		Log:      log,
	}
	m.refreshStatus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Carousel.Init(), m.watchCmd())
}

// setError shows msg in the status row until ErrorTimeout passes.
func (m *Model) setError(msg string) tea.Cmd {
	m.ErrorMsg = msg
	m.errorVersion++
	return ClearErrorCmd(m.errorVersion)
}
