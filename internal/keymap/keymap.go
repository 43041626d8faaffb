package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigation", "autoplay"
}

// Bindings contains every key binding of the carousel.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionReload, []string{"r"}, "Reload deck", "global"},

	// Navigation
	{ActionPrev, []string{"left", "h", "up", "k"}, "Previous slide", "navigation"},
	{ActionNext, []string{"right", "l", "down", "j"}, "Next slide", "navigation"},
	{ActionFirst, []string{"home", "g"}, "First slide", "navigation"},
	{ActionLast, []string{"end", "G"}, "Last slide", "navigation"},
	{ActionGoToStop, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Go to stop", "navigation"},

	// Autoplay
	{ActionToggleAutoplay, []string{" "}, "Pause/resume autoplay", "autoplay"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help converts bindings into bubbles key bindings for the help view.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help key map from bindings, grouped by context in
// order of first appearance.
func NewHelp(bindings []Binding) Help {
	var h Help
	groups := map[string]int{}
	for _, b := range bindings {
		kb := key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(helpKeys(b), b.Description),
		)
		idx, ok := groups[b.Context]
		if !ok {
			idx = len(h.full)
			groups[b.Context] = idx
			h.full = append(h.full, nil)
		}
		h.full[idx] = append(h.full[idx], kb)
		if b.Action == ActionPrev || b.Action == ActionNext ||
			b.Action == ActionQuit || b.Action == ActionHelp {
			h.short = append(h.short, kb)
		}
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	return h.short
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	return h.full
}

// helpKeys renders the keys of b for display.
func helpKeys(b Binding) string {
	if b.Action == ActionGoToStop {
		return "1-9"
	}
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys = append(keys, k)
	}
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, "/")
}
