// Package keymap defines key bindings and action dispatch for the carousel.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionReload Action = "reload"

	// Navigation actions
	ActionPrev     Action = "prev"
	ActionNext     Action = "next"
	ActionFirst    Action = "first"
	ActionLast     Action = "last"
	ActionGoToStop Action = "go_to_stop" // 1-9, the digit picks the stop

	// Autoplay actions
	ActionToggleAutoplay Action = "toggle_autoplay"
)
