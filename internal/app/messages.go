package app

import "github.com/llehouerou/carousel/internal/deck"

// DeckLoadedMsg carries the result of reloading the deck from disk.
type DeckLoadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// ClearErrorMsg hides the error banner. Version drops stale clears.
type ClearErrorMsg struct {
	Version int
}
