package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Prev      string
	Next      string
	Up        string
	Down      string
	DotActive string
	Dot       string
	Play      string
	Pause     string
	Deck      string
}

var (
	nerdIcons = Icons{
		Prev:      "", // nf-fa-chevron_left
		Next:      "", // nf-fa-chevron_right
		Up:        "", // nf-fa-chevron_up
		Down:      "", // nf-fa-chevron_down
		DotActive: "", // nf-fa-circle
		Dot:       "", // nf-fa-circle_o
		Play:      "", // nf-fa-play
		Pause:     "", // nf-fa-pause
		Deck:      "󰐨 ",     // nf-md-presentation
	}

	unicodeIcons = Icons{
		Prev:      "‹",
		Next:      "›",
		Up:        "▲",
		Down:      "▼",
		DotActive: "●",
		Dot:       "○",
		Play:      "▶",
		Pause:     "⏸",
		Deck:      "",
	}

	noneIcons = Icons{
		Prev:      "<",
		Next:      ">",
		Up:        "^",
		Down:      "v",
		DotActive: "*",
		Dot:       ".",
		Play:      ">",
		Pause:     "=",
		Deck:      "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Prev returns the backward button glyph for a horizontal or vertical
// carousel.
func Prev(vertical bool) string {
	if vertical {
		return current.Up
	}
	return current.Prev
}

// Next returns the forward button glyph.
func Next(vertical bool) string {
	if vertical {
		return current.Down
	}
	return current.Next
}

// Dot returns the indicator glyph.
func Dot(active bool) string {
	if active {
		return current.DotActive
	}
	return current.Dot
}

// Autoplay returns the glyph shown for a running or paused autoplay.
func Autoplay(paused bool) string {
	if paused {
		return current.Pause
	}
	return current.Play
}

// FormatDeck formats a deck title with the appropriate icon.
func FormatDeck(title string) string {
	return current.Deck + title
}
