package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles of the carousel.
type Theme struct {
	// Accent colors, also the ends of the title and indicator gradients
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Slide borders
	Border       lipgloss.Color
	BorderActive lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base           lipgloss.Style
	Muted          lipgloss.Style
	Subtle         lipgloss.Style
	SlideTitle     lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Error          lipgloss.Style
	Warning        lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:       lipgloss.Color("#585858"),
	BorderActive: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:           base,
		Muted:          lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:         lipgloss.NewStyle().Foreground(t.FgSubtle),
		SlideTitle:     base.Bold(true),
		Button:         lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		ButtonDisabled: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Error:          lipgloss.NewStyle().Foreground(t.Error),
		Warning:        lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Slide returns the bordered box style of a slide, highlighted when active.
func (t *Theme) Slide(active bool) lipgloss.Style {
	border := t.Border
	if active {
		border = t.BorderActive
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
