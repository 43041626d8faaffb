package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallback stands in for colors that are not #rrggbb.
var fallback = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Ramp returns size colors blended from one end to the other in HCL space.
func Ramp(size int, from, to lipgloss.Color) []lipgloss.Color {
	switch {
	case size <= 0:
		return nil
	case size == 1:
		return []lipgloss.Color{from}
	}

	a, b := parse(from), parse(to)
	ramp := make([]lipgloss.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		ramp[i] = lipgloss.Color(a.BlendHcl(b, t).Clamped().Hex())
	}
	return ramp
}

// ApplyBoldGradient renders bold text with one color per grapheme cluster,
// blended across the text.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	ramp := Ramp(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Bold(true).Render(cluster))
	}
	return b.String()
}

func parse(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallback
	}
	return col
}
