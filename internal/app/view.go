package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.ShowHelp {
		return m.renderHelp()
	}
	return m.Carousel.View()
}

func (m Model) renderHelp() string {
	t := styles.T()
	h := m.Help
	h.ShowAll = true
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderActive).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			t.S().SlideTitle.Render("Keys"),
			"",
			h.View(m.HelpKeys),
		))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
