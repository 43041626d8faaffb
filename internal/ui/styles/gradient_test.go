package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamp(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")

	assert.Nil(t, Ramp(0, from, to))
	assert.Equal(t, []lipgloss.Color{from}, Ramp(1, from, to))

	ramp := Ramp(5, from, to)
	require.Len(t, ramp, 5)
	assert.Equal(t, from, ramp[0])
	assert.Equal(t, to, ramp[4])
}

func TestRamp_NonHexFallsBackToGray(t *testing.T) {
	ramp := Ramp(2, lipgloss.Color("39"), lipgloss.Color("39"))
	assert.Equal(t, lipgloss.Color("#808080"), ramp[0])
}

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	out := ApplyBoldGradient("Déjà vu 👋", T().Primary, T().Secondary)
	assert.Equal(t, "Déjà vu 👋", ansi.Strip(out))
	assert.Empty(t, ApplyBoldGradient("", T().Primary, T().Secondary))
}
