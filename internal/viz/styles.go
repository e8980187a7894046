package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/letterdrop/internal/ease"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)

	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(38)

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	phaseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	// Neon glow ramp, dimmest to brightest. Index selected by the
	// harmonica spring position.
	glowRamp = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("207")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
	}
)

// glowIndex maps the spring position to a ramp entry. Smoothstep keeps
// the ramp lingering at the ends instead of flickering across the
// middle colors, and the spring may overshoot [0, 1] slightly.
func glowIndex(intensity float64) int {
	i := int(ease.Smoothstep(intensity) * float64(len(glowRamp)-1))
	if i >= len(glowRamp) {
		i = len(glowRamp) - 1
	}
	return i
}

func glowStyle(intensity float64) lipgloss.Style {
	return glowRamp[glowIndex(intensity)]
}
