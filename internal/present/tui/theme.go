package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#2a54a5", Dark: "#73b8ff"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorText   = lipgloss.AdaptiveColor{Light: "#5c6166", Dark: "#bfbdb6"}
	colorSel    = lipgloss.AdaptiveColor{Light: "#e8e8e8", Dark: "#1a1f29"}
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	styleError = lipgloss.NewStyle().
			Foreground(colorFail).
			Bold(true)

	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleSelected = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorText)

	styleBar = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorDim).
			Padding(0, 1)
)
