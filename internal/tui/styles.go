package tui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// canvas colors (hex, as stored in cells)
const (
	accentHex = "#7C3AED"
	dimHex    = "#6B7280"
	borderHex = "#243141"
	gridHex   = "#2F3B4A"
	zoomHex   = "#FF0000"
	hoverHex  = "#FFA500"
)

// plotBg is what marker alpha is blended against.
var plotBg = color.NRGBA{R: 0x0B, G: 0x0F, B: 0x14, A: 0xFF}
