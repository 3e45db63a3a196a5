package tui

import "github.com/charmbracelet/lipgloss"

// ─── Color Palette (Catppuccin Mocha) ───────────────────────────────────────

var (
	colorSurface1 = lipgloss.Color("#45475A")
	colorText     = lipgloss.Color("#CDD6F4")
	colorSubtext  = lipgloss.Color("#A6ADC8")
	colorDim      = lipgloss.Color("#585B70")
	colorAccent   = lipgloss.Color("#CBA6F7")
	colorSapphire = lipgloss.Color("#74C7EC")
	colorLavender = lipgloss.Color("#B4BEFE")
	colorRed      = lipgloss.Color("#F38BA8")
)

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSubtext)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSapphire).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)
)
