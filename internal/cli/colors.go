package cli

import "github.com/charmbracelet/lipgloss"

// Radio dial palette shared by the banner, messages and help.
var (
	DialAmber = lipgloss.Color("#FFB000") // Tuning scale
	DialGreen = lipgloss.Color("#39FF14") // Signal lock
	DialRed   = lipgloss.Color("#FF3B30") // Overload
	DialCyan  = lipgloss.Color("#00C8FF") // Carrier

	PanelGray = lipgloss.Color("#8A8A8A") // Subtle text
)
