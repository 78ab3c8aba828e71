package tui

import "github.com/charmbracelet/lipgloss"

// Color constants matching the styled renderer.
const (
	primaryColor = "#7C3AED" // Purple
	dimColor     = "#6B7280" // Gray
)

// Style variables for consistent viewer rendering.
var (
	// TitleStyle renders the viewer title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// ActiveTabStyle renders the selected track tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(primaryColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	// InactiveTabStyle renders unselected track tabs.
	InactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#9CA3AF")).
				Padding(0, 2)

	// StatusBarStyle provides styling for the key hint bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor)).
			Padding(0, 1)

	// BoxStyle frames the schedule viewport.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(0, 1)
)
