package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorBgHighlight = lipgloss.Color("#2C313C")

	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgBright  = lipgloss.Color("#FFFFFF")
	ColorFgComment = lipgloss.Color("#5C6370")

	ColorRed     = lipgloss.Color("#E06C75")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")

	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	// Header box; width is set per view
	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Align(lipgloss.Center)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	// List entries
	NumberStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	ProjectStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	SelectedStyle = lipgloss.NewStyle().
			Background(ColorMagenta).
			Foreground(ColorFgBright).
			Bold(true).
			Padding(0, 1)

	// Search input
	InputStyle = lipgloss.NewStyle().
			Background(ColorBgHighlight).
			Foreground(ColorFgBright)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorBlue)

	// Help footer
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	DangerStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
