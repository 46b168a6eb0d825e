package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Transport
	TimeDisplay = lipgloss.NewStyle().
			Bold(true)

	Playing = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Paused = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	Marker = lipgloss.NewStyle().
		Foreground(Primary)

	MarkerFired = lipgloss.NewStyle().
			Foreground(Muted)

	MarkerActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	TrackLine = lipgloss.NewStyle().
			Foreground(Muted)

	// TOC styles
	TocSection = lipgloss.NewStyle().
			Bold(true)

	TocEntry = lipgloss.NewStyle()

	TocSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TocActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	TocTimestamp = lipgloss.NewStyle().
			Foreground(Muted)

	TocPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1).
			MarginRight(2)

	// TOC indicators
	TocExpanded  = "▼ "
	TocCollapsed = "▶ "
	TocLeaf      = "  "

	// Overlay popover
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Secondary).
		Padding(0, 2)

	OverlayTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Annotation detail
	DetailTitle = lipgloss.NewStyle().
			Bold(true)

	DetailBody = lipgloss.NewStyle().
			Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ColorFor maps an annotation color name to a terminal color, falling back
// to the primary accent for unknown names.
func ColorFor(name string) lipgloss.Color {
	switch name {
	case "red":
		return Error
	case "green":
		return Secondary
	case "yellow", "amber":
		return Warning
	case "gray", "grey":
		return Muted
	default:
		return Primary
	}
}
