package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused controls, active tab
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for disabled controls
)

// Styles contains shared style definitions used across screens.
var Styles = struct {
	// Title styles
	Title lipgloss.Style // Bold accent color - for screen headings

	// Controls
	Button         lipgloss.Style // Bordered button
	ButtonFocused  lipgloss.Style // Button with keyboard focus
	ButtonDisabled lipgloss.Style // Button that cannot be activated

	// Tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Text styles
	Selected lipgloss.Style // Focus marker (bold highlight color)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Status   lipgloss.Style // Status indicators (accent color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Error    lipgloss.Style // Error messages (danger color)
	Entry    lipgloss.Style // List entries
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	ButtonFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	ButtonDisabled: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Foreground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Entry: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
}

// buttonStyle picks the style for a button given its focus and enablement.
func buttonStyle(focused, enabled bool) lipgloss.Style {
	switch {
	case !enabled:
		return Styles.ButtonDisabled
	case focused:
		return Styles.ButtonFocused
	default:
		return Styles.Button
	}
}
