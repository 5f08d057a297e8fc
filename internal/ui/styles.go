package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorDanger    = lipgloss.Color("1")   // Red (dimmer)
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
	ColorText      = lipgloss.Color("252") // Light text
	ColorDarkText  = lipgloss.Color("0")   // Black
)

// Styles groups the styles used to mount a page.
type Styles struct {
	Heading   lipgloss.Style
	Paragraph lipgloss.Style
	Match     lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	Box       lipgloss.Style
	Header    lipgloss.Style
}

// NewStyles returns the styles for a theme: "auto", "dark" or "light".
// Auto uses the dark palette; unknown themes fall back to it.
func NewStyles(theme string) Styles {
	primary, muted := ColorText, ColorMuted
	if theme == "light" {
		primary, muted = ColorDarkText, lipgloss.Color("240")
	}

	return Styles{
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Paragraph: lipgloss.NewStyle().
			Foreground(muted),
		Match: lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Error: lipgloss.NewStyle().
			Foreground(ColorDanger),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted),
	}
}

// Symbols
const (
	SymbolDivider = "─"
	SymbolBullet  = "•"
)
