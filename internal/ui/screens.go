package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// RenderHelp renders the help screen.
func RenderHelp(bindings []HelpBinding, s Styles, width, height int) string {
	var b strings.Builder
	contentWidth := boxContentWidth(width)

	b.WriteString(s.Header.Render("HELP") + "\n")
	b.WriteString(s.Help.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	for _, binding := range bindings {
		// Pad keys to 10 chars for alignment
		keys := binding.Keys
		if len(keys) < 10 {
			keys = keys + strings.Repeat(" ", 10-len(keys))
		}
		b.WriteString(s.Help.Render("  "+keys) + " " + binding.Desc + "\n")
	}

	b.WriteString("\n" + s.Help.Render("Press any key to close"))

	return place(wrapInBox(b.String(), s, width), width, height)
}

// RenderError renders an error screen in place of the page. bindings are the
// keys still useful while the page is unavailable.
func RenderError(err error, bindings []HelpBinding, s Styles, width, height int) string {
	var b strings.Builder
	contentWidth := boxContentWidth(width)

	b.WriteString(s.Header.Render("PAGE UNAVAILABLE") + "\n")
	b.WriteString(s.Help.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")
	b.WriteString(s.Error.Width(contentWidth).Render("Error: "+err.Error()) + "\n\n")
	b.WriteString(s.Help.Render(keyLine(bindings)))

	return place(wrapInBox(b.String(), s, width), width, height)
}

// RenderLoading renders the placeholder shown before the first render.
func RenderLoading(s Styles, width, height int) string {
	return place(s.Help.Render("Loading page..."), width, height)
}

// HelpLine renders the one-line key summary shown under the page.
func HelpLine(bindings []HelpBinding, s Styles, width int) string {
	keys := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.Keys)
	}
	return s.Help.Render(compactHelp(keyLine(bindings), strings.Join(keys, " "), width))
}

// keyLine joins bindings as "key desc" pairs.
func keyLine(bindings []HelpBinding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Keys+" "+b.Desc)
	}
	return strings.Join(parts, " "+SymbolBullet+" ")
}

// FindLine renders the find prompt with a match count.
func FindLine(input string, matches int, s Styles) string {
	count := "no matches"
	switch {
	case matches == 1:
		count = "1 match"
	case matches > 1:
		count = fmt.Sprintf("%d matches", matches)
	}
	return s.Header.Render("FIND") + "  " + input + "  " + s.Help.Render(count)
}

func place(content string, width, height int) string {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func boxContentWidth(width int) int {
	w := width - 8
	if w > 60 {
		w = 60
	}
	if w < MinWidth-8 {
		w = MinWidth - 8
	}
	return w
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, s Styles, width int) string {
	return s.Box.Width(boxContentWidth(width) + 4).Render(content)
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 60 {
		return full
	}
	return compact
}
