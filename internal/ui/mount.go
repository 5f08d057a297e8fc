package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/buki/internal/page"
)

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// MountParams contains all parameters needed for mounting a tree.
type MountParams struct {
	Width  int
	Height int
	Styles Styles

	// Leaf ordinals (document order) to render with Styles.Match
	Highlight []int
}

// Mount renders a document tree onto a Width x Height terminal surface.
func Mount(root page.DocumentNode, p MountParams) string {
	if p.Width < MinWidth {
		p.Width = MinWidth
	}
	if p.Height < MinHeight {
		p.Height = MinHeight
	}

	m := mounter{params: p, avail: p.Width}
	return m.node(root)
}

type mounter struct {
	params MountParams
	leaf   int

	// Columns left for text inside the enclosing containers
	avail int
}

func (m *mounter) node(n page.DocumentNode) string {
	switch n.Kind {
	case page.KindContainer:
		return m.container(n)
	case page.KindBlock:
		return m.block(n)
	default:
		return m.text(n)
	}
}

// container pads its children and places them on the surface.
func (m *mounter) container(n page.DocumentNode) string {
	rows, cols := spacing(n.Layout.Padding)
	outer := m.avail
	m.avail = max(1, m.avail-2*cols)
	inner := m.children(n)
	m.avail = outer

	padded := lipgloss.NewStyle().Padding(rows, cols).Render(inner)

	width := lipgloss.Width(padded)
	height := lipgloss.Height(padded)
	if n.Layout.CenterX {
		width = m.params.Width
	}
	if n.Layout.FullHeight || n.Layout.CenterY {
		height = m.params.Height
	}

	return lipgloss.Place(width, height, hpos(n.Layout), vpos(n.Layout), padded)
}

func (m *mounter) block(n page.DocumentNode) string {
	return m.children(n)
}

func (m *mounter) children(n page.DocumentNode) string {
	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		parts = append(parts, m.node(child))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// text renders a heading or paragraph leaf.
func (m *mounter) text(n page.DocumentNode) string {
	ordinal := m.leaf
	m.leaf++

	style := m.params.Styles.Paragraph
	if n.Kind == page.KindHeading || n.Layout.Emphasis {
		style = m.params.Styles.Heading
	}
	if m.highlighted(ordinal) {
		style = m.params.Styles.Match
	}

	// Wrap long text so the page keeps its padding.
	if lipgloss.Width(n.Text) > m.avail {
		style = style.Width(m.avail)
	}

	rendered := style.Render(n.Text)
	if rows, _ := spacing(n.Layout.MarginTop); rows > 0 {
		rendered = strings.Repeat("\n", rows) + rendered
	}
	return rendered
}

func (m *mounter) highlighted(ordinal int) bool {
	for _, i := range m.params.Highlight {
		if i == ordinal {
			return true
		}
	}
	return false
}

// spacing converts layout units to terminal rows and columns. A cell is about
// twice as tall as it is wide, so four units make a row and two a column.
func spacing(units int) (rows, cols int) {
	if units <= 0 {
		return 0, 0
	}
	rows = units / 4
	if rows == 0 {
		rows = 1
	}
	cols = units / 2
	return rows, cols
}

func hpos(l page.Layout) lipgloss.Position {
	if l.CenterX {
		return lipgloss.Center
	}
	return lipgloss.Left
}

func vpos(l page.Layout) lipgloss.Position {
	if l.CenterY {
		return lipgloss.Center
	}
	return lipgloss.Top
}
