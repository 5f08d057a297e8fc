package web

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/henri123lemoine/buki/internal/config"
	"github.com/henri123lemoine/buki/internal/page"
)

// Options controls the generated document.
type Options struct {
	// Document language (html lang attribute)
	Lang string

	// Inline the embedded stylesheet in <head>
	InlineCSS bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Lang:      "es",
		InlineCSS: true,
	}
}

// OptionsFromConfig starts from DefaultOptions and applies the export config.
func OptionsFromConfig(cfg config.ExportConfig) Options {
	opts := DefaultOptions()
	if cfg.Lang != "" {
		opts.Lang = cfg.Lang
	}
	opts.InlineCSS = cfg.InlineCSS
	return opts
}

// spacingScale lists the spacing steps assets/page.css defines for p-* and mt-*.
var spacingScale = []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 16}

// spacingStep returns the largest defined step not above units.
func spacingStep(units int) int {
	step := spacingScale[0]
	for _, s := range spacingScale {
		if s > units {
			break
		}
		step = s
	}
	return step
}

// Document builds a complete HTML document for root.
func Document(root page.DocumentNode, opts Options) (*html.Node, error) {
	if err := page.CheckStructure(root); err != nil {
		return nil, err
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	if opts.Lang != "" {
		htmlEl.Attr = append(htmlEl.Attr, html.Attribute{Key: "lang", Val: opts.Lang})
	}
	doc.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(withAttrs(element(atom.Meta), "charset", "utf-8"))
	head.AppendChild(withAttrs(element(atom.Meta), "name", "viewport", "content", "width=device-width, initial-scale=1"))
	title := element(atom.Title)
	title.AppendChild(textNode(documentTitle(root)))
	head.AppendChild(title)
	if opts.InlineCSS {
		style := element(atom.Style)
		style.AppendChild(textNode(Stylesheet))
		head.AppendChild(style)
	}
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(Element(root))
	htmlEl.AppendChild(body)

	return doc, nil
}

// Element converts a document node and its children into HTML elements.
func Element(n page.DocumentNode) *html.Node {
	el := element(tagFor(n.Kind))
	if classes := Classes(n.Layout); classes != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: classes})
	}
	if n.Text != "" {
		el.AppendChild(textNode(n.Text))
	}
	for _, child := range n.Children {
		el.AppendChild(Element(child))
	}
	return el
}

// Write renders root as an HTML document to w.
func Write(w io.Writer, root page.DocumentNode, opts Options) error {
	doc, err := Document(root, opts)
	if err != nil {
		return err
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Classes maps layout hints to the utility classes in Stylesheet.
func Classes(l page.Layout) string {
	var classes []string
	if l.FullHeight {
		classes = append(classes, "min-h-screen")
	}
	if l.CenterX || l.CenterY {
		classes = append(classes, "flex")
	}
	if l.CenterY {
		classes = append(classes, "items-center")
	}
	if l.CenterX {
		classes = append(classes, "justify-center")
	}
	if l.Padding > 0 {
		classes = append(classes, fmt.Sprintf("p-%d", spacingStep(l.Padding)))
	}
	if l.MarginTop > 0 {
		classes = append(classes, fmt.Sprintf("mt-%d", spacingStep(l.MarginTop)))
	}
	if l.Emphasis {
		classes = append(classes, "text-4xl", "font-bold")
	}
	if l.Muted {
		classes = append(classes, "text-gray-600")
	}
	return strings.Join(classes, " ")
}

func tagFor(k page.NodeKind) atom.Atom {
	switch k {
	case page.KindContainer:
		return atom.Main
	case page.KindHeading:
		return atom.H1
	case page.KindParagraph:
		return atom.P
	default:
		return atom.Div
	}
}

func documentTitle(root page.DocumentNode) string {
	for _, leaf := range page.Leaves(root) {
		if leaf.Kind == page.KindHeading {
			return leaf.Text
		}
	}
	return ""
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func withAttrs(n *html.Node, kv ...string) *html.Node {
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
