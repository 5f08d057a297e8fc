package page

import "fmt"

// Spacing used by the welcome layout.
const (
	ContainerPadding = 8
	ParagraphMargin  = 4
)

// Renderer owns a ContentDescriptor and renders it on request.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	content ContentDescriptor
}

// NewRenderer creates a Renderer for the given content.
func NewRenderer(c ContentDescriptor) *Renderer {
	return &Renderer{content: c}
}

// Content returns the descriptor the renderer was built with.
func (r *Renderer) Content() ContentDescriptor {
	return r.content
}

// Render is the entry point for hosting shells.
func (r *Renderer) Render() DocumentNode {
	return Render(r.content)
}

// Render builds the document tree for c. Each call allocates a fresh tree.
func Render(c ContentDescriptor) DocumentNode {
	heading := DocumentNode{
		Kind:   KindHeading,
		Text:   c.Title,
		Layout: Layout{Emphasis: true},
	}
	paragraph := DocumentNode{
		Kind:   KindParagraph,
		Text:   c.Body,
		Layout: Layout{MarginTop: ParagraphMargin, Muted: true},
	}
	block := DocumentNode{
		Kind:     KindBlock,
		Children: []DocumentNode{heading, paragraph},
	}
	return DocumentNode{
		Kind: KindContainer,
		Layout: Layout{
			FullHeight: true,
			CenterX:    true,
			CenterY:    true,
			Padding:    ContainerPadding,
		},
		Children: []DocumentNode{block},
	}
}

// CheckStructure verifies that root is a container holding exactly one block
// with a heading followed by a paragraph.
func CheckStructure(root DocumentNode) error {
	if root.Kind != KindContainer {
		return fmt.Errorf("%w: root is %s, want container", ErrMalformedTree, root.Kind)
	}
	if len(root.Children) != 1 {
		return fmt.Errorf("%w: container has %d children, want 1", ErrMalformedTree, len(root.Children))
	}
	block := root.Children[0]
	if block.Kind != KindBlock {
		return fmt.Errorf("%w: container child is %s, want block", ErrMalformedTree, block.Kind)
	}
	want := []NodeKind{KindHeading, KindParagraph}
	if len(block.Children) != len(want) {
		return fmt.Errorf("%w: block has %d children, want %d", ErrMalformedTree, len(block.Children), len(want))
	}
	for i, leaf := range block.Children {
		if leaf.Kind != want[i] {
			return fmt.Errorf("%w: block child %d is %s, want %s", ErrMalformedTree, i, leaf.Kind, want[i])
		}
		if !leaf.IsLeaf() {
			return fmt.Errorf("%w: %s has children", ErrMalformedTree, leaf.Kind)
		}
		if leaf.Text == "" {
			return fmt.Errorf("%w: %s has no text", ErrMalformedTree, leaf.Kind)
		}
	}
	return nil
}
