package page

// NodeKind identifies the role of a node in the document tree.
type NodeKind int

const (
	KindContainer NodeKind = iota
	KindBlock
	KindHeading
	KindParagraph
)

func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindBlock:
		return "block"
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Layout holds presentation hints for a node.
// Spacing values are in units of a 4px scale.
type Layout struct {
	// Fill the whole viewport height
	FullHeight bool

	// Center contents horizontally / vertically
	CenterX bool
	CenterY bool

	// Uniform padding around contents
	Padding int

	// Space above the node
	MarginTop int

	// Large bold text
	Emphasis bool

	// Secondary text color
	Muted bool
}

// DocumentNode is a node in a display tree.
type DocumentNode struct {
	Kind     NodeKind
	Text     string
	Layout   Layout
	Children []DocumentNode
}

// IsLeaf reports whether the node has no children.
func (n DocumentNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Walk visits the tree in pre-order. Returning false from fn skips the
// node's children.
func Walk(n DocumentNode, fn func(n DocumentNode, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n DocumentNode, depth int, fn func(DocumentNode, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Leaves returns the leaf nodes in document order.
func Leaves(root DocumentNode) []DocumentNode {
	var leaves []DocumentNode
	Walk(root, func(n DocumentNode, _ int) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}
