package page

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(Welcome)

	first := r.Render()
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, r.Render()); diff != "" {
			t.Fatalf("Render() changed on call %d (-first +got):\n%s", i, diff)
		}
	}
}

func TestRenderWelcome(t *testing.T) {
	root := NewRenderer(Welcome).Render()

	want := DocumentNode{
		Kind: KindContainer,
		Layout: Layout{
			FullHeight: true,
			CenterX:    true,
			CenterY:    true,
			Padding:    8,
		},
		Children: []DocumentNode{{
			Kind: KindBlock,
			Children: []DocumentNode{
				{Kind: KindHeading, Text: "Bienvenido a Buki", Layout: Layout{Emphasis: true}},
				{Kind: KindParagraph, Text: "Aplicación inicializada con Next.js, TypeScript y Tailwind.", Layout: Layout{MarginTop: 4, Muted: true}},
			},
		}},
	}

	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderContentFidelity(t *testing.T) {
	tests := []ContentDescriptor{
		Welcome,
		{Title: "Hello", Body: "World"},
		{Title: "  spaced  ", Body: "line one\nline two"},
		{Title: "日本語", Body: "emoji 🌲 ok"},
	}

	for _, c := range tests {
		t.Run(c.Title, func(t *testing.T) {
			leaves := Leaves(Render(c))
			if len(leaves) != 2 {
				t.Fatalf("Expected 2 leaves, got %d", len(leaves))
			}
			if leaves[0].Kind != KindHeading || leaves[0].Text != c.Title {
				t.Errorf("Heading = %s %q, want heading %q", leaves[0].Kind, leaves[0].Text, c.Title)
			}
			if leaves[1].Kind != KindParagraph || leaves[1].Text != c.Body {
				t.Errorf("Paragraph = %s %q, want paragraph %q", leaves[1].Kind, leaves[1].Text, c.Body)
			}
		})
	}
}

func TestRenderStructure(t *testing.T) {
	root := Render(Welcome)
	if err := CheckStructure(root); err != nil {
		t.Fatalf("CheckStructure() error: %v", err)
	}

	kinds := make(map[NodeKind]int)
	Walk(root, func(n DocumentNode, _ int) bool {
		kinds[n.Kind]++
		return true
	})
	for kind, want := range map[NodeKind]int{KindContainer: 1, KindBlock: 1, KindHeading: 1, KindParagraph: 1} {
		if kinds[kind] != want {
			t.Errorf("Expected %d %s nodes, got %d", want, kind, kinds[kind])
		}
	}
}

func TestRenderNoSideEffects(t *testing.T) {
	before := Welcome
	r := NewRenderer(Welcome)

	tree := r.Render()
	// Mutating a returned tree must not leak into later renders.
	tree.Children[0].Children[0].Text = "changed"
	tree.Children[0].Children = nil

	if diff := cmp.Diff(Render(before), r.Render()); diff != "" {
		t.Errorf("Render() affected by earlier mutation (-want +got):\n%s", diff)
	}
	if Welcome != before {
		t.Errorf("Welcome changed: %+v", Welcome)
	}
	if r.Content() != before {
		t.Errorf("Renderer content changed: %+v", r.Content())
	}
}

func TestRenderConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRenderer(Welcome)
	want := r.Render()

	var wg sync.WaitGroup
	results := make([]DocumentNode, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Render()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("goroutine %d result differs (-want +got):\n%s", i, diff)
		}
	}
}

func TestCheckStructure(t *testing.T) {
	valid := func() DocumentNode { return Render(Welcome) }

	tests := []struct {
		name   string
		mutate func(*DocumentNode)
	}{
		{"root is not a container", func(n *DocumentNode) { n.Kind = KindBlock }},
		{"no block", func(n *DocumentNode) { n.Children = nil }},
		{"two blocks", func(n *DocumentNode) { n.Children = append(n.Children, n.Children[0]) }},
		{"child is not a block", func(n *DocumentNode) { n.Children[0].Kind = KindHeading }},
		{"missing paragraph", func(n *DocumentNode) { n.Children[0].Children = n.Children[0].Children[:1] }},
		{"leaves swapped", func(n *DocumentNode) {
			c := n.Children[0].Children
			n.Children[0].Children = []DocumentNode{c[1], c[0]}
		}},
		{"empty heading", func(n *DocumentNode) { n.Children[0].Children[0].Text = "" }},
		{"leaf with children", func(n *DocumentNode) {
			n.Children[0].Children[1].Children = []DocumentNode{{Kind: KindParagraph, Text: "x"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := valid()
			tt.mutate(&root)
			err := CheckStructure(root)
			if !errors.Is(err, ErrMalformedTree) {
				t.Errorf("CheckStructure() = %v, want ErrMalformedTree", err)
			}
		})
	}
}

func TestWalkPrune(t *testing.T) {
	var visited []NodeKind
	Walk(Render(Welcome), func(n DocumentNode, depth int) bool {
		visited = append(visited, n.Kind)
		return n.Kind != KindBlock
	})

	want := []NodeKind{KindContainer, KindBlock}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("Walk visited (-want +got):\n%s", diff)
	}
}

func TestNodeKindString(t *testing.T) {
	tests := map[NodeKind]string{
		KindContainer: "container",
		KindBlock:     "block",
		KindHeading:   "heading",
		KindParagraph: "paragraph",
		NodeKind(42):  "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
