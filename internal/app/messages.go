package app

import (
	"github.com/henri123lemoine/buki/internal/page"
)

// Message types for the bubbletea app.

// ContentLoadedMsg is sent when page content has been loaded.
type ContentLoadedMsg struct {
	Content page.ContentDescriptor
	Err     error
}

// PageRenderedMsg is sent when the renderer has produced a tree.
// Gen is the content generation the renderer was built for.
type PageRenderedMsg struct {
	Gen  int
	Tree page.DocumentNode
	Err  error
}

// PageExportedMsg is sent when the page has been exported and opened.
type PageExportedMsg struct {
	Path string
	Err  error
}
