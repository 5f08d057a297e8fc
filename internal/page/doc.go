// Package page provides the page renderer for buki.
//
// Render takes a ContentDescriptor and builds a DocumentNode tree: a centered
// full-height container holding one block with a heading and a paragraph.
// Rendering is pure and deterministic. How the tree is displayed is up to the
// hosting shell (see the ui and web packages).
package page
