// Package app provides the Bubble Tea hosting shell for buki pages.
//
// It loads page content from a page.Source, asks a page.Renderer for the
// document tree on every display request (startup, resize, reload) and mounts
// the tree with the ui package. The shell also supports find-in-page, a help
// screen, and exporting the page to HTML and opening it in a browser.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View).
package app
