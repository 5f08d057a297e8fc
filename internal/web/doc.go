// Package web mounts buki document trees as static HTML.
//
// Document converts a page.DocumentNode into an HTML node tree using
// golang.org/x/net/html, Write serializes it, and Export writes index.html
// into an output directory under a file lock.
package web
