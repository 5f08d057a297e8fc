// Package ui mounts buki document trees onto the terminal.
//
// Mount takes a page.DocumentNode and MountParams and produces the terminal
// output, and styles.go holds the Lipgloss theme. Mounting is pure (no side
// effects) and separated from the shell's state management.
package ui
