// Package debug provides debug logging functionality for buki.
//
// When enabled via the --debug flag, it writes structured JSON lines about
// content loading, renders, mounts and exports to help diagnose issues.
package debug
