// Package exec handles launching external viewers for exported pages.
package exec

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/henri123lemoine/buki/internal/debug"
)

// starter starts a command without waiting for it. Tests replace it.
var starter = func(cmd *exec.Cmd) error {
	return cmd.Start()
}

// Open opens the file at path with command, or with the platform's default
// viewer when command is empty. The viewer is not waited for.
func Open(command, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var cmd *exec.Cmd
	if command == "" {
		cmd = DefaultOpenCommand(runtime.GOOS, abs)
	} else {
		cmd = exec.Command("sh", "-c", expandTemplate(command, abs))
	}

	// Detach from the terminal the shell is drawing on.
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	debug.Log("opening %s with %v", abs, cmd.Args)
	if err := starter(cmd); err != nil {
		return fmt.Errorf("open %s: %w", abs, err)
	}
	return nil
}

// DefaultOpenCommand returns the command that opens path with the default
// application on goos.
func DefaultOpenCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// expandTemplate expands template variables in the command.
func expandTemplate(command, path string) string {
	result := command

	// {path} - Full path to the page
	result = strings.ReplaceAll(result, "{path}", shellQuote(path))

	// {dir} - Directory containing the page
	result = strings.ReplaceAll(result, "{dir}", shellQuote(filepath.Dir(path)))

	// {file} - File name of the page
	result = strings.ReplaceAll(result, "{file}", shellQuote(filepath.Base(path)))

	return result
}

// shellQuote quotes s for sh when it contains special characters.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`!*?[](){};&|<>#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
