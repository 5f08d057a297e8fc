package web

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/henri123lemoine/buki/internal/debug"
	"github.com/henri123lemoine/buki/internal/page"
)

// DefaultFilename is the file Export writes when none is given.
const DefaultFilename = "index.html"

// writeFile writes the temporary export file. Tests replace it.
var writeFile = os.WriteFile

// Export writes root as dir/filename and returns the written path.
// The file is replaced atomically while holding an exclusive lock.
func Export(dir, filename string, root page.DocumentNode, opts Options) (string, error) {
	defer debug.Timed("export page")()

	if filename == "" {
		filename = DefaultFilename
	}
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("export filename %q must not contain a directory", filename)
	}

	// Render before touching the filesystem so a bad tree writes nothing.
	var buf bytes.Buffer
	if err := Write(&buf, root, opts); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)

	// Acquire exclusive lock - blocks until lock is available
	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return "", fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := writeFile(tmpPath, buf.Bytes(), 0644); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	debug.Log("exported page to %s (%d bytes)", path, buf.Len())
	return path, nil
}
