package page

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Source supplies page content.
type Source interface {
	Load() (ContentDescriptor, error)
}

// StaticSource returns a fixed descriptor.
type StaticSource struct {
	Content ContentDescriptor
}

// Load validates and returns the fixed descriptor.
func (s StaticSource) Load() (ContentDescriptor, error) {
	if err := s.Content.Validate(); err != nil {
		return ContentDescriptor{}, err
	}
	return s.Content, nil
}

// FileSource reads content from a TOML file with title and body keys.
type FileSource struct {
	Path string
}

// Load reads and validates the content file.
func (s FileSource) Load() (ContentDescriptor, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return ContentDescriptor{}, fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}

	var c ContentDescriptor
	if err := toml.Unmarshal(data, &c); err != nil {
		return ContentDescriptor{}, fmt.Errorf("%w: parse %s: %v", ErrContentUnavailable, s.Path, err)
	}

	if err := c.Validate(); err != nil {
		return ContentDescriptor{}, fmt.Errorf("%s: %w", s.Path, err)
	}
	return c, nil
}
