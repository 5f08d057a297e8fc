package page

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content ContentDescriptor
		wantErr bool
	}{
		{"welcome", Welcome, false},
		{"empty title", ContentDescriptor{Body: "body"}, true},
		{"empty body", ContentDescriptor{Title: "title"}, true},
		{"invalid utf-8 title", ContentDescriptor{Title: "bad\xff", Body: "body"}, true},
		{"invalid utf-8 body", ContentDescriptor{Title: "title", Body: "\xc3\x28"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidContent) {
				t.Errorf("Expected ErrInvalidContent, got %v", err)
			}
		})
	}
}

func TestStaticSource(t *testing.T) {
	c, err := StaticSource{Content: Welcome}.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c != Welcome {
		t.Errorf("Load() = %+v, want %+v", c, Welcome)
	}

	if _, err := (StaticSource{}).Load(); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("Expected ErrInvalidContent for empty descriptor, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		return path
	}

	good := write("good.toml", "title = \"Hola\"\nbody = \"Mundo\"\n")
	c, err := FileSource{Path: good}.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Title != "Hola" || c.Body != "Mundo" {
		t.Errorf("Load() = %+v", c)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "missing.toml"), ErrContentUnavailable},
		{"bad toml", write("bad.toml", "title = \n"), ErrContentUnavailable},
		{"missing body", write("nobody.toml", "title = \"Hola\"\n"), ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FileSource{Path: tt.path}.Load()
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
			if c != (ContentDescriptor{}) {
				t.Errorf("Expected zero descriptor on error, got %+v", c)
			}
		})
	}
}
