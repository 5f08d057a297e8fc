package page

import (
	"fmt"
	"unicode/utf8"
)

// ContentDescriptor is the static content of a page.
type ContentDescriptor struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Welcome is the compiled-in landing page content.
var Welcome = ContentDescriptor{
	Title: "Bienvenido a Buki",
	Body:  "Aplicación inicializada con Next.js, TypeScript y Tailwind.",
}

// Validate checks that title and body are non-empty UTF-8 text.
func (c ContentDescriptor) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidContent)
	}
	if c.Body == "" {
		return fmt.Errorf("%w: empty body", ErrInvalidContent)
	}
	if !utf8.ValidString(c.Title) {
		return fmt.Errorf("%w: title is not valid UTF-8", ErrInvalidContent)
	}
	if !utf8.ValidString(c.Body) {
		return fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidContent)
	}
	return nil
}
