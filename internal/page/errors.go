package page

import "errors"

var (
	// ErrContentUnavailable is returned when page content cannot be loaded.
	ErrContentUnavailable = errors.New("content unavailable")

	// ErrInvalidContent is returned when a descriptor breaks its invariants.
	ErrInvalidContent = errors.New("invalid content")

	// ErrMalformedTree is returned when a document tree does not have the
	// container > block > (heading, paragraph) shape.
	ErrMalformedTree = errors.New("malformed document tree")
)
