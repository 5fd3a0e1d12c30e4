package deck

import "errors"

// User-rule violations. These abort the operation and leave the document
// unchanged; callers surface them as blocking messages (CLI error line,
// HTTP 409) using the deck's dictionary.
var (
	// ErrLastSlide is returned when deleting the only remaining slide.
	ErrLastSlide = errors.New("cannot delete the last slide")

	// ErrLastSection is returned when deleting the only remaining section.
	ErrLastSection = errors.New("must have at least one section")

	// ErrSlideNotFound is returned when an operation names an unknown slide.
	ErrSlideNotFound = errors.New("slide not found")

	// ErrSectionNotFound is returned when an operation names an unknown section.
	ErrSectionNotFound = errors.New("section not found")

	// ErrIndexOutOfRange is returned by MoveSlide for invalid positions.
	ErrIndexOutOfRange = errors.New("slide index out of range")
)
