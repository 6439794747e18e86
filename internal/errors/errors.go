package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrInvalidGeometry means the content cannot be split into panels:
	// it is shorter than two title heights, or the requested flip count
	// leaves panels taller than the title.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidInput marks a broken internal invariant, such as an empty
	// panel partition or a non-positive animation setting.
	ErrInvalidInput = errors.New("invalid input")
)

// GeometryError describes why a title/content pair could not be partitioned.
type GeometryError struct {
	Title   int
	Content int
	Flips   int
	Reason  string
}

func (e GeometryError) Error() string {
	return fmt.Sprintf("%s: title=%d content=%d flips=%d: %s",
		ErrInvalidGeometry, e.Title, e.Content, e.Flips, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidGeometry.
func (e GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// ValidationError represents a configuration field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e ValidationError) Unwrap() error {
	return ErrInvalidInput
}
