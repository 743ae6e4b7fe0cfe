package objpath

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a path segment does not exist.
var ErrNotFound = errors.New("path not found")

// ErrNotContainer is returned when a path descends into a value that is not a map or slice.
var ErrNotContainer = errors.New("value is not a map or slice")

// PathError records the segment at which a lookup stopped.
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("resolve %q at %q: %v", e.Path, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
