package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound = errors.New("not found")
)

// AnnotationNotFoundError reports a lookup for an id the document does not
// contain.
type AnnotationNotFoundError struct {
	ID string
}

func (e *AnnotationNotFoundError) Error() string {
	return fmt.Sprintf("annotation %q: not found", e.ID)
}

func (e *AnnotationNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
