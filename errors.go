package rawvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when a block of the requested size cannot be allocated.
	ErrOutOfMemory = errors.New("rawvec: out of memory")

	// ErrNotCopyable is returned when a copy is requested for an element type
	// that implements NonCopyable.
	ErrNotCopyable = errors.New("rawvec: element type is not copyable")
)

func wrapIndex(op string, i int, err error) error {
	return fmt.Errorf("rawvec: %s element %d: %w", op, i, err)
}
