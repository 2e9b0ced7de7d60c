// Package rawvec provides a growable contiguous container built from two layers:
// Arena, which owns a block of raw element slots, and Vector, which owns the
// lifetime of every element constructed in those slots.
package rawvec

import (
	"fmt"
	"unsafe"
)

// MaxAllocBytes caps the size in bytes of a single Arena block.
// Larger requests fail with ErrOutOfMemory without touching the allocator.
var MaxAllocBytes uintptr = 1 << 40

// noCopy makes go vet report copies of the structs that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena owns a single block of slots sized for exactly Capacity() elements of T.
// A slot holding the zero value is raw; Arena never constructs or destroys
// elements, that duty belongs to the owner of the arena.
//
// An Arena must not be copied. Ownership moves with Swap or MoveFrom.
type Arena[T any] struct {
	_     noCopy
	slots []T
}

// Allocate acquires a block of n raw slots. The arena must be empty.
// n == 0 leaves the arena empty without allocating.
// Running out of heap below MaxAllocBytes is still a fatal runtime error.
func (a *Arena[T]) Allocate(n int) (err error) {
	check(a.slots == nil, "allocate on an arena that already owns a block")
	if n < 0 {
		panic("invalid capacity")
	}
	if n == 0 {
		return nil
	}

	if size := Sizeof[T](); size != 0 && uintptr(n) > MaxAllocBytes/size {
		return fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, size)
	}

	// makeslice reports impossible lengths as a runtime panic
	defer func() {
		if r := recover(); r != nil {
			a.slots = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	a.slots = make([]T, n)
	return nil
}

// Deallocate releases the block. It is a no-op on an empty arena.
// The caller must have destroyed every live element first.
func (a *Arena[T]) Deallocate() {
	a.slots = nil
}

// AddressOf returns the address of the offset-th slot.
// offset == Capacity() names the one-past-end position and yields nil.
func (a *Arena[T]) AddressOf(offset int) *T {
	check(offset >= 0 && offset <= len(a.slots), "arena offset out of range")
	if offset == len(a.slots) {
		return nil
	}
	return &a.slots[offset]
}

// Slot returns the address of slot i, which must be below Capacity().
func (a *Arena[T]) Slot(i int) *T {
	check(i >= 0 && i < len(a.slots), "arena slot out of range")
	return &a.slots[i]
}

// Slots exposes the whole block, raw slots included.
func (a *Arena[T]) Slots() []T {
	return a.slots
}

// Capacity returns the number of slots in the block.
func (a *Arena[T]) Capacity() int {
	return len(a.slots)
}

// Swap exchanges blocks with other.
func (a *Arena[T]) Swap(other *Arena[T]) {
	a.slots, other.slots = other.slots, a.slots
}

// MoveFrom transfers ownership of src's block to a by swapping the two,
// so an empty receiver leaves src empty.
func (a *Arena[T]) MoveFrom(src *Arena[T]) {
	a.Swap(src)
}

// Sizeof returns the size in bytes of one T slot.
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
