package rawvec

import (
	"iter"
	"reflect"

	"golang.org/x/exp/slices"
)

// Vector is a growable sequence of T stored contiguously in an Arena.
// Slots [0, Size()) hold live elements and the rest of the arena is raw.
// The zero value is an empty vector ready to use. A Vector is not safe for
// concurrent use and must not be copied; use Clone or Move instead.
type Vector[T any] struct {
	buf       Arena[T]
	size      int
	traits    *traits[T]
	equatable func(a, b T) bool
}

// vectorOptions holds configuration applied by NewVectorOf.
type vectorOptions[T any] struct {
	capacity  int
	size      int
	equatable func(a, b T) bool
}

// Option configures a Vector created by NewVectorOf.
type Option[T any] func(*vectorOptions[T])

// WithCapacity reserves room for n elements at creation.
func WithCapacity[T any](n int) Option[T] {
	return func(o *vectorOptions[T]) {
		o.capacity = n
	}
}

// WithSize value-constructs n elements at creation.
func WithSize[T any](n int) Option[T] {
	return func(o *vectorOptions[T]) {
		o.size = n
	}
}

// WithEquatable sets the comparison used by Index, LastIndex and Contains.
// The default is reflect.DeepEqual.
func WithEquatable[T any](equatable func(a, b T) bool) Option[T] {
	return func(o *vectorOptions[T]) {
		o.equatable = equatable
	}
}

// NewVector creates an empty vector with no storage.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{traits: traitsOf[T]()}
}

// NewVectorSize creates a vector of n value-constructed elements in a block of exactly n slots.
// If any constructor fails, the elements built so far are destroyed and the block is released.
func NewVectorSize[T any](n int) (*Vector[T], error) {
	v := NewVector[T]()
	if err := v.buf.Allocate(n); err != nil {
		return nil, err
	}
	if err := v.tr().constructN(v.buf.Slots(), 0); err != nil {
		v.buf.Deallocate()
		return nil, err
	}
	v.size = n
	return v, nil
}

// NewVectorOf creates a vector configured by options.
func NewVectorOf[T any](ops ...Option[T]) (*Vector[T], error) {
	var opts vectorOptions[T]
	for _, op := range ops {
		op(&opts)
	}

	v := NewVector[T]()
	v.equatable = opts.equatable
	if err := v.Reserve(max(opts.capacity, opts.size)); err != nil {
		return nil, err
	}
	if err := v.Resize(opts.size); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) tr() *traits[T] {
	if v.traits == nil {
		v.traits = traitsOf[T]()
	}
	return v.traits
}

// Equatable sets a custom equality comparison function for element comparison.
func (v *Vector[T]) Equatable(equatable func(a, b T) bool) *Vector[T] {
	v.equatable = equatable
	return v
}

// Clone copy-constructs a new vector holding copies of v's elements in a block
// sized to v.Size(). On failure the copies are destroyed and v is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{traits: v.tr(), equatable: v.equatable}
	if err := c.buf.Allocate(v.size); err != nil {
		return nil, err
	}
	if err := c.tr().copyN(c.buf.Slots(), v.Data(), 0); err != nil {
		c.buf.Deallocate()
		return nil, err
	}
	c.size = v.size
	return c, nil
}

// Move returns a new vector owning v's storage and elements, leaving v empty
// with no capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{traits: v.tr(), equatable: v.equatable}
	m.buf.MoveFrom(&v.buf)
	m.size, v.size = v.size, 0
	return m
}

// Assign makes v a copy of rhs.
//
// When rhs does not fit in v's capacity a full copy is built first and swapped
// in, so a failure leaves v unchanged. Otherwise elements are copied in place:
// a failure leaves every element valid, but v may hold a mix of old and new values.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}

	if rhs.size > v.buf.Capacity() {
		c, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}

	tr := v.tr()
	dst, src := v.buf.Slots(), rhs.buf.Slots()
	overlap := min(v.size, rhs.size)
	for i := 0; i < overlap; i++ {
		if err := tr.copyAssign(&dst[i], &src[i]); err != nil {
			return wrapIndex("copy-assign", i, err)
		}
	}

	if rhs.size < v.size {
		tr.destroyN(dst[rhs.size:v.size])
	} else if err := tr.copyN(dst[v.size:rhs.size], src[v.size:rhs.size], v.size); err != nil {
		return err
	}
	v.size = rhs.size
	return nil
}

// MoveAssign destroys v's elements, releases its storage and takes over rhs's,
// leaving rhs empty with no capacity.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Release()
	v.buf.MoveFrom(&rhs.buf)
	v.size, rhs.size = rhs.size, 0
}

// Release destroys every element and frees the storage. The vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.tr().destroyN(v.Data())
	v.size = 0
	v.buf.Deallocate()
}

// Swap exchanges contents and storage with other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots the storage holds.
func (v *Vector[T]) Capacity() int {
	return v.buf.Capacity()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Ref returns the address of element i.
// Indexing outside [0, Size()) panics only in rawvec_debug builds.
func (v *Vector[T]) Ref(i int) *T {
	check(i >= 0 && i < v.size, "index out of range")
	return v.buf.Slot(i)
}

// At returns a copy of element i.
func (v *Vector[T]) At(i int) T {
	return *v.Ref(i)
}

// Set copy-assigns value over element i. On failure element i keeps its old value.
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.tr().copyAssign(v.Ref(i), &value); err != nil {
		return wrapIndex("copy-assign", i, err)
	}
	return nil
}

// Front returns the address of the first element.
func (v *Vector[T]) Front() *T {
	return v.Ref(0)
}

// Back returns the address of the last element.
func (v *Vector[T]) Back() *T {
	return v.Ref(v.size - 1)
}

// Data returns the live elements as a slice sharing the vector's storage.
// Any capacity change invalidates it.
func (v *Vector[T]) Data() []T {
	return v.buf.Slots()[:v.size]
}

// All yields the index and address of every live element.
//
// Example:
//
//	for i, p := range v.All() {
//		*p *= 2
//	}
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Values yields the index and a copy of every live element.
func (v *Vector[T]) Values() iter.Seq2[int, T] {
	return v.Range
}

// Range iterates over elements using a callback function.
func (v *Vector[T]) Range(fn func(index int, v T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, *v.buf.Slot(i)) {
			return
		}
	}
}

// Index finds the first occurrence of an element.
// Index of first match, or -1 if not found
func (v *Vector[T]) Index(value T) int {
	equal := v.equal()
	return slices.IndexFunc(v.Data(), func(e T) bool {
		return equal(e, value)
	})
}

// LastIndex finds the last occurrence of an element.
// Index of last match, or -1 if not found
func (v *Vector[T]) LastIndex(value T) int {
	equal := v.equal()
	for i := v.size - 1; i >= 0; i-- {
		if equal(*v.buf.Slot(i), value) {
			return i
		}
	}
	return -1
}

// Contains reports whether value occurs in the vector.
func (v *Vector[T]) Contains(value T) bool {
	return v.Index(value) != -1
}

func (v *Vector[T]) equal() func(a, b T) bool {
	if v.equatable != nil {
		return v.equatable
	}
	return defaultEqual[T]
}

func defaultEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
