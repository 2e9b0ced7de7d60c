package rawvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_Allocate(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		capacity int
	}{
		{"zero allocates nothing", 0, 0},
		{"single slot", 1, 1},
		{"many slots", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Arena[int]
			require.NoError(t, a.Allocate(tt.n))
			assert.Equal(t, tt.capacity, a.Capacity())
			assert.Len(t, a.Slots(), tt.capacity)
			if tt.n == 0 {
				assert.Nil(t, a.Slots())
			}
			for _, slot := range a.Slots() {
				assert.Zero(t, slot)
			}
		})
	}
}

func TestArena_AllocateOutOfMemory(t *testing.T) {
	var a Arena[[64]byte]
	err := a.Allocate(math.MaxInt)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 0, a.Capacity())
	assert.Nil(t, a.Slots())
}

func TestArena_MaxAllocBytes(t *testing.T) {
	saved := MaxAllocBytes
	t.Cleanup(func() { MaxAllocBytes = saved })

	MaxAllocBytes = 64
	var a Arena[int64]
	assert.ErrorIs(t, a.Allocate(9), ErrOutOfMemory)
	assert.Equal(t, 0, a.Capacity())

	require.NoError(t, a.Allocate(8))
	assert.Equal(t, 8, a.Capacity())
}

func TestArena_AddressOf(t *testing.T) {
	var a Arena[int]
	require.NoError(t, a.Allocate(4))

	for i := 0; i < 4; i++ {
		assert.Same(t, &a.Slots()[i], a.AddressOf(i))
		assert.Same(t, a.Slot(i), a.AddressOf(i))
	}
	assert.Nil(t, a.AddressOf(4), "one-past-end has no address")

	var empty Arena[int]
	assert.Nil(t, empty.AddressOf(0))
}

func TestArena_Swap(t *testing.T) {
	var a, b Arena[string]
	require.NoError(t, a.Allocate(2))
	require.NoError(t, b.Allocate(5))
	*a.Slot(0) = "a"
	*b.Slot(0) = "b"

	a.Swap(&b)
	assert.Equal(t, 5, a.Capacity())
	assert.Equal(t, 2, b.Capacity())
	assert.Equal(t, "b", *a.Slot(0))
	assert.Equal(t, "a", *b.Slot(0))
}

func TestArena_MoveFrom(t *testing.T) {
	var src, dst Arena[int]
	require.NoError(t, src.Allocate(3))
	block := src.AddressOf(0)

	dst.MoveFrom(&src)
	assert.Equal(t, 3, dst.Capacity())
	assert.Same(t, block, dst.AddressOf(0))
	assert.Equal(t, 0, src.Capacity())
	assert.Nil(t, src.Slots())
}

func TestArena_Deallocate(t *testing.T) {
	var a Arena[int]
	a.Deallocate()
	assert.Equal(t, 0, a.Capacity())

	require.NoError(t, a.Allocate(3))
	a.Deallocate()
	assert.Equal(t, 0, a.Capacity())
	assert.Nil(t, a.Slots())

	require.NoError(t, a.Allocate(2), "a released arena can allocate again")
	assert.Equal(t, 2, a.Capacity())
}

func TestArena_NeverRunsElementHooks(t *testing.T) {
	p := newProbe(t)

	var a Arena[elem]
	require.NoError(t, a.Allocate(8))
	*a.Slot(0) = tracked(1)
	a.Deallocate()

	assert.Zero(t, p.constructs)
	assert.Zero(t, p.destroys)
}

func TestSizeof(t *testing.T) {
	assert.Equal(t, uintptr(8), Sizeof[int64]())
	assert.Equal(t, uintptr(0), Sizeof[struct{}]())
	assert.Equal(t, uintptr(16), Sizeof[[2]uint64]())
}
