package rawvec

import (
	"errors"
	"testing"
)

var errBoom = errors.New("boom")

// probe counts lifetime events of tracked elements and fails the n-th call
// of a hook when the matching failAt is set.
type probe struct {
	live int

	constructs  int
	copies      int
	moves       int
	copyAssigns int
	moveAssigns int
	destroys    int

	failConstructAt  int
	failCopyAt       int
	failMoveAt       int
	failCopyAssignAt int
	failMoveAssignAt int
}

var current = &probe{}

func newProbe(t *testing.T) *probe {
	current = &probe{}
	t.Cleanup(func() { current = &probe{} })
	return current
}

func (p *probe) hit(counter *int, failAt int) error {
	*counter++
	if failAt != 0 && *counter == failAt {
		return errBoom
	}
	return nil
}

// elem is copyable and its move may fail, so transfers copy it.
type elem struct {
	val int
	ok  bool
}

func (e *elem) Construct() error {
	if err := current.hit(&current.constructs, current.failConstructAt); err != nil {
		return err
	}
	e.ok = true
	current.live++
	return nil
}

func (e *elem) CopyFrom(src *elem) error {
	if err := current.hit(&current.copies, current.failCopyAt); err != nil {
		return err
	}
	*e = *src
	if e.ok {
		current.live++
	}
	return nil
}

func (e *elem) MoveFrom(src *elem) error {
	if err := current.hit(&current.moves, current.failMoveAt); err != nil {
		return err
	}
	*e = *src
	*src = elem{}
	return nil
}

func (e *elem) CopyAssign(src *elem) error {
	if err := current.hit(&current.copyAssigns, current.failCopyAssignAt); err != nil {
		return err
	}
	if e.ok {
		current.live--
	}
	*e = *src
	if e.ok {
		current.live++
	}
	return nil
}

func (e *elem) MoveAssign(src *elem) error {
	if err := current.hit(&current.moveAssigns, current.failMoveAssignAt); err != nil {
		return err
	}
	if e.ok {
		current.live--
	}
	*e = *src
	*src = elem{}
	return nil
}

func (e *elem) Destroy() {
	current.destroys++
	if e.ok {
		current.live--
		e.ok = false
	}
}

// fastElem is an elem whose move never fails, so transfers move it.
type fastElem struct {
	elem
}

func (f *fastElem) CopyFrom(src *fastElem) error { return f.elem.CopyFrom(&src.elem) }
func (f *fastElem) MoveFrom(src *fastElem) error { return f.elem.MoveFrom(&src.elem) }
func (*fastElem) NothrowMove()                   {}

// uniqueElem cannot be copied; transfers move it even though the move may fail.
type uniqueElem struct {
	elem
}

func (u *uniqueElem) MoveFrom(src *uniqueElem) error { return u.elem.MoveFrom(&src.elem) }
func (*uniqueElem) NonCopyable()                     {}

func tracked(val int) elem {
	return elem{val: val, ok: true}
}

func elemVector(t *testing.T, vals ...int) *Vector[elem] {
	t.Helper()
	v := NewVector[elem]()
	for _, val := range vals {
		if err := v.PushBack(tracked(val)); err != nil {
			t.Fatalf("push %d: %v", val, err)
		}
	}
	return v
}

func elemVals(v *Vector[elem]) []int {
	out := make([]int, 0, v.Size())
	for _, e := range v.Values() {
		out = append(out, e.val)
	}
	return out
}

func intVector(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v := NewVector[int]()
	for _, val := range vals {
		if err := v.PushBack(val); err != nil {
			t.Fatalf("push %d: %v", val, err)
		}
	}
	return v
}
