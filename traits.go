package rawvec

// Element types opt into lifetime hooks by implementing the interfaces below on *T.
// A type implementing none of them behaves like a plain Go value: the zero value is
// its constructed state, copies are assignments and nothing runs on destruction.

// Constructor value-constructs an element in a zeroed slot.
type Constructor interface {
	Construct() error
}

// Copier copy-constructs an element in a zeroed slot from src.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// NonCopyable marks a type that has no copy constructor.
type NonCopyable interface {
	NonCopyable()
}

// Mover move-constructs an element in a zeroed slot from src, leaving src
// valid but unspecified. Without it a move is a bitwise copy that zeroes src.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// NothrowMover marks a Mover whose MoveFrom never fails.
type NothrowMover interface {
	NothrowMove()
}

// CopyAssigner copies src over a live element.
type CopyAssigner[T any] interface {
	CopyAssign(src *T) error
}

// MoveAssigner moves src over a live element.
type MoveAssigner[T any] interface {
	MoveAssign(src *T) error
}

// Destroyer releases whatever an element owns. Destroy must accept the zero value,
// which is also the state of a moved-from element without a Mover.
type Destroyer interface {
	Destroy()
}

// traits records which lifetime hooks *T implements.
type traits[T any] struct {
	constructor  bool
	copier       bool
	mover        bool
	copyAssigner bool
	moveAssigner bool
	destroyer    bool
	copyable     bool
	nothrowMove  bool
}

func traitsOf[T any]() *traits[T] {
	p := any((*T)(nil))
	tr := &traits[T]{}
	_, tr.constructor = p.(Constructor)
	_, tr.copier = p.(Copier[T])
	_, tr.mover = p.(Mover[T])
	_, tr.copyAssigner = p.(CopyAssigner[T])
	_, tr.moveAssigner = p.(MoveAssigner[T])
	_, tr.destroyer = p.(Destroyer)
	_, nonCopyable := p.(NonCopyable)
	_, nothrow := p.(NothrowMover)
	tr.copyable = !nonCopyable
	tr.nothrowMove = !tr.mover || nothrow
	return tr
}

// moveOnTransfer reports whether relocating elements to a new block moves them.
// Copying keeps the old block intact until every new slot is built, so it is
// used whenever a move could fail and a copy is available.
func (tr *traits[T]) moveOnTransfer() bool {
	return tr.nothrowMove || !tr.copyable
}

func clearSlot[T any](p *T) {
	var zero T
	*p = zero
}

// build runs a caller supplied constructor on a zeroed slot.
func build[T any](dst *T, construct func(dst *T) error) error {
	if err := construct(dst); err != nil {
		clearSlot(dst)
		return err
	}
	return nil
}

func (tr *traits[T]) construct(dst *T) error {
	if !tr.constructor {
		return nil
	}
	if err := any(dst).(Constructor).Construct(); err != nil {
		clearSlot(dst)
		return err
	}
	return nil
}

func (tr *traits[T]) copyConstruct(dst, src *T) error {
	if !tr.copyable {
		return ErrNotCopyable
	}
	if !tr.copier {
		*dst = *src
		return nil
	}
	if err := any(dst).(Copier[T]).CopyFrom(src); err != nil {
		clearSlot(dst)
		return err
	}
	return nil
}

func (tr *traits[T]) moveConstruct(dst, src *T) error {
	if !tr.mover {
		*dst = *src
		clearSlot(src)
		return nil
	}
	if err := any(dst).(Mover[T]).MoveFrom(src); err != nil {
		clearSlot(dst)
		return err
	}
	return nil
}

func (tr *traits[T]) destroy(p *T) {
	if tr.destroyer {
		any(p).(Destroyer).Destroy()
	}
	clearSlot(p)
}

// copyAssign leaves dst holding its old value when the copy fails.
func (tr *traits[T]) copyAssign(dst, src *T) error {
	if dst == src {
		return nil
	}
	if tr.copyAssigner {
		return any(dst).(CopyAssigner[T]).CopyAssign(src)
	}
	var tmp T
	if err := tr.copyConstruct(&tmp, src); err != nil {
		return err
	}
	tr.destroy(dst)
	*dst = tmp
	return nil
}

// moveAssign leaves dst zeroed when a fallback MoveFrom fails.
func (tr *traits[T]) moveAssign(dst, src *T) error {
	if dst == src {
		return nil
	}
	if tr.moveAssigner {
		return any(dst).(MoveAssigner[T]).MoveAssign(src)
	}
	tr.destroy(dst)
	return tr.moveConstruct(dst, src)
}

// destroyN destroys every slot of s in order.
func (tr *traits[T]) destroyN(s []T) {
	for i := range s {
		tr.destroy(&s[i])
	}
}

// rollback destroys s in reverse construction order.
func (tr *traits[T]) rollback(s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		tr.destroy(&s[i])
	}
}

// The batch primitives below either build every slot of dst or, on failure,
// destroy what they built and return an error naming the element at base+i.

func (tr *traits[T]) constructN(dst []T, base int) error {
	for i := range dst {
		if err := tr.construct(&dst[i]); err != nil {
			tr.rollback(dst[:i])
			return wrapIndex("construct", base+i, err)
		}
	}
	return nil
}

func (tr *traits[T]) copyN(dst, src []T, base int) error {
	for i := range src {
		if err := tr.copyConstruct(&dst[i], &src[i]); err != nil {
			tr.rollback(dst[:i])
			return wrapIndex("copy", base+i, err)
		}
	}
	return nil
}

// moveN gives no rollback for src: elements moved before a failure stay moved-from.
func (tr *traits[T]) moveN(dst, src []T, base int) error {
	for i := range src {
		if err := tr.moveConstruct(&dst[i], &src[i]); err != nil {
			tr.rollback(dst[:i])
			return wrapIndex("move", base+i, err)
		}
	}
	return nil
}

// transferN relocates src into the raw slots of dst following moveOnTransfer.
func (tr *traits[T]) transferN(dst, src []T, base int) error {
	if tr.moveOnTransfer() {
		return tr.moveN(dst, src, base)
	}
	return tr.copyN(dst, src, base)
}
