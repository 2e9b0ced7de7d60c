package rawvec

// PushBack appends a copy of value.
func (v *Vector[T]) PushBack(value T) error {
	tr := v.tr()
	_, err := v.EmplaceBack(func(dst *T) error {
		return tr.copyConstruct(dst, &value)
	})
	return err
}

// PushBackMove moves *value into a new last element.
func (v *Vector[T]) PushBackMove(value *T) error {
	_, err := v.InsertMove(v.size, value)
	return err
}

// EmplaceBack constructs a new last element with construct, which receives a
// zeroed slot, and returns its address.
func (v *Vector[T]) EmplaceBack(construct func(dst *T) error) (*T, error) {
	pos, err := v.Emplace(v.size, construct)
	if err != nil {
		return nil, err
	}
	return v.buf.Slot(pos), nil
}

// PopBack destroys the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.tr().destroy(v.buf.Slot(v.size))
}

// Insert places a copy of value at pos and returns pos.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	tr := v.tr()
	return v.Emplace(pos, func(dst *T) error {
		return tr.copyConstruct(dst, &value)
	})
}

// InsertMove moves *value into position pos and returns pos.
func (v *Vector[T]) InsertMove(pos int, value *T) (int, error) {
	tr := v.tr()
	return v.Emplace(pos, func(dst *T) error {
		return tr.moveConstruct(dst, value)
	})
}

// Emplace constructs a new element at pos, shifting the elements from pos on
// one place to the right, and returns pos. pos == Size() appends.
//
// When the storage is full the element is built in a doubled block before the
// existing elements are transferred, and any failure leaves v unchanged. An insert
// in the middle of a vector with spare room shifts elements by move-assignment:
// a failure there leaves every element valid but the order unspecified.
func (v *Vector[T]) Emplace(pos int, construct func(dst *T) error) (int, error) {
	check(pos >= 0 && pos <= v.size, "emplace position out of range")

	var err error
	switch {
	case v.size == v.buf.Capacity():
		err = v.emplaceRealloc(pos, construct)
	case pos == v.size:
		if err = build(v.buf.Slot(pos), construct); err != nil {
			err = wrapIndex("construct", pos, err)
		} else {
			v.size++
		}
	default:
		err = v.emplaceShift(pos, construct)
	}
	if err != nil {
		return 0, err
	}
	return pos, nil
}

func (v *Vector[T]) emplaceRealloc(pos int, construct func(dst *T) error) error {
	tr := v.tr()

	var fresh Arena[T]
	if err := fresh.Allocate(max(1, v.buf.Capacity()*2)); err != nil {
		return err
	}

	dst, src := fresh.Slots(), v.buf.Slots()
	if err := build(&dst[pos], construct); err != nil {
		fresh.Deallocate()
		return wrapIndex("construct", pos, err)
	}
	if err := tr.transferN(dst[:pos], src[:pos], 0); err != nil {
		tr.destroy(&dst[pos])
		fresh.Deallocate()
		return err
	}
	if err := tr.transferN(dst[pos+1:v.size+1], src[pos:v.size], pos); err != nil {
		tr.rollback(dst[:pos])
		tr.destroy(&dst[pos])
		fresh.Deallocate()
		return err
	}

	v.buf.Swap(&fresh)
	tr.destroyN(fresh.Slots()[:v.size])
	fresh.Deallocate()
	v.size++
	return nil
}

func (v *Vector[T]) emplaceShift(pos int, construct func(dst *T) error) error {
	tr := v.tr()

	var tmp T
	if err := build(&tmp, construct); err != nil {
		return wrapIndex("construct", pos, err)
	}
	defer tr.destroy(&tmp)

	slots := v.buf.Slots()
	last := v.size
	if err := tr.moveConstruct(&slots[last], &slots[last-1]); err != nil {
		return wrapIndex("move", last-1, err)
	}
	// slot last now holds a live element, count it before anything else can fail
	v.size++

	for i := last - 1; i > pos; i-- {
		if err := tr.moveAssign(&slots[i], &slots[i-1]); err != nil {
			return wrapIndex("move-assign", i-1, err)
		}
	}
	if err := tr.moveAssign(&slots[pos], &tmp); err != nil {
		return wrapIndex("move-assign", pos, err)
	}
	return nil
}

// Erase removes the element at pos by shifting its successors one place to the
// left and returns pos, which now indexes the following element or the end.
// A failing move-assignment leaves every element valid but the order unspecified.
// pos must index a live element.
func (v *Vector[T]) Erase(pos int) (int, error) {
	check(v.size > 0, "erase on empty vector")
	check(pos >= 0 && pos < v.size, "erase position out of range")

	tr := v.tr()
	slots := v.buf.Slots()
	for i := pos; i < v.size-1; i++ {
		if err := tr.moveAssign(&slots[i], &slots[i+1]); err != nil {
			return 0, wrapIndex("move-assign", i+1, err)
		}
	}
	v.PopBack()
	return pos, nil
}

// Resize sets the number of elements to n, value-constructing new elements or
// destroying trailing ones. Growth reserves exactly n slots first.
func (v *Vector[T]) Resize(n int) error {
	check(n >= 0, "negative size")

	tr := v.tr()
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := tr.constructN(v.buf.Slots()[v.size:n], v.size); err != nil {
			return err
		}
	} else {
		tr.destroyN(v.buf.Slots()[n:v.size])
	}
	v.size = n
	return nil
}

// Reserve grows the storage to exactly n slots, transferring the elements into
// the new block. It is a no-op when n <= Capacity(). A failure leaves v unchanged
// unless the elements are moved with a MoveFrom that can fail.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Capacity() {
		return nil
	}

	tr := v.tr()
	var fresh Arena[T]
	if err := fresh.Allocate(n); err != nil {
		return err
	}
	if err := tr.transferN(fresh.Slots()[:v.size], v.Data(), 0); err != nil {
		fresh.Deallocate()
		return err
	}

	tr.destroyN(v.Data())
	v.buf.Swap(&fresh)
	fresh.Deallocate()
	return nil
}

// Clear destroys every element and keeps the storage.
func (v *Vector[T]) Clear() {
	v.tr().destroyN(v.Data())
	v.size = 0
}

// AddIfAbsent appends a copy of value only if it doesn't already exist in the vector.
func (v *Vector[T]) AddIfAbsent(value T) (bool, error) {
	if v.Contains(value) {
		return false, nil
	}
	if err := v.PushBack(value); err != nil {
		return false, err
	}
	return true, nil
}

// Remove erases the first occurrence of value.
func (v *Vector[T]) Remove(value T) (bool, error) {
	idx := v.Index(value)
	if idx == -1 {
		return false, nil
	}
	if _, err := v.Erase(idx); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveBy erases elements matching fn, scanning from the back.
// limit caps the number of erased elements, 0 means unlimited.
func (v *Vector[T]) RemoveBy(limit int, fn func(index int, v T) bool) (int, error) {
	var removed int
	for i := v.size - 1; i >= 0; i-- {
		if !fn(i, *v.buf.Slot(i)) {
			continue
		}
		if _, err := v.Erase(i); err != nil {
			return removed, err
		}
		if removed++; removed >= limit && limit > 0 {
			break
		}
	}
	return removed, nil
}
