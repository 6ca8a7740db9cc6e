package vec

import (
	"errors"

	"github.com/vectorhx/xtree/lib/infra"
)

var (
	// ErrIndexOutOfBounds reports a bounds-checked access outside
	// [0, Len).
	ErrIndexOutOfBounds = errors.New("[vector] index out of bounds")
	// ErrEmptyVector reports Front/Back/PopBack on an empty vector.
	ErrEmptyVector = errors.New("[vector] empty vector")
)

const defaultCapacity = 4

// Vector is a growable array with bounds-checked access. Storage is
// contiguous and doubles when exhausted, so PushBack is amortized O(1)
// and random access is O(1). Not safe for concurrent mutation.
type Vector[E any] struct {
	items []E
}

func New[E any]() *Vector[E] {
	return &Vector[E]{}
}

func (v *Vector[E]) Len() int64 {
	return int64(len(v.items))
}

func (v *Vector[E]) Cap() int64 {
	return int64(cap(v.items))
}

func (v *Vector[E]) Empty() bool {
	return len(v.items) == 0
}

func (v *Vector[E]) checkPosition(ix int64) error {
	if ix < 0 || ix >= int64(len(v.items)) {
		return infra.WrapErrorStack(ErrIndexOutOfBounds)
	}
	return nil
}

func (v *Vector[E]) At(ix int64) (E, error) {
	if err := v.checkPosition(ix); err != nil {
		var zero E
		return zero, err
	}
	return v.items[ix], nil
}

// Ref exposes the element in place. The pointer is invalidated by any
// growth, insertion or erasure, unlike the tree's node references.
func (v *Vector[E]) Ref(ix int64) (*E, error) {
	if err := v.checkPosition(ix); err != nil {
		return nil, err
	}
	return &v.items[ix], nil
}

func (v *Vector[E]) Set(ix int64, val E) error {
	if err := v.checkPosition(ix); err != nil {
		return err
	}
	v.items[ix] = val
	return nil
}

func (v *Vector[E]) Front() (E, error) {
	if v.Empty() {
		var zero E
		return zero, infra.WrapErrorStack(ErrEmptyVector)
	}
	return v.items[0], nil
}

func (v *Vector[E]) Back() (E, error) {
	if v.Empty() {
		var zero E
		return zero, infra.WrapErrorStack(ErrEmptyVector)
	}
	return v.items[len(v.items)-1], nil
}

func (v *Vector[E]) grow() {
	capNew := int64(defaultCapacity)
	if cap(v.items) > 0 {
		capNew = 2 * int64(cap(v.items))
	}
	storeNew := make([]E, len(v.items), capNew)
	copy(storeNew, v.items)
	v.items = storeNew
}

func (v *Vector[E]) PushBack(val E) {
	if len(v.items) == cap(v.items) {
		v.grow()
	}
	v.items = append(v.items, val)
}

func (v *Vector[E]) PopBack() error {
	if v.Empty() {
		return infra.WrapErrorStack(ErrEmptyVector)
	}
	var zero E
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	return nil
}

// Insert places val at index ix, shifting the suffix right. The index
// may equal Len, which appends.
func (v *Vector[E]) Insert(ix int64, val E) error {
	if ix < 0 || ix > int64(len(v.items)) {
		return infra.WrapErrorStack(ErrIndexOutOfBounds)
	}
	if len(v.items) == cap(v.items) {
		v.grow()
	}
	var zero E
	v.items = append(v.items, zero)
	copy(v.items[ix+1:], v.items[ix:])
	v.items[ix] = val
	return nil
}

// Erase removes the element at index ix, shifting the suffix left.
func (v *Vector[E]) Erase(ix int64) error {
	if err := v.checkPosition(ix); err != nil {
		return err
	}
	copy(v.items[ix:], v.items[ix+1:])
	var zero E
	v.items[len(v.items)-1] = zero
	v.items = v.items[:len(v.items)-1]
	return nil
}

func (v *Vector[E]) Clear() {
	v.items = nil
}

func (v *Vector[E]) Clone() *Vector[E] {
	if v.items == nil {
		return &Vector[E]{}
	}
	cp := make([]E, len(v.items), cap(v.items))
	copy(cp, v.items)
	return &Vector[E]{items: cp}
}

func (v *Vector[E]) Foreach(action func(ix int64, val E) bool) {
	for i, val := range v.items {
		if !action(int64(i), val) {
			return
		}
	}
}
