package kv

import (
	"github.com/vectorhx/xtree/lib/infra"
	"github.com/vectorhx/xtree/lib/tree"
)

// treeMap is a thin adapter over the red-black tree: it stores
// Pair[K, V] elements under a key-only comparator and layers the
// bounds-checked and default-inserting accessors on top of the tree's
// operations. All balancing work happens below; this layer only maps
// its error conditions onto the tree's.
type treeMap[K infra.OrderedKey, V any] struct {
	tree tree.RBTree[Pair[K, V]]
}

func NewTreeMap[K infra.OrderedKey, V any]() OrderedMap[K, V] {
	return &treeMap[K, V]{
		tree: tree.New[Pair[K, V]](PairLess[K, V]),
	}
}

func (m *treeMap[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *treeMap[K, V]) Empty() bool {
	return m.tree.Empty()
}

func (m *treeMap[K, V]) At(key K) (V, error) {
	it := m.tree.Find(Pair[K, V]{Key: key})
	if it == m.tree.End() {
		var zero V
		return zero, infra.WrapErrorStack(ErrKeyOutOfBounds)
	}
	return it.Value().Val, nil
}

func (m *treeMap[K, V]) Ref(key K) *V {
	it, _ := m.tree.Insert(Pair[K, V]{Key: key})
	return &it.Ref().Val
}

func (m *treeMap[K, V]) Put(key K, val V) {
	it, inserted := m.tree.Insert(Pair[K, V]{Key: key, Val: val})
	if !inserted {
		it.Ref().Val = val
	}
}

func (m *treeMap[K, V]) Insert(key K, val V) (tree.Iterator[Pair[K, V]], bool) {
	return m.tree.Insert(Pair[K, V]{Key: key, Val: val})
}

func (m *treeMap[K, V]) Erase(it tree.Iterator[Pair[K, V]]) error {
	return m.tree.Erase(it)
}

func (m *treeMap[K, V]) Delete(key K) error {
	it := m.tree.Find(Pair[K, V]{Key: key})
	if it == m.tree.End() {
		return infra.WrapErrorStack(ErrKeyOutOfBounds)
	}
	return m.tree.Erase(it)
}

func (m *treeMap[K, V]) Find(key K) tree.Iterator[Pair[K, V]] {
	return m.tree.Find(Pair[K, V]{Key: key})
}

// Count is either 1 or 0, since the tree allows no duplicates.
func (m *treeMap[K, V]) Count(key K) int64 {
	if m.tree.Find(Pair[K, V]{Key: key}) == m.tree.End() {
		return 0
	}
	return 1
}

func (m *treeMap[K, V]) Begin() tree.Iterator[Pair[K, V]] {
	return m.tree.Begin()
}

func (m *treeMap[K, V]) End() tree.Iterator[Pair[K, V]] {
	return m.tree.End()
}

func (m *treeMap[K, V]) Clear() {
	m.tree.Clear()
}

func (m *treeMap[K, V]) Clone() OrderedMap[K, V] {
	return &treeMap[K, V]{tree: m.tree.Clone()}
}

func (m *treeMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.tree.Foreach(func(idx int64, color tree.RBColor, p Pair[K, V]) bool {
		return action(idx, p.Key, p.Val)
	})
}
