package kv

import (
	"errors"

	"github.com/vectorhx/xtree/lib/infra"
	"github.com/vectorhx/xtree/lib/tree"
)

// ErrKeyOutOfBounds reports a bounds-checked lookup of an absent key.
// Like the tree's invalid-iterator error it signals programmer misuse,
// raised synchronously before any mutation.
var ErrKeyOutOfBounds = errors.New("[treemap] key out of bounds")

// Pair is the stored element of the ordered map: a (key, value) tuple
// whose ordering is induced by the key alone.
type Pair[K infra.OrderedKey, V any] struct {
	Key K
	Val V
}

// PairLess compares pairs by key only, so two pairs are equivalent
// whenever their keys are, regardless of values.
func PairLess[K infra.OrderedKey, V any](a, b Pair[K, V]) bool {
	return a.Key < b.Key
}

// OrderedMap associates unique keys with values in sorted key order.
// Lookups, insertions and erasures are logarithmic; iteration over
// Begin/End visits entries in ascending key order. Not safe for
// concurrent mutation.
type OrderedMap[K infra.OrderedKey, V any] interface {
	Len() int64
	Empty() bool
	// At is the bounds-checked lookup: it fails with ErrKeyOutOfBounds
	// when the key is absent.
	At(key K) (V, error)
	// Ref returns the value slot for the key, inserting the zero value
	// first when the key is absent. The pointer stays valid until the
	// entry is erased.
	Ref(key K) *V
	// Put sets the value for the key, inserting or overwriting.
	Put(key K, val V)
	Insert(key K, val V) (tree.Iterator[Pair[K, V]], bool)
	Erase(it tree.Iterator[Pair[K, V]]) error
	Delete(key K) error
	Find(key K) tree.Iterator[Pair[K, V]]
	Count(key K) int64
	Begin() tree.Iterator[Pair[K, V]]
	End() tree.Iterator[Pair[K, V]]
	Clear()
	Clone() OrderedMap[K, V]
	Foreach(action func(idx int64, key K, val V) bool)
}
