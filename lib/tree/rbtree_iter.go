package tree

import (
	"github.com/vectorhx/xtree/lib/infra"
)

// Iterator is a (node, owning tree) pair giving bidirectional traversal
// in sorted order with error-checked boundary crossing. Iterators
// compare equal with == when they denote the same position of the same
// tree; End is the canonical past-the-end position. An iterator borrows
// from its tree: the tree must outlive it, and erasing the element it
// denotes invalidates it and only it.
type Iterator[E any] struct {
	node *rbNode[E]
	home *rbTree[E]
}

// Next advances to the in-order successor. Advancing the end iterator
// fails with ErrInvalidIterator and moves nothing.
func (it *Iterator[E]) Next() error {
	if it.node == nil || it.node == it.home.end {
		return infra.WrapErrorStack(ErrInvalidIterator)
	}
	it.node = it.node.succ()
	return nil
}

// Prev steps back to the in-order predecessor. Stepping back from the
// first element fails with ErrInvalidIterator and moves nothing.
func (it *Iterator[E]) Prev() error {
	if it.node == nil || it.node == it.home.leftmost {
		return infra.WrapErrorStack(ErrInvalidIterator)
	}
	it.node = it.node.pred()
	return nil
}

// Value copies out the element. Dereferencing the end iterator is a
// programming error and fails fast.
func (it Iterator[E]) Value() E {
	return *it.node.slot.ref()
}

// Ref exposes the stored element in place. The reference stays valid
// across other insertions and erasures, because rebalancing only
// rewires links and never moves elements between nodes.
func (it Iterator[E]) Ref() *E {
	return it.node.slot.ref()
}

// Node exposes the underlying vertex read-only, mainly for the
// validation helpers and tests.
func (it Iterator[E]) Node() RBNode[E] {
	if it.node == nil {
		return nil
	}
	return it.node
}
