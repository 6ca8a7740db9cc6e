package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

func isNilLeaf[E any](node RBNode[E]) bool {
	return node == nil || !node.HasValue()
}

func isRedNode[E any](node RBNode[E]) bool {
	return !isNilLeaf[E](node) && node.Color() == Red
}

func isRootNode[E any](node RBNode[E]) bool {
	return !isNilLeaf[E](node) && isNilLeaf[E](node.Parent())
}

func blackDepthTo[E any](target, to RBNode[E]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isNilLeaf[E](aux) || aux.Color() == Black {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities, used by the tests after every
// mutation.

// RedViolationValidate runs an inorder traversal and reports the first
// red node with a red parent or child, or a red root.
func RedViolationValidate[E any](tree RBTree[E]) error {
	aux := tree.Root()
	if aux == nil {
		return nil
	}
	if isRedNode[E](aux) {
		return errors.New("rbtree red violation: red root")
	}

	stack := make([]RBNode[E], 0, tree.Len()>>1)
	for ; !isNilLeaf[E](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; isRedNode[E](aux) {
			if (!isRootNode[E](aux) && isRedNode[E](aux.Parent())) ||
				isRedNode[E](aux.Left()) || isRedNode[E](aux.Right()) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all nodes adjacent to at least one nil leaf.
func bfsLeaves[E any](tree RBTree[E]) []RBNode[E] {
	aux := tree.Root()
	if isNilLeaf[E](aux) {
		return nil
	}

	leaves := make([]RBNode[E], 0, tree.Len()>>1+1)
	queue := make([]RBNode[E], 0, tree.Len()>>1)
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ isNilLeaf[E](l) || isNilLeaf[E](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[E](l) {
			queue = append(queue, l)
		}
		if !isNilLeaf[E](r) {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

// BlackViolationValidate checks that every path from the root to a nil
// descendant passes through the same number of black nodes.
func BlackViolationValidate[E any](tree RBTree[E]) error {
	leaves := bfsLeaves[E](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[E](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[E](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// OrderViolationValidate walks begin to end and reports the first pair
// out of strictly increasing order under lt, or a mismatch between the
// walked element count and Len.
func OrderViolationValidate[E any](tree RBTree[E], lt LessFn[E]) error {
	var (
		prev    E
		hasPrev bool
		count   int64
		broken  bool
	)
	tree.Foreach(func(idx int64, color RBColor, v E) bool {
		if hasPrev && !lt(prev, v) {
			broken = true
			return false
		}
		prev, hasPrev = v, true
		count++
		return true
	})
	if broken {
		return errors.New("rbtree order violation")
	}
	if count != tree.Len() {
		return fmt.Errorf("rbtree size violation: len %d, walked %d", tree.Len(), count)
	}
	return nil
}

// Audit bundles all rule validations into one error.
func Audit[E any](tree RBTree[E], lt LessFn[E]) error {
	return multierr.Combine(
		RedViolationValidate[E](tree),
		BlackViolationValidate[E](tree),
		OrderViolationValidate[E](tree, lt),
	)
}
