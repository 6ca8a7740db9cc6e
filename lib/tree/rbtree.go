package tree

import (
	"github.com/vectorhx/xtree/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// rbtree properties:
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
//
// The node graph is rooted at a permanent end sentinel whose left child
// is the real root (nil when empty). The sentinel never holds a value,
// doubles as the past-the-end iterator position, and is created once at
// construction. A cached leftmost pointer keeps Begin at O(1).
type rbTree[E any] struct {
	end      *rbNode[E]
	leftmost *rbNode[E]
	lt       LessFn[E]
	size     int64
}

func (tree *rbTree[E]) init() {
	tree.end = &rbNode[E]{}
	tree.leftmost = tree.end
	tree.size = 0
}

func (tree *rbTree[E]) Len() int64 {
	return tree.size
}

func (tree *rbTree[E]) Empty() bool {
	return tree.size == 0
}

// root is the left child of the end sentinel. Do not use this to swap
// the root node in; use setRoot, which also fixes the links and color.
func (tree *rbTree[E]) root() *rbNode[E] {
	return tree.end.left
}

func (tree *rbTree[E]) Root() RBNode[E] {
	if tree.end.left == nil {
		return nil
	}
	return tree.end.left
}

func (tree *rbTree[E]) setRoot(node *rbNode[E]) {
	tree.end.left = node
	node.parent = tree.end
	node.color = Black
}

/*
		 |                         |
		 X                         S
		/ \      rotate(X, L)     / \
	   L   S     ============>   X   Sd
		  / \    <============  / \
		Sc   Sd  rotate(S, R)  L   Sc
*/
func (tree *rbTree[E]) rotate(x *rbNode[E], dir RBDirection) {
	y := x.child(dir.opposite())
	if y == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] rotate with no child to pull up")
	}
	x.setChild(dir.opposite(), y.child(dir))
	if y.child(dir) != nil {
		y.child(dir).parent = x
	}
	if x == tree.root() {
		tree.setRoot(y)
	} else {
		x.replaceWith(y)
	}
	y.setChild(dir, x)
	x.parent = y
}

// Insert places v into the tree and reports (iterator to it, true).
// When an equivalent element is already present no mutation occurs and
// the candidate is dropped: the result is (iterator to the incumbent,
// false).
func (tree *rbTree[E]) Insert(v E) (Iterator[E], bool) {
	z := &rbNode[E]{}
	z.slot.set(v)

	if /* i1 */ tree.root() == nil {
		tree.setRoot(z)
		tree.leftmost = z
		tree.size++
		return Iterator[E]{node: z, home: tree}, true
	}

	if dup := tree.root().insert(z, tree.lt); dup != nil {
		// z is discarded; no tree state was touched on this path.
		return Iterator[E]{node: dup, home: tree}, false
	}

	// Trick borrowed from libc++: insertion only ever creates leaves,
	// so if the old leftmost node grew a left child, it can only be
	// the fresh node, which is by construction the new minimum.
	if tree.leftmost.left != nil {
		tree.leftmost = z
	}
	tree.insertFixup(z)
	tree.root().color = Black
	tree.size++
	return Iterator[E]{node: z, home: tree}, true
}

/*
New node X is red on arrival.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: X's parent P is black: nothing to repair.

im2: Both the parent P and the uncle U are red, grandpa G is black.
(red-violation) Repainting G red may re-violate higher up, so the repair
climbs to G. G stays black when it is the root.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im3: P is red, the uncle U is black, and X sits on the opposite side
from P (a zig-zag). Rotate at P toward P's side, then fall through to
im4 with the old P in the child position.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im4: P is red, U is black, X on the same side as P. Recolor and rotate
at G away from P's side. This single pass restores every property.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[E]) insertFixup(x *rbNode[E]) {
	for {
		if /* im1 */ x.parent.color != Red {
			return
		}
		// A red parent is neither the sentinel nor the root, so the
		// grandparent is a real node.
		pDir := x.parent.direction()
		gp := x.parent.parent
		uncle := gp.child(pDir.opposite())

		if /* im2 */ uncle != nil && uncle.color == Red {
			x.parent.color = Black
			uncle.color = Black
			if gp == tree.root() {
				gp.color = Black
			} else {
				gp.color = Red
			}
			x = gp
			continue
		}

		if /* im3 */ pDir != x.direction() {
			x = x.parent
			tree.rotate(x, pDir)
		}
		/* im4 */
		x.parent.color = Black
		gp.color = Red
		tree.rotate(gp, pDir.opposite())
		return
	}
}

// Find walks from the real root using the two-comparison trichotomy and
// returns an iterator to the equivalent element, or End when the probe
// is absent or the tree is empty.
func (tree *rbTree[E]) Find(probe E) Iterator[E] {
	for aux := tree.root(); aux != nil; {
		av := aux.slot.ref()
		if tree.lt(probe, *av) {
			aux = aux.left
		} else if tree.lt(*av, probe) {
			aux = aux.right
		} else {
			return Iterator[E]{node: aux, home: tree}
		}
	}
	return tree.End()
}

// Erase removes the element the iterator denotes. Only that iterator is
// invalidated; every other one stays valid because the repair pass only
// rewires links and never reallocates nodes.
func (tree *rbTree[E]) Erase(it Iterator[E]) error {
	if it.node == nil || it.node == tree.end || it.home != tree {
		return infra.WrapErrorStack(ErrInvalidIterator)
	}
	tree.deleteNode(it.node)
	// Unlink the detached node so nothing dangling keeps the rest of
	// the graph alive through a surviving reference to it.
	it.node.parent, it.node.left, it.node.right = nil, nil, nil
	it.node.slot.reset()
	tree.size--
	return nil
}

/*
r1: The target has two children. The spliced node y is the minimum of
the right subtree (the in-order successor), which has at most one child.
After unplugging y, y is transplanted into the target's structural
position, taking over its links and color, so the target's identity is
replaced while the shape is preserved.

r2: The target has at most one child and is spliced out directly.

Removing a black y introduces a black-height deficit at the position of
its sole child. A real child absorbs it by turning black; an absent one
hands the repair to the recorded sibling-to-be.
*/
func (tree *rbTree[E]) deleteNode(node *rbNode[E]) {
	if node == tree.leftmost {
		tree.leftmost = node.succ()
	}

	y := node
	if /* r1 */ node.left != nil && node.right != nil {
		y = node.right.minimum()
	}
	childY := y.left
	if childY == nil {
		childY = y.right
	}
	var neighborY *rbNode[E]
	if y != tree.root() {
		neighborY = y.sibling()
	}

	y.replaceWith(childY)
	shouldFixup := y.color == Black && tree.root() != nil

	if node != y {
		node.replaceWith(y)
		y.left = node.left
		y.left.parent = y
		y.right = node.right
		if y.right != nil {
			y.right.parent = y
		}
		y.color = node.color
	}

	if shouldFixup {
		if childY != nil {
			childY.color = Black
		} else {
			tree.deleteFixup(neighborY)
		}
	}
}

/*
The fix-up operates on the known sibling S of a doubly black position X.
Sc is S's child on X's side (near), Sd the one away from X (far).

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

rm1: S is red, so P, Sc and Sd must be black. Rotate at P toward the
deficit side, repaint, re-derive the sibling and continue below.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Both of S's children are black. Repaint S red. If P is red or the
root, turning P black settles the deficit; otherwise the deficit climbs
one level and the repair recurses on P's sibling.

	  {P}             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: S is black with a red near child and a black far child. Rotate at
S away from the deficit, repaint, re-derive; falls through to rm4.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm4: S is black with a red far child. S takes P's former color, P and
Sd turn black, rotate at P toward the deficit. This terminates.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[E]) deleteFixup(neighbor *rbNode[E]) {
	for {
		// The doubly black position sits opposite its sibling.
		dir := neighbor.direction().opposite()

		if /* rm1 */ neighbor.color == Red {
			neighbor.color = Black
			neighbor.parent.color = Red
			tree.rotate(neighbor.parent, dir)
			neighbor = neighbor.child(dir).child(dir.opposite())
		}

		if /* rm2 */ isNilOrBlack(neighbor.left) && isNilOrBlack(neighbor.right) {
			neighbor.color = Red
			parent := neighbor.parent
			if parent == tree.root() || parent.color == Red {
				parent.color = Black
				return
			}
			neighbor = parent.sibling()
			continue
		}

		if /* rm3 */ isNilOrBlack(neighbor.child(dir.opposite())) {
			neighbor.child(dir).color = Black
			neighbor.color = Red
			tree.rotate(neighbor, dir.opposite())
			neighbor = neighbor.parent
		}
		/* rm4 */
		neighbor.color = neighbor.parent.color
		neighbor.parent.color = Black
		neighbor.child(dir.opposite()).color = Black
		tree.rotate(neighbor.parent, dir)
		return
	}
}

func isNilOrBlack[E any](node *rbNode[E]) bool {
	return node == nil || node.color == Black
}

func (tree *rbTree[E]) Begin() Iterator[E] {
	return Iterator[E]{node: tree.leftmost, home: tree}
}

func (tree *rbTree[E]) End() Iterator[E] {
	return Iterator[E]{node: tree.end, home: tree}
}

// Foreach runs an in-order traversal, stopping early when the action
// returns false.
func (tree *rbTree[E]) Foreach(action func(idx int64, color RBColor, v E) bool) {
	aux := tree.root()
	if aux == nil {
		return
	}

	stack := make([]*rbNode[E], 0, tree.size>>1)
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		if aux = stack[size-1]; !action(idx, aux.color, *aux.slot.ref()) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Clone deep-copies the whole node graph from the sentinel down,
// preserving topology and colors, and recomputes the leftmost cache as
// the clone's minimum. The copy shares nothing structural with the
// original.
func (tree *rbTree[E]) Clone() RBTree[E] {
	cp := &rbTree[E]{
		lt:   tree.lt,
		size: tree.size,
	}
	cp.end = tree.end.clone(nil)
	cp.leftmost = cp.end.minimum()
	return cp
}

// Release tears down every real node iteratively, children unlinked
// before their parent and never touching a node's parent link during
// its own teardown. The sentinel survives; the tree is empty and ready
// for reuse afterwards.
func (tree *rbTree[E]) Release() {
	aux := tree.root()
	tree.end.left = nil
	tree.leftmost = tree.end
	tree.size = 0
	if aux == nil {
		return
	}

	stack := make([]*rbNode[E], 0, 8)
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		aux.slot.reset()
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Clear reinitializes to the empty state.
func (tree *rbTree[E]) Clear() {
	tree.Release()
}
