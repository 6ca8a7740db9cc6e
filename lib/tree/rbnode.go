package tree

// valSlot owns zero or one instance of the stored value. Every node
// embeds one; only the end sentinel keeps its slot empty, which is what
// lets a single node type serve both ordinary elements and the sentinel
// without demanding a default-constructible value type.
type valSlot[E any] struct {
	val      E
	occupied bool
}

func (slot *valSlot[E]) has() bool {
	return slot.occupied
}

// set constructs the value in place, dropping any prior value.
func (slot *valSlot[E]) set(v E) {
	slot.val, slot.occupied = v, true
}

func (slot *valSlot[E]) reset() {
	var zero E
	slot.val, slot.occupied = zero, false
}

// ref is only called where occupancy is already guaranteed by the
// caller's control flow.
func (slot *valSlot[E]) ref() *E {
	if !slot.occupied {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] deref of an empty value slot")
	}
	return &slot.val
}

type rbNode[E any] struct {
	parent *rbNode[E]
	left   *rbNode[E]
	right  *rbNode[E]
	slot   valSlot[E]
	color  RBColor
}

func (node *rbNode[E]) Color() RBColor {
	return node.color
}

func (node *rbNode[E]) Value() E {
	return *node.slot.ref()
}

func (node *rbNode[E]) HasValue() bool {
	if node == nil {
		return false
	}
	return node.slot.has()
}

func (node *rbNode[E]) Left() RBNode[E] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[E]) Right() RBNode[E] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[E]) Parent() RBNode[E] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

// The end sentinel is the only node whose slot stays empty.
func (node *rbNode[E]) isSentinel() bool {
	return !node.slot.has()
}

func (node *rbNode[E]) child(dir RBDirection) *rbNode[E] {
	switch dir {
	case Left:
		return node.left
	case Right:
		return node.right
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown child direction")
	}
}

func (node *rbNode[E]) setChild(dir RBDirection, child *rbNode[E]) {
	switch dir {
	case Left:
		node.left = child
	case Right:
		node.right = child
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown child direction")
	}
}

// direction reports which side of its parent the node hangs from.
// The real root is the left child of the end sentinel, so it reports
// Left like any other left child. Never called on the sentinel itself.
func (node *rbNode[E]) direction() RBDirection {
	if node.parent == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] the sentinel has no direction")
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[E]) sibling() *rbNode[E] {
	return node.parent.child(node.direction().opposite())
}

// replaceWith unplugs the node from its parent and plugs the
// replacement in. The replacement may be nil.
func (node *rbNode[E]) replaceWith(replacement *rbNode[E]) {
	node.parent.setChild(node.direction(), replacement)
	if replacement != nil {
		replacement.parent = node.parent
	}
}

func (node *rbNode[E]) minimum() *rbNode[E] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[E]) maximum() *rbNode[E] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// succ is the node that immediately follows this node in sorted order.
// Climbing past the maximum lands on the end sentinel, because the real
// root hangs from the sentinel's left.
func (node *rbNode[E]) succ() *rbNode[E] {
	if node.right != nil {
		return node.right.minimum()
	}
	aux := node
	for aux.direction() == Right {
		aux = aux.parent
	}
	return aux.parent
}

// pred is the mirror image of succ. The caller must stop at the
// tree's minimum; climbing further would walk off the sentinel.
func (node *rbNode[E]) pred() *rbNode[E] {
	if node.left != nil {
		return node.left.maximum()
	}
	aux := node
	for aux.direction() == Left {
		aux = aux.parent
	}
	return aux.parent
}

// insert probes downward from this node and attaches z as a red leaf at
// the empty slot the order dictates. It keeps the order but makes no
// attempt to repair balance. When a node equivalent to z is already
// present it is returned instead and the tree is left untouched.
func (node *rbNode[E]) insert(z *rbNode[E], lt LessFn[E]) *rbNode[E] {
	zv := z.slot.ref()
	for aux := node; ; {
		av := aux.slot.ref()
		less := lt(*zv, *av)
		if !less && !lt(*av, *zv) {
			return aux
		}
		dir := Right
		if less {
			dir = Left
		}
		next := aux.child(dir)
		if next == nil {
			z.parent = aux
			z.color = Red
			aux.setChild(dir, z)
			return nil
		}
		aux = next
	}
}

// clone makes a clean copy of the subtree, preserving topology and
// colors. A faithful clone of a valid red-black tree is itself valid,
// so no rebalancing is ever needed afterwards.
func (node *rbNode[E]) clone(parent *rbNode[E]) *rbNode[E] {
	aux := &rbNode[E]{
		parent: parent,
		slot:   node.slot,
		color:  node.color,
	}
	if node.left != nil {
		aux.left = node.left.clone(aux)
	}
	if node.right != nil {
		aux.right = node.right.clone(aux)
	}
	return aux
}
