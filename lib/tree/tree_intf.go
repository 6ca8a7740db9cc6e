package tree

import (
	"errors"

	"github.com/vectorhx/xtree/lib/infra"
)

// ErrInvalidIterator reports an iterator misuse: stepping past the end
// sentinel, stepping before the first element, or erasing through an
// iterator that denotes the end sentinel or belongs to another tree.
// It is a programmer-error signal, raised before any mutation happens.
var ErrInvalidIterator = errors.New("[rbtree] invalid iterator")

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (color RBColor) String() string {
	if color == Red {
		return "red"
	}
	return "black"
}

// RBDirection tells which side of its parent a node hangs from. The real
// root hangs from the left of the end sentinel, so every reachable node
// has a direction and the insert/erase repair passes share one body,
// parameterized by side, instead of mirrored left/right copies.
type RBDirection int8

const (
	Left  RBDirection = -1
	Right RBDirection = 1
)

func (dir RBDirection) opposite() RBDirection {
	return -dir
}

func (dir RBDirection) String() string {
	if dir == Left {
		return "left"
	}
	return "right"
}

// LessFn is a strict-less relation inducing a total order over E.
// Two values are equivalent iff neither compares less than the other;
// the containers never require an equality operator.
type LessFn[E any] func(a, b E) bool

type RBNode[E any] interface {
	Value() E
	HasValue() bool
	Color() RBColor
	Left() RBNode[E]
	Right() RBNode[E]
	Parent() RBNode[E]
}

// RBTree is an ordered set of unique elements with logarithmic insert,
// erase and lookup, and amortized O(1)-step bidirectional iteration in
// sorted order. It is not safe for concurrent mutation; callers must
// guarantee exclusive access for the duration of any mutating call.
type RBTree[E any] interface {
	Len() int64
	Empty() bool
	Root() RBNode[E]
	Insert(v E) (Iterator[E], bool)
	Erase(it Iterator[E]) error
	Find(probe E) Iterator[E]
	Begin() Iterator[E]
	End() Iterator[E]
	Clear()
	Clone() RBTree[E]
	Foreach(action func(idx int64, color RBColor, v E) bool)
	Release()
}

// New builds an empty tree ordered by the strict-less relation lt.
func New[E any](lt LessFn[E]) RBTree[E] {
	if lt == nil {
		// impossible to order anything without a comparator
		panic( /* debug assertion */ "[rbtree] nil less function")
	}
	tree := &rbTree[E]{lt: lt}
	tree.init()
	return tree
}

// NewOrdered builds an empty tree over an ordered key type using its
// natural ordering.
func NewOrdered[K infra.OrderedKey]() RBTree[K] {
	return New[K](infra.OrderedKeyLess[K])
}
