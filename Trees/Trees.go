// Package Trees provides self-adjusting (splay) binary search trees
// annotated with subtree sizes. Every traversal finishes by rotating the
// touched node up to the root, so frequently accessed elements stay near
// the top and every operation runs in amortized O(log n) time. The size
// annotations double as an order-statistic index, and whole trees can be
// Split and Merged in the same amortized bound, which makes the trees
// usable both as keyed ordered sets (SplayTree) and as editable
// positional sequences (ImplicitTree).
//
// The trees are defined for exclusive single-threaded ownership and
// provide no internal synchronization. Note in particular that read
// oriented operations such as Find restructure the tree, so they require
// the same exclusive access discipline as mutations.
package Trees

import "golang.org/x/exp/constraints"

// Tree is the contract shared by both splay tree variants. Receivers
// returning a *Node use nil for "absent"; that is a normal outcome, not
// a fault, though the failed traversal may still have rebalanced the
// tree. Passing a node the tree doesn't own, or merging trees that break
// the ordering precondition, is a defect in the caller: such calls panic
// with one of the typed errors below instead of corrupting the
// structure.
type Tree[V any, S constraints.Unsigned] interface {
	//Size of the tree.
	Size() uint
	//Empty reports whether the tree holds no elements.
	Empty() bool
	//Root node of the tree, nil when empty.
	Root() *Node[V, S]
	//RankK is the node with 0-based in-order rank k, splayed to the
	//root. An out-of-range k returns nil and changes nothing.
	RankK(k uint) *Node[V, S]
	//Erase removes n and merges the two remaining halves.
	Erase(n *Node[V, S]) *Node[V, S]
	//Splay moves n to the root of the tree.
	Splay(n *Node[V, S])
	//InOrder returns A closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree. Calling f is
	//like calling "Next()" of iterators: val, valid=f(). The tree must
	//not be modified during the iteration of f.
	InOrder() func() (V, bool)
	//Clear drops every element.
	Clear()
	//Corrupt returns whether the tree has corrupt structures: a wrong
	//subtree size, an inconsistent parent link, or (keyed variant) an
	//ordering violation.
	Corrupt() bool
}

// NotOwnedError is the panic value raised when a node handle is used
// with a tree that does not own it. This includes handles retained
// across a Merge or Split that transferred the subtree to another tree.
type NotOwnedError struct{}

func (NotOwnedError) Error() string {
	return "Trees: node is not owned by this tree"
}

// OrderError is the panic value raised by SplayTree.Merge when the
// receiver's largest key is not strictly less than the argument's
// smallest key.
type OrderError struct{}

func (OrderError) Error() string {
	return "Trees: merged trees are not strictly ordered"
}
