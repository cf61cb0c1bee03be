package Trees

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// ImplicitTree is a splay tree with no key ordering: a node's in-order
// position itself is the addressable key. It shares the node, rotation
// and splay machinery with SplayTree but locates nodes purely by the
// subtree size annotations, which turns the tree into an editable
// sequence with amortized O(log n) positional access, insertion, split
// and merge. Merge concatenates; there is no ordering precondition to
// violate.
// ImplicitTree shouldn't be created directly using struct literal.
type ImplicitTree[V any, S constraints.Unsigned] struct {
	root *Node[V, S]
}

// NewImplicit returns an empty positional tree.
func NewImplicit[V any, S constraints.Unsigned]() *ImplicitTree[V, S] {
	return &ImplicitTree[V, S]{}
}

// ImplicitFrom builds a balanced positional tree holding vs in order.
// This is faster than repeatedly calling Insert.
// Time: O(n)
func ImplicitFrom[V any, S constraints.Unsigned](vs []V) *ImplicitTree[V, S] {
	var build func(s []V, p *Node[V, S]) *Node[V, S]
	build = func(s []V, p *Node[V, S]) *Node[V, S] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &Node[V, S]{v: s[mid], sz: S(len(s)), p: p}
		n.l = build(s[:mid], n)
		n.r = build(s[mid+1:], n)
		return n
	}
	return &ImplicitTree[V, S]{root: build(vs, nil)}
}

// Size [Tree.Size].
// Time: O(1); Space: O(1)
func (u *ImplicitTree[V, S]) Size() uint {
	return uint(size(u.root))
}

// Empty [Tree.Empty].
func (u *ImplicitTree[V, S]) Empty() bool {
	return u.root == nil
}

// Root [Tree.Root].
func (u *ImplicitTree[V, S]) Root() *Node[V, S] {
	return u.root
}

// Splay [Tree.Splay]. n must be owned by u.
func (u *ImplicitTree[V, S]) Splay(n *Node[V, S]) {
	mustOwn(u.root, n)
	n.splay()
	u.root = n
}

// Insert appends v at the end of the sequence by merging a fresh
// singleton, and returns its node.
// Time: amortized O(log n)
func (u *ImplicitTree[V, S]) Insert(v V) *Node[V, S] {
	n := &Node[V, S]{v: v, sz: 1}
	u.root = merge(u.root, n)
	return n
}

// InsertAt places v before the element currently at position i, via a
// rank split and two merges. Positions at or past the end append.
func (u *ImplicitTree[V, S]) InsertAt(i uint, v V) *Node[V, S] {
	right := u.SplitAt(i)
	n := u.Insert(v)
	u.Merge(right)
	return n
}

// RankK [Tree.RankK]: the node at 0-based position k, splayed to the
// root; nil without restructuring when k >= Size().
func (u *ImplicitTree[V, S]) RankK(k uint) *Node[V, S] {
	n := orderStatistic(u.root, S(k))
	if n != nil {
		n.splay()
		u.root = n
	}
	return n
}

// Erase [Tree.Erase]: splay n to the root, detach its children and merge
// them into the new root. Returns the root of the detached right
// subtree; nil when n was the last element. Erasing a node u doesn't own
// panics with NotOwnedError.
func (u *ImplicitTree[V, S]) Erase(n *Node[V, S]) *Node[V, S] {
	u.Splay(n)
	l, r := n.l, n.r
	if l != nil {
		l.p = nil
	}
	if r != nil {
		r.p = nil
	}
	n.l, n.r, n.sz = nil, nil, 0
	u.root = merge(l, r)
	return r
}

// Merge appends o's sequence after u's. After the call o is empty; node
// handles it handed out now belong to u.
func (u *ImplicitTree[V, S]) Merge(o *ImplicitTree[V, S]) {
	u.root = merge(u.root, o.root)
	o.root = nil
}

// SplitLeft splits u at n: n and everything positioned before it stay in
// u, everything after goes into the returned tree. A nil n keeps all
// content in u and returns an empty tree.
func (u *ImplicitTree[V, S]) SplitLeft(n *Node[V, S]) *ImplicitTree[V, S] {
	o := NewImplicit[V, S]()
	if n == nil {
		return o
	}
	u.Splay(n)
	u.root, o.root = splitLeft(u.root)
	return o
}

// SplitRight splits u at n: n and everything positioned after it go into
// the returned tree, everything before stays in u. A nil n keeps all
// content in u and returns an empty tree.
func (u *ImplicitTree[V, S]) SplitRight(n *Node[V, S]) *ImplicitTree[V, S] {
	o := NewImplicit[V, S]()
	if n == nil {
		return o
	}
	u.Splay(n)
	u.root, o.root = splitRight(u.root)
	return o
}

// SplitAt splits off the elements at positions i and beyond into the
// returned tree; u keeps positions [0, i). An i at or past the end
// leaves u unchanged and returns an empty tree.
func (u *ImplicitTree[V, S]) SplitAt(i uint) *ImplicitTree[V, S] {
	return u.SplitRight(u.RankK(i))
}

// Copy returns a structurally identical deep copy sharing no nodes with
// u.
// Time: O(n)
func (u *ImplicitTree[V, S]) Copy() *ImplicitTree[V, S] {
	return &ImplicitTree[V, S]{root: copyTree(u.root)}
}

// Swap exchanges the contents of u and o.
// Time: O(1)
func (u *ImplicitTree[V, S]) Swap(o *ImplicitTree[V, S]) {
	u.root, o.root = o.root, u.root
}

// Clear [Tree.Clear]: drops every element, unlinking the nodes so
// outstanding handles go inert.
func (u *ImplicitTree[V, S]) Clear() {
	tearDown(u.root)
	u.root = nil
}

// String renders the in-order parenthesized diagnostic dump of the tree.
func (u *ImplicitTree[V, S]) String() string {
	var b strings.Builder
	writeSubtree(&b, u.root)
	return b.String()
}

// InOrder [Tree.InOrder]. Iterates by successor links from the leftmost
// node; the tree must not be modified during iteration.
func (u *ImplicitTree[V, S]) InOrder() func() (V, bool) {
	cur := u.root
	if cur != nil {
		cur = cur.Min()
	}
	return func() (V, bool) {
		if cur == nil {
			return *new(V), false
		}
		v := cur.v
		cur = cur.Next()
		return v, true
	}
}

// Corrupt [Tree.Corrupt]: re-verifies root isolation, the subtree size
// sums and the bidirectional parent/child links over the whole tree.
// There is no ordering to check in the implicit variant.
func (u *ImplicitTree[V, S]) Corrupt() bool {
	if u.root == nil {
		return false
	}
	return u.root.p != nil || corrupt(u.root)
}
