package Trees

import "golang.org/x/exp/constraints"

// A node in a splay tree. The zero value is meaningless; nodes are
// created by the owning tree and handed out as handles. A node belongs
// to exactly one tree at a time: its parent link is a plain
// back-reference used for navigation and orientation tests, while the
// child links own their subtrees.
type Node[V any, S constraints.Unsigned] struct {
	v       V
	sz      S
	p, l, r *Node[V, S]
}

// Value stored in the node.
func (u *Node[V, S]) Value() V { return u.v }

// Ptr to the value stored in the node. Mutating the value through Ptr
// corrupts a keyed tree's ordering; it is meant for ImplicitTree, where
// values carry no ordering.
func (u *Node[V, S]) Ptr() *V { return &u.v }

// Size of the subtree rooted at u, including u itself.
func (u *Node[V, S]) Size() S { return u.sz }

func (u *Node[V, S]) Left() *Node[V, S]   { return u.l }
func (u *Node[V, S]) Right() *Node[V, S]  { return u.r }
func (u *Node[V, S]) Parent() *Node[V, S] { return u.p }

// IsRoot reports whether u has no parent.
func (u *Node[V, S]) IsRoot() bool { return u.p == nil }

// IsLeftChild reports whether u is the left child of its parent.
func (u *Node[V, S]) IsLeftChild() bool { return u.p != nil && u.p.l == u }

// IsRightChild reports whether u is the right child of its parent.
func (u *Node[V, S]) IsRightChild() bool { return u.p != nil && u.p.r == u }

// Root climbs the parent links to the parentless ancestor of u.
// Time: O(distance to root); Space: O(1)
func (u *Node[V, S]) Root() *Node[V, S] {
	for u.p != nil {
		u = u.p
	}
	return u
}

// Min is the leftmost node of u's subtree.
func (u *Node[V, S]) Min() *Node[V, S] {
	for u.l != nil {
		u = u.l
	}
	return u
}

// Max is the rightmost node of u's subtree.
func (u *Node[V, S]) Max() *Node[V, S] {
	for u.r != nil {
		u = u.r
	}
	return u
}

// Next is the in-order successor of u, nil if u is the last node:
// descend into the right subtree if present, otherwise climb until
// arriving from a left child.
func (u *Node[V, S]) Next() *Node[V, S] {
	if u.r != nil {
		return u.r.Min()
	}
	for u.p != nil && !u.IsLeftChild() {
		u = u.p
	}
	return u.p
}

// Prev is the in-order predecessor of u, nil if u is the first node.
func (u *Node[V, S]) Prev() *Node[V, S] {
	if u.l != nil {
		return u.l.Max()
	}
	for u.p != nil && !u.IsRightChild() {
		u = u.p
	}
	return u.p
}

// size treats a nil subtree as 0.
func size[V any, S constraints.Unsigned](u *Node[V, S]) S {
	if u == nil {
		return 0
	}
	return u.sz
}

// update recomputes sz from the children. Children first, then parents.
func (u *Node[V, S]) update() {
	u.sz = size(u.l) + size(u.r) + 1
}

// rotateLeft promotes u, which must be the left child of its parent,
// into its parent's position. The displaced right branch of u is
// reattached as the parent's left child, keeping the in-order sequence
// identical. Exactly one parent/child edge above u changes.
// Time: O(1); Space: O(1)
func (u *Node[V, S]) rotateLeft() {
	p, b, g := u.p, u.r, u.p.p
	if g != nil {
		if p.IsLeftChild() {
			g.l = u
		} else {
			g.r = u
		}
	}
	u.p = g
	u.r = p
	p.p = u
	p.l = b
	if b != nil {
		b.p = p
	}
	p.update()
	u.update()
}

// rotateRight mirrors rotateLeft for a right child.
// Time: O(1); Space: O(1)
func (u *Node[V, S]) rotateRight() {
	p, b, g := u.p, u.l, u.p.p
	if g != nil {
		if p.IsLeftChild() {
			g.l = u
		} else {
			g.r = u
		}
	}
	u.p = g
	u.l = p
	p.p = u
	p.r = b
	if b != nil {
		b.p = p
	}
	p.update()
	u.update()
}

// rotate promotes u one level toward the root, dispatching on u's
// orientation. Calling rotate on a parentless node is a contract
// violation.
func (u *Node[V, S]) rotate() {
	if u.IsLeftChild() {
		u.rotateLeft()
	} else if u.IsRightChild() {
		u.rotateRight()
	} else {
		panic("Trees: rotate on a parentless node")
	}
}

// splay rotates u up until it becomes the root of its tree: a single
// rotation when the parent is the root (zig), two rotations of u when u
// and its parent are children on opposite sides (zig-zag), and a parent
// rotation followed by a rotation of u on a same-side chain (zig-zig).
// The case order must stay exactly this; reordering keeps splay correct
// but breaks the amortized O(log n) bound.
func (u *Node[V, S]) splay() {
	for u.p != nil {
		if p := u.p; p.p == nil {
			u.rotate()
		} else if u.IsLeftChild() != p.IsLeftChild() {
			u.rotate()
			u.rotate()
		} else {
			p.rotate()
			u.rotate()
		}
	}
}
