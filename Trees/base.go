package Trees

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// The engine shared by SplayTree and ImplicitTree. Everything here
// operates on detached subtree roots; the containers only wrap these
// with ownership bookkeeping and key/rank addressing.

// mustOwn panics with NotOwnedError unless n is a node of the tree whose
// current root is root.
func mustOwn[V any, S constraints.Unsigned](root, n *Node[V, S]) {
	if n == nil || n.Root() != root {
		panic(NotOwnedError{})
	}
}

// merge joins the subtrees under l and r, where every element of l
// precedes every element of r and both are detached roots. Either side
// may be nil, in which case the other is returned unchanged. Otherwise
// the rightmost node of l is splayed to l's root (it then has no right
// child) and r is attached as its right subtree.
func merge[V any, S constraints.Unsigned](l, r *Node[V, S]) *Node[V, S] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	m := l.Max()
	m.splay()
	m.r = r
	r.p = m
	m.sz += r.sz
	return m
}

// splitLeft detaches root's right subtree: root and everything before it
// stay in the returned left part, everything after goes right. root must
// be a detached root.
func splitLeft[V any, S constraints.Unsigned](root *Node[V, S]) (*Node[V, S], *Node[V, S]) {
	r := root.r
	root.r = nil
	if r != nil {
		r.p = nil
		root.sz -= r.sz
	}
	return root, r
}

// splitRight detaches root's left subtree: root and everything after it
// go to the returned right part, everything before goes left.
func splitRight[V any, S constraints.Unsigned](root *Node[V, S]) (*Node[V, S], *Node[V, S]) {
	l := root.l
	root.l = nil
	if l != nil {
		l.p = nil
		root.sz -= l.sz
	}
	return l, root
}

// findCandidate descends from root comparing keys and returns either the
// exact match or the last node visited before the search would have
// entered an absent child. Only nil when root is nil.
func findCandidate[K, V any, S constraints.Unsigned](root *Node[V, S], k K, lt func(K, K) bool, key func(V) K) *Node[V, S] {
	var cand *Node[V, S]
	for root != nil {
		cand = root
		if lt(k, key(root.v)) {
			root = root.l
		} else if lt(key(root.v), k) {
			root = root.r
		} else {
			break
		}
	}
	return cand
}

// lowerBound is the leftmost node whose key is not less than k, nil when
// no such node exists.
func lowerBound[K, V any, S constraints.Unsigned](root *Node[V, S], k K, lt func(K, K) bool, key func(V) K) *Node[V, S] {
	var b *Node[V, S]
	for root != nil {
		if !lt(key(root.v), k) {
			b = root
			root = root.l
		} else {
			root = root.r
		}
	}
	return b
}

// upperBound is the leftmost node whose key is strictly greater than k,
// nil when no such node exists.
func upperBound[K, V any, S constraints.Unsigned](root *Node[V, S], k K, lt func(K, K) bool, key func(V) K) *Node[V, S] {
	var b *Node[V, S]
	for root != nil {
		if lt(k, key(root.v)) {
			b = root
			root = root.l
		} else {
			root = root.r
		}
	}
	return b
}

// orderStatistic finds the node with 0-based in-order rank k using the
// size annotations: descend left while k fits in the left subtree, stop
// when k equals the left size, otherwise discount the left subtree plus
// the current node and descend right. nil when k >= size(root), without
// touching the tree.
func orderStatistic[V any, S constraints.Unsigned](root *Node[V, S], k S) *Node[V, S] {
	if root == nil || k >= root.sz {
		return nil
	}
	for {
		if ls := size(root.l); k < ls {
			root = root.l
		} else if k == ls {
			return root
		} else {
			k -= ls + 1
			root = root.r
		}
	}
}

// copyTree clones the subtree under root into fresh nodes with identical
// values and size annotations, sharing nothing with the source. An
// explicit work list is used instead of recursion so that a
// not-yet-splayed adversarial chain can't exhaust the call stack.
func copyTree[V any, S constraints.Unsigned](root *Node[V, S]) *Node[V, S] {
	if root == nil {
		return nil
	}
	cp := &Node[V, S]{v: root.v, sz: root.sz}
	st := [][2]*Node[V, S]{{root, cp}}
	for len(st) > 0 {
		src, dst := st[len(st)-1][0], st[len(st)-1][1]
		st = st[:len(st)-1]
		if src.l != nil {
			dst.l = &Node[V, S]{v: src.l.v, sz: src.l.sz, p: dst}
			st = append(st, [2]*Node[V, S]{src.l, dst.l})
		}
		if src.r != nil {
			dst.r = &Node[V, S]{v: src.r.v, sz: src.r.sz, p: dst}
			st = append(st, [2]*Node[V, S]{src.r, dst.r})
		}
	}
	return cp
}

// tearDown unlinks every node reachable from root so outstanding handles
// turn inert and the collector sees independent garbage. Work-list based
// for the same reason as copyTree.
func tearDown[V any, S constraints.Unsigned](root *Node[V, S]) {
	if root == nil {
		return
	}
	st := append(make([]*Node[V, S], 0, 16), root)
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if n.l != nil {
			st = append(st, n.l)
		}
		if n.r != nil {
			st = append(st, n.r)
		}
		n.p, n.l, n.r, n.sz = nil, nil, nil, 0
	}
}

// writeSubtree renders the in-order parenthesized dump used by the
// String methods: "(" left "[v=…, s=…]" right ")". Diagnostic only, not
// a stable format.
func writeSubtree[V any, S constraints.Unsigned](b *strings.Builder, n *Node[V, S]) {
	b.WriteByte('(')
	if n != nil {
		writeSubtree(b, n.l)
		fmt.Fprintf(b, "[v=%v, s=%d]", n.v, n.sz)
		writeSubtree(b, n.r)
	}
	b.WriteByte(')')
}

// corrupt re-verifies the size and bidirectional link invariants of the
// subtree under n. Recursive; depth stays shallow on splayed trees and
// this is diagnostic code anyway.
func corrupt[V any, S constraints.Unsigned](n *Node[V, S]) bool {
	if n == nil {
		return false
	}
	if n.sz != size(n.l)+size(n.r)+1 {
		return true
	}
	if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
		return true
	}
	return corrupt(n.l) || corrupt(n.r)
}
