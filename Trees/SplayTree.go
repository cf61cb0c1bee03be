package Trees

import (
	"cmp"
	"strings"

	"golang.org/x/exp/constraints"
)

// SplayTree is an ordered binary search tree with no repeated keys. It
// maintains balance by splaying the accessed node to the root after
// every traversal, hit or miss, which bounds all operations by amortized
// O(log n) over any operation sequence even though a single call may
// cost more. K is the key type the ordering is defined on, V is the
// stored value type, and S is the unsigned type holding the subtree size
// counters; S should be a wide upper bound for the size of the tree,
// since ranks passed as uint are converted to S.
// SplayTree shouldn't be created directly using struct literal.
type SplayTree[K, V any, S constraints.Unsigned] struct {
	root *Node[V, S]
	lt   func(K, K) bool
	key  func(V) K
}

// New returns an empty SplayTree over an ordered value type, using the
// values themselves as keys under <.
func New[V cmp.Ordered, S constraints.Unsigned]() *SplayTree[V, V, S] {
	return NewFunc[V, V, S](func(a, b V) bool { return a < b }, func(v V) V { return v })
}

// NewFunc returns an empty SplayTree using the given strict-less
// comparator over keys extracted from values by keyOf. Any pair with
// strict-weak-ordering semantics is valid; two keys are considered equal
// when neither compares less than the other.
func NewFunc[K, V any, S constraints.Unsigned](lessThan func(K, K) bool, keyOf func(V) K) *SplayTree[K, V, S] {
	return &SplayTree[K, V, S]{lt: lessThan, key: keyOf}
}

// From builds a SplayTree by inserting the elements of vs in order.
// Values with duplicate keys are dropped.
func From[V cmp.Ordered, S constraints.Unsigned](vs []V) *SplayTree[V, V, S] {
	u := New[V, S]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Size [Tree.Size].
// Time: O(1); Space: O(1)
func (u *SplayTree[K, V, S]) Size() uint {
	return uint(size(u.root))
}

// Empty [Tree.Empty].
func (u *SplayTree[K, V, S]) Empty() bool {
	return u.root == nil
}

// Root [Tree.Root].
func (u *SplayTree[K, V, S]) Root() *Node[V, S] {
	return u.root
}

// Splay [Tree.Splay]. n must be owned by u.
func (u *SplayTree[K, V, S]) Splay(n *Node[V, S]) {
	mustOwn(u.root, n)
	n.splay()
	u.root = n
}

// Insert v as a new leaf found by ordinary binary search descent, bump
// the size counter of every strict ancestor, then splay the new node to
// the root. If the extracted key is already present the tree is left
// untouched and Insert returns (nil, false).
// Time: amortized O(log n)
func (u *SplayTree[K, V, S]) Insert(v V) (*Node[V, S], bool) {
	if u.root == nil {
		u.root = &Node[V, S]{v: v, sz: 1}
		return u.root, true
	}
	k := u.key(v)
	cur := u.root
	for {
		if u.lt(k, u.key(cur.v)) {
			if cur.l == nil {
				cur.l = &Node[V, S]{v: v, sz: 1, p: cur}
				cur = cur.l
				break
			}
			cur = cur.l
		} else if u.lt(u.key(cur.v), k) {
			if cur.r == nil {
				cur.r = &Node[V, S]{v: v, sz: 1, p: cur}
				cur = cur.r
				break
			}
			cur = cur.r
		} else {
			return nil, false
		}
	}
	for p := cur.p; p != nil; p = p.p {
		p.sz++
	}
	cur.splay()
	u.root = cur
	return cur, true
}

// Find the node whose key equals k, nil when absent. The last node
// visited is splayed to the root even on a miss, so a negative lookup
// still restructures the tree; use Has for a structurally read-only
// probe.
// Time: amortized O(log n)
func (u *SplayTree[K, V, S]) Find(k K) *Node[V, S] {
	cand := findCandidate(u.root, k, u.lt, u.key)
	if cand == nil {
		return nil
	}
	cand.splay()
	u.root = cand
	if u.lt(k, u.key(cand.v)) || u.lt(u.key(cand.v), k) {
		return nil
	}
	return cand
}

// Has reports whether key k is present without restructuring the tree.
// Time: O(D); Space: O(1)
func (u *SplayTree[K, V, S]) Has(k K) bool {
	for cur := u.root; cur != nil; {
		if u.lt(k, u.key(cur.v)) {
			cur = cur.l
		} else if u.lt(u.key(cur.v), k) {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// LowerBound is the first node whose key is not less than k, splayed to
// the root; nil when every key compares less than k.
func (u *SplayTree[K, V, S]) LowerBound(k K) *Node[V, S] {
	b := lowerBound(u.root, k, u.lt, u.key)
	if b != nil {
		b.splay()
		u.root = b
	}
	return b
}

// UpperBound is the first node whose key is strictly greater than k,
// splayed to the root; nil when no key compares greater than k.
func (u *SplayTree[K, V, S]) UpperBound(k K) *Node[V, S] {
	b := upperBound(u.root, k, u.lt, u.key)
	if b != nil {
		b.splay()
		u.root = b
	}
	return b
}

// RankK [Tree.RankK]: the node with 0-based in-order rank k, splayed to
// the root; nil without restructuring when k >= Size().
func (u *SplayTree[K, V, S]) RankK(k uint) *Node[V, S] {
	n := orderStatistic(u.root, S(k))
	if n != nil {
		n.splay()
		u.root = n
	}
	return n
}

// RankOf is the 0-based rank of key k. When k is absent the second
// return is false and the first is the rank k would occupy if inserted.
// Pure descent; never restructures.
func (u *SplayTree[K, V, S]) RankOf(k K) (uint, bool) {
	var ra S
	for cur := u.root; cur != nil; {
		if u.lt(k, u.key(cur.v)) {
			cur = cur.l
		} else if u.lt(u.key(cur.v), k) {
			ra += size(cur.l) + 1
			cur = cur.r
		} else {
			return uint(ra + size(cur.l)), true
		}
	}
	return uint(ra), false
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u *SplayTree[K, V, S]) Minimum() (V, bool) {
	if u.root == nil {
		return *new(V), false
	}
	return u.root.Min().v, true
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u *SplayTree[K, V, S]) Maximum() (V, bool) {
	if u.root == nil {
		return *new(V), false
	}
	return u.root.Max().v, true
}

// Erase [Tree.Erase]: splay n to the root, detach its children and merge
// them into the new root. Returns the root of the detached right
// subtree, the part that followed n; nil when n held the largest key.
// Erasing a node u doesn't own panics with NotOwnedError.
func (u *SplayTree[K, V, S]) Erase(n *Node[V, S]) *Node[V, S] {
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

// Remove the element with key k. Returns false when k isn't present; the
// failed lookup still splays like Find.
func (u *SplayTree[K, V, S]) Remove(k K) bool {
	n := u.Find(k)
	if n == nil {
		return false
	}
	u.Erase(n)
	return true
}

// Merge the elements of o into u. Every key in o must compare strictly
// greater than every key in u, otherwise Merge panics with OrderError.
// After the call o is empty; node handles it handed out now belong to u.
func (u *SplayTree[K, V, S]) Merge(o *SplayTree[K, V, S]) {
	if u.root != nil && o.root != nil &&
		!u.lt(u.key(u.root.Max().v), u.key(o.root.Min().v)) {
		panic(OrderError{})
	}
	u.root = merge(u.root, o.root)
	o.root = nil
}

// SplitLeft splits u at n: n and everything ordered before it stay in u,
// everything strictly after goes into the returned tree. A nil n keeps
// all content in u and returns an empty tree.
func (u *SplayTree[K, V, S]) SplitLeft(n *Node[V, S]) *SplayTree[K, V, S] {
	o := NewFunc[K, V, S](u.lt, u.key)
	if n == nil {
		return o
	}
	u.Splay(n)
	u.root, o.root = splitLeft(u.root)
	return o
}

// SplitRight splits u at n: n and everything ordered after it go into
// the returned tree, everything strictly before stays in u. A nil n
// keeps all content in u and returns an empty tree.
func (u *SplayTree[K, V, S]) SplitRight(n *Node[V, S]) *SplayTree[K, V, S] {
	o := NewFunc[K, V, S](u.lt, u.key)
	if n == nil {
		return o
	}
	u.Splay(n)
	u.root, o.root = splitRight(u.root)
	return o
}

// SplitAt splits off every element whose key is not less than k into the
// returned tree, locating the pivot with LowerBound.
func (u *SplayTree[K, V, S]) SplitAt(k K) *SplayTree[K, V, S] {
	return u.SplitRight(u.LowerBound(k))
}

// SplitAfter splits off every element whose key is strictly greater than
// k into the returned tree, locating the pivot with UpperBound.
func (u *SplayTree[K, V, S]) SplitAfter(k K) *SplayTree[K, V, S] {
	return u.SplitRight(u.UpperBound(k))
}

// Copy returns a structurally identical deep copy sharing no nodes with
// u.
// Time: O(n)
func (u *SplayTree[K, V, S]) Copy() *SplayTree[K, V, S] {
	return &SplayTree[K, V, S]{root: copyTree(u.root), lt: u.lt, key: u.key}
}

// Swap exchanges the contents, comparators and extractors of u and o.
// Time: O(1)
func (u *SplayTree[K, V, S]) Swap(o *SplayTree[K, V, S]) {
	u.root, o.root = o.root, u.root
	u.lt, o.lt = o.lt, u.lt
	u.key, o.key = o.key, u.key
}

// Clear [Tree.Clear]: drops every element, unlinking the nodes so
// outstanding handles go inert.
func (u *SplayTree[K, V, S]) Clear() {
	tearDown(u.root)
	u.root = nil
}

// String renders the in-order parenthesized diagnostic dump of the tree.
func (u *SplayTree[K, V, S]) String() string {
	var b strings.Builder
	writeSubtree(&b, u.root)
	return b.String()
}

// InOrder [Tree.InOrder]. Iterates by successor links from the leftmost
// node; the tree must not be modified during iteration.
func (u *SplayTree[K, V, S]) InOrder() func() (V, bool) {
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
// sums, the bidirectional parent/child links and the strict key ordering
// over the whole tree. Recursive; intended for tests and diagnostics.
func (u *SplayTree[K, V, S]) Corrupt() bool {
	if u.root == nil {
		return false
	}
	if u.root.p != nil || corrupt(u.root) {
		return true
	}
	for n := u.root.Min(); ; {
		next := n.Next()
		if next == nil {
			return false
		}
		if !u.lt(u.key(n.v), u.key(next.v)) {
			return true
		}
		n = next
	}
}
