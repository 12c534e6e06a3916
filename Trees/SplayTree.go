package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// SplayTree is a self adjusting binary search tree with no repeated values.
// Every operation that reaches a node splays it to the root, so recently used
// elements stay cheap to reach. A single operation is O(n) in the worst case,
// but any sequence of m operations is O(m log n).
// T is the type of values it will hold, S is the type of the size counter.
// Equality is decided by the comparator alone: cmp(a,b)==0 means a and b are the
// same element.
// SplayTree isn't safe for concurrent use. Note that Search mutates the tree
// while Has doesn't.
type SplayTree[T any, S constraints.Unsigned] struct {
	root *node[T]
	sz   S
	cmp  func(a, b T) int
}

// New SplayTree ordered by cmp.Compare.
func New[T cmp.Ordered, S constraints.Unsigned]() *SplayTree[T, S] {
	return &SplayTree[T, S]{cmp: cmp.Compare[T]}
}

// NewFunc returns a SplayTree ordered by f. f must be a total order and free of
// side effects; otherwise the order of elements is undefined, but the links of the
// tree stay intact. Panics if f is nil.
func NewFunc[T any, S constraints.Unsigned](f func(a, b T) int) *SplayTree[T, S] {
	if f == nil {
		panic("Trees: nil comparator")
	}
	return &SplayTree[T, S]{cmp: f}
}

// From builds a complete tree from the sorted slice sli. This is faster than
// repeatedly calling Insert. The slice must be strictly ascending under cmp.Compare,
// which puts NaN before every other float. If safe==true,
// this function checks it and panics with InvalidSliceError otherwise. Recursive.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *SplayTree[T, S] {
	var build func([]T, *node[T]) *node[T]
	build = func(s []T, p *node[T]) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		if safe && ((mid > 0 && cmp.Compare(s[mid-1], s[mid]) >= 0) || (mid+1 < len(s) && cmp.Compare(s[mid], s[mid+1]) >= 0)) {
			e := &InvalidSliceError{Mid: s[mid]}
			if mid > 0 {
				e.Left = s[mid-1]
			}
			if mid+1 < len(s) {
				e.Right = s[mid+1]
			}
			panic(e)
		}
		n := &node[T]{v: s[mid], p: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		return n
	}
	return &SplayTree[T, S]{root: build(sli, nil), sz: S(len(sli)), cmp: cmp.Compare[T]}
}

// find the node equal to v without touching the shape of the tree.
// Time: O(D)
func (u *SplayTree[T, S]) find(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *SplayTree[T, S]) Size() uint {
	return uint(u.sz)
}

// Empty [Tree.Empty]
func (u *SplayTree[T, S]) Empty() bool {
	return u.root == nil
}

// Clear [Tree.Clear]. The old nodes are left to the garbage collector.
// Time: O(1)
func (u *SplayTree[T, S]) Clear() {
	u.root, u.sz = nil, 0
}

// Root returns the value at the root without splaying anything.
func (u *SplayTree[T, S]) Root() (v T, has bool) {
	if u.root != nil {
		v, has = u.root.v, true
	}
	return
}

// Insert [Tree.Insert]. The node holding v, new or not, ends up at the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Insert(v T) (Handle[T], bool) {
	if u.root == nil {
		u.root, u.sz = &node[T]{v: v}, 1
		return Handle[T]{u.root}, true
	}
	cur := u.root
	for {
		c := u.cmp(v, cur.v)
		if c == 0 {
			u.root = splay(cur)
			return Handle[T]{cur}, false
		}
		next := &cur.r
		if c < 0 {
			next = &cur.l
		}
		if *next == nil {
			n := &node[T]{v: v, p: cur}
			*next = n
			u.root = splay(n)
			u.sz++
			return Handle[T]{n}, true
		}
		cur = *next
	}
}

// Search [Tree.Search]. On a hit the found node is splayed; on a miss the last
// node visited is splayed instead.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Search(v T) (T, bool) {
	var last *node[T]
	for cur := u.root; cur != nil; {
		last = cur
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			u.root = splay(cur)
			return cur.v, true
		}
	}
	if last != nil {
		u.root = splay(last)
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *SplayTree[T, S]) Has(v T) bool {
	return u.find(v) != nil
}

// Delete [Tree.Delete]. The node is splayed to the root and cut off; its two
// subtrees are joined at the maximum of the left one.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Delete(v T) bool {
	n := u.find(v)
	if n == nil {
		return false
	}
	splay(n)
	l, r := n.l, n.r
	n.l, n.r = nil, nil
	switch {
	case l == nil:
		if r != nil {
			r.p = nil
		}
		u.root = r
	case r == nil:
		l.p = nil
		u.root = l
	default:
		l.p, r.p = nil, nil
		m := splay(rightmost(l)) // m.r==nil now
		m.r, r.p = r, m
		u.root = m
	}
	u.sz--
	return true
}

// Min [Tree.Min]. The minimum becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Min() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	u.root = splay(leftmost(u.root))
	return u.root.v, true
}

// Max [Tree.Max]. The maximum becomes the root.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Max() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	u.root = splay(rightmost(u.root))
	return u.root.v, true
}

// Next [Tree.Next]. The successor, if any, becomes the root. If v isn't in the
// tree or has no successor, nothing is splayed.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Next(v T) (T, bool) {
	if n := u.find(v); n != nil {
		if s := successor(n); s != nil {
			u.root = splay(s)
			return s.v, true
		}
	}
	return *new(T), false
}

// Prev [Tree.Prev]. Mirror of Next.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Prev(v T) (T, bool) {
	if n := u.find(v); n != nil {
		if s := predecessor(n); s != nil {
			u.root = splay(s)
			return s.v, true
		}
	}
	return *new(T), false
}
