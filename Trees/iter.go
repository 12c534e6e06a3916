package Trees

import "iter"

// pushLeft appends n and its whole left spine to st.
func pushLeft[T any](st []*node[T], n *node[T]) []*node[T] {
	for ; n != nil; n = n.l {
		st = append(st, n)
	}
	return st
}

// InOrder [Tree.InOrder]. Stack based, it never splays, so the order it sees is
// the shape of the tree at the time of the call.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *SplayTree[T, S]) InOrder() func() (T, bool) {
	st := pushLeft(nil, u.root)
	return func() (v T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = pushLeft(st[:len(st)-1], cur.r)
		return cur.v, true
	}
}

// Range calls f on every element in ascending order until f returns false.
func (u *SplayTree[T, S]) Range(f func(T) bool) {
	for next := u.InOrder(); ; {
		v, has := next()
		if !has || !f(v) {
			return
		}
	}
}

// All elements in ascending order, for use with range. Each call starts over from
// the current root.
func (u *SplayTree[T, S]) All() iter.Seq[T] {
	return u.Range
}
