package Trees

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/go-splay/Queues"
)

// DefaultStringDepth bounds the depth String walks to.
const DefaultStringDepth = 1000

// HasCycle reports whether some node can be reached twice from the root, or a
// parent link doesn't point back at the node owning it.
// Iterative DFS; meant for tests and debugging.
// Time: O(n); Space: O(n)
func (u *SplayTree[T, S]) HasCycle() bool {
	if u.root == nil {
		return false
	} else if u.root.p != nil {
		return true
	}
	seen := make(map[*node[T]]struct{}, u.sz)
	st := []*node[T]{u.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if _, in := seen[cur]; in {
			return true
		}
		seen[cur] = struct{}{}
		if (cur.l != nil && cur.l.p != cur) || (cur.r != nil && cur.r.p != cur) {
			return true
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
	}
	return false
}

// Corrupt [Tree.Corrupt]. Checks the links, the order and the size counter.
// Time: O(n)
func (u *SplayTree[T, S]) Corrupt() bool {
	if u.HasCycle() || (u.root != nil && u.root.p != nil) {
		return true
	}
	var (
		prev  *node[T]
		count S
	)
	for st := pushLeft(nil, u.root); len(st) > 0; {
		cur := st[len(st)-1]
		st = pushLeft(st[:len(st)-1], cur.r)
		if (cur.l != nil && cur.l.p != cur) || (cur.r != nil && cur.r.p != cur) {
			return true
		}
		if prev != nil && u.cmp(prev.v, cur.v) >= 0 {
			return true
		}
		prev = cur
		count++
	}
	return count != u.sz
}

// StringDepth renders the elements in order, joined by ", ". Nodes deeper than
// maxDepth end the output with "...", a node met twice ends it with "<cycle>".
func (u *SplayTree[T, S]) StringDepth(maxDepth int) string {
	type frame struct {
		n *node[T]
		d int
	}
	var (
		sb   strings.Builder
		st   []frame
		seen = make(map[*node[T]]struct{})
	)
	emit := func(s string) {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s)
	}
	push := func(n *node[T], d int) bool {
		for ; n != nil; n, d = n.l, d+1 {
			if d > maxDepth {
				emit("...")
				return false
			}
			if _, in := seen[n]; in {
				emit("<cycle>")
				return false
			}
			seen[n] = struct{}{}
			st = append(st, frame{n, d})
		}
		return true
	}
	for ok := push(u.root, 0); ok && len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		emit(fmt.Sprint(top.n.v))
		ok = push(top.n.r, top.d+1)
	}
	return sb.String()
}

func (u *SplayTree[T, S]) String() string {
	return u.StringDepth(DefaultStringDepth)
}

// Levels returns the elements level by level, each level from left to right.
// Time: O(n)
func (u *SplayTree[T, S]) Levels() [][]T {
	var lvs [][]T
	if u.root == nil {
		return lvs
	}
	q := Queues.MakeArrayQueue[*node[T]](8)
	q.Push(u.root)
	for !q.Empty() {
		row := make([]T, 0, q.Size())
		for i := q.Size(); i > 0; i-- {
			cur, _ := q.Pop()
			row = append(row, cur.v)
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
		lvs = append(lvs, row)
	}
	return lvs
}

func (u *SplayTree[T, S]) minDepth(c *node[T], cd uint) uint {
	if c.l == nil && c.r == nil {
		return cd
	} else if c.l == nil {
		return u.minDepth(c.r, cd+1)
	} else if c.r == nil {
		return u.minDepth(c.l, cd+1)
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth of the leaves, root is at depth 0. Recursive.
func (u *SplayTree[T, S]) MinDepth() uint {
	if u.root == nil {
		return 0
	}
	return u.minDepth(u.root, 0)
}

func (u *SplayTree[T, S]) maxDepth(c *node[T], cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth of the leaves, root is at depth 0. Recursive.
func (u *SplayTree[T, S]) MaxDepth() uint {
	if u.root == nil {
		return 0
	}
	return u.maxDepth(u.root, 0)
}
