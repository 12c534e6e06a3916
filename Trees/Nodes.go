package Trees

// A node in the SplayTree.
// l and r own the children; p is only a back reference used when walking up.
// nil stands for an absent child or, for p, the root.
type node[T any] struct {
	v       T
	l, r, p *node[T]
}

// Handle refers to the node holding an element returned by SplayTree.Insert.
// It stays readable after the node leaves the tree but no longer says anything
// about the tree then.
type Handle[T any] struct {
	n *node[T]
}

// Value held by the node. Zero value if h is the zero Handle.
func (h Handle[T]) Value() (v T) {
	if h.n != nil {
		v = h.n.v
	}
	return
}

// replaceChild makes c take the place of old under p. p==nil means old was a root,
// in which case only c's parent link changes.
func replaceChild[T any](p, old, c *node[T]) {
	if p != nil {
		if p.l == old {
			p.l = c
		} else {
			p.r = c
		}
	}
	if c != nil {
		c.p = p
	}
}

// rotateLeft lifts x.r into the position of x; x becomes its left child and the old
// x.r.l becomes x.r. Panics with RotationError if x has no right child.
// Time: O(1); Space: O(1)
func rotateLeft[T any](x *node[T]) {
	y := x.r
	if y == nil {
		panic(&RotationError{Dir: "left", Missing: "right"})
	}
	x.r = y.l
	if y.l != nil {
		y.l.p = x
	}
	replaceChild(x.p, x, y)
	y.l, x.p = x, y
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](x *node[T]) {
	y := x.l
	if y == nil {
		panic(&RotationError{Dir: "right", Missing: "left"})
	}
	x.l = y.r
	if y.r != nil {
		y.r.p = x
	}
	replaceChild(x.p, x, y)
	y.r, x.p = x, y
}

// splay n until it has no parent and return it. The caller decides whose root n becomes,
// so this also works on a detached subtree.
// Time: amortized O(log n)
func splay[T any](n *node[T]) *node[T] {
	for p := n.p; p != nil; p = n.p {
		g := p.p
		switch {
		case g == nil: // zig
			if p.l == n {
				rotateRight(p)
			} else {
				rotateLeft(p)
			}
		case g.l == p && p.l == n: // zig-zig
			rotateRight(g)
			rotateRight(p)
		case g.r == p && p.r == n:
			rotateLeft(g)
			rotateLeft(p)
		case p.l == n: // zig-zag, p is g.r
			rotateRight(p)
			rotateLeft(g)
		default:
			rotateLeft(p)
			rotateRight(g)
		}
	}
	return n
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// successor of n in in-order, nil if n is the last.
func successor[T any](n *node[T]) *node[T] {
	if n.r != nil {
		return leftmost(n.r)
	}
	for p := n.p; p != nil; n, p = p, p.p {
		if p.l == n {
			return p
		}
	}
	return nil
}

// predecessor is the mirror of successor.
func predecessor[T any](n *node[T]) *node[T] {
	if n.l != nil {
		return rightmost(n.l)
	}
	for p := n.p; p != nil; n, p = p, p.p {
		if p.r == n {
			return p
		}
	}
	return nil
}
