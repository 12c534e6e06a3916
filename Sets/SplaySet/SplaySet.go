package SplaySet

import (
	"cmp"

	"github.com/g-m-twostay/go-splay/Sets"
	"github.com/g-m-twostay/go-splay/Trees"
)

var _ Sets.Set[int] = (*SplaySet[int])(nil)

// SplaySet is an ordered Set on top of a Trees.SplayTree. Put, Remove and Take
// splay, Has doesn't. Range goes in ascending order and Take takes the minimum.
type SplaySet[E any] struct {
	t *Trees.SplayTree[E, uint]
}

// New SplaySet ordered by cmp.Compare.
func New[E cmp.Ordered]() *SplaySet[E] {
	return &SplaySet[E]{Trees.New[E, uint]()}
}

// NewFunc returns a SplaySet ordered by f, see Trees.NewFunc.
func NewFunc[E any](f func(a, b E) int) *SplaySet[E] {
	return &SplaySet[E]{Trees.NewFunc[E, uint](f)}
}

func (u *SplaySet[E]) Put(e E) bool {
	_, added := u.t.Insert(e)
	return added
}

func (u *SplaySet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *SplaySet[E]) Remove(e E) bool {
	return u.t.Delete(e)
}

// Size of the set.
func (u *SplaySet[E]) Size() uint {
	return u.t.Size()
}

// Take the minimum out of the set. After Min the minimum is the root with no
// left child, so the Delete that follows is O(1) past the lookup.
func (u *SplaySet[E]) Take() E {
	e, has := u.t.Min()
	if has {
		u.t.Delete(e)
	}
	return e
}

func (u *SplaySet[E]) Range(f func(E) bool) {
	u.t.Range(f)
}

// Tree gives access to the underlying tree for ordered queries like Next and Prev.
func (u *SplaySet[E]) Tree() *Trees.SplayTree[E, uint] {
	return u.t
}
