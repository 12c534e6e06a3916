package Trees

import (
	"math/rand"
	"testing"
)

const (
	size    = 1 << 15
	hotKeys = 10
)

func (u *SplayTree[T, S]) averageDepth() float64 {
	var sum, leaves uint
	var walk func(*node[T], uint)
	walk = func(n *node[T], d uint) {
		if n.l == nil && n.r == nil {
			sum, leaves = sum+d, leaves+1
			return
		}
		if n.l != nil {
			walk(n.l, d+1)
		}
		if n.r != nil {
			walk(n.r, d+1)
		}
	}
	if u.root == nil {
		return 0
	}
	walk(u.root, 0)
	return float64(sum) / float64(leaves)
}

func BenchmarkSplayTree_Insert(b *testing.B) {
	var t *SplayTree[int, uint]
	for i := 0; i < b.N; i++ {
		t = New[int, uint]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
	}
	b.Log(t.averageDepth())
}

func BenchmarkSplayTree_Delete(b *testing.B) {
	var t Tree[int]
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t = New[int, uint]()
		for _, j := range rand.Perm(size) {
			t.Insert(j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Delete(j)
		}
	}
}

// BenchmarkSplayTree_Repeat searches the same few keys over and over, the case
// splaying is made for.
func BenchmarkSplayTree_Repeat(b *testing.B) {
	t := New[int, uint]()
	for _, j := range rand.Perm(size) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < size; j++ {
			t.Search(j % hotKeys)
		}
	}
	b.Log(t.averageDepth())
}

func BenchmarkSplayTree_All(b *testing.B) {
	var t *SplayTree[int, uint]
	for i := 0; i < b.N; i++ {
		t = New[int, uint]()
		for _, j := range rand.Perm(size / 2) {
			t.Insert(j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Delete(j)
			}
		}
		for _, j := range rand.Perm(size / 2) {
			t.Insert(j + size)
		}
		for v, has := t.Min(); has; v, has = t.Next(v) {
		}
	}
	b.Log(t.averageDepth())
}
