package Queues

// circArrQ keeps its items in content[head:head+sz], wrapping around the end.
type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the items to a new array of newLen, newLen>=u.sz. The oldest item lands at 0.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))]); uint(n) < u.sz {
		copy(nc[n:], u.content[:u.sz-uint(n)])
	}
	u.content, u.head = nc, 0
}

// Shrink the array to fit the items.
func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue, keeping the array.
func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item to the back. Grows the array by half when full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item, u.content[u.head] = u.content[u.head], *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return
}

func (u *circArrQ[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.content[u.head]
	}
	return
}
