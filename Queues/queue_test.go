package Queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](0)
	assert.True(t, q.Empty())
	_, err := q.Pop()
	var emptyErr *EmptyQueueError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Zero(t, q.Peek())

	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	require.EqualValues(t, 100, q.Size())
	assert.Equal(t, 0, q.Peek())
	for i := 0; i < 100; i++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, q.Empty())
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	next, want := 0, 0
	// keep the queue short so head wraps around several times before growing.
	for round := 0; round < 20; round++ {
		for i := 0; i < 3; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 2; i++ {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
	}
	assert.EqualValues(t, next-want, q.Size())
	q.Shrink()
	for !q.Empty() {
		v, _ := q.Pop()
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](2)
	q.Push("a")
	q.Push("b")
	q.Clear()
	assert.True(t, q.Empty())
	q.Push("c")
	assert.Equal(t, "c", q.Peek())
}
