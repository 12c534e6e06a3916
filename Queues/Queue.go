package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError if there is none.
	Pop() (T, error)
	//Peek at the oldest item, zero value if the queue is empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
