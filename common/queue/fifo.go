package queue

// Fifo implements a first-in first-out (FIFO) queue.
//
// Fifo is not safe for concurrent use.
type Fifo[T any] struct {
	elements []T
}

// NewFifo creates a new Fifo with the specified initial capacity and returns a pointer to it.
func NewFifo[T any](initialSize int) *Fifo[T] {
	if initialSize < 0 {
		initialSize = 1
	}

	return &Fifo[T]{
		elements: make([]T, 0, initialSize),
	}
}

// Enqueue adds the specified element to the back of the queue.
func (q *Fifo[T]) Enqueue(elem T) {
	q.elements = append(q.elements, elem)
}

// Dequeue removes and returns the element at the front of the queue.
//
// If the queue is empty, then Dequeue returns the zero value and false.
func (q *Fifo[T]) Dequeue() (elem T, ok bool) {
	if len(q.elements) == 0 {
		return elem, false
	}

	elem = q.elements[0]

	var zero T
	q.elements[0] = zero
	q.elements = q.elements[1:]

	return elem, true
}

// Peek returns but does not remove the element at the front of the queue.
//
// If the queue is empty, then Peek returns the zero value and false.
func (q *Fifo[T]) Peek() (elem T, ok bool) {
	if len(q.elements) == 0 {
		return elem, false
	}

	return q.elements[0], true
}

// Len returns the number of elements in the queue.
func (q *Fifo[T]) Len() int {
	return len(q.elements)
}
