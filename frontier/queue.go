package frontier

// Queue is a FIFO container backed by a slice with a moving head.
// The zero value is an empty queue ready to use.
//
// Popped slots are reclaimed once the dead prefix exceeds half the backing
// slice, keeping Pop amortized O(1) without unbounded growth.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends x at the back of the queue.
func (q *Queue[T]) Push(x T) { q.items = append(q.items, x) }

// Pop removes and returns the item at the front of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	x := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// compact once more than half the slice is dead
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return x, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}

	return q.items[q.head], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
