package frontier

import "container/heap"

// LessFunc reports whether a must be popped before b.
// It must be a strict weak ordering (irreflexive, transitive); elements for
// which neither a<b nor b<a holds are popped in push order.
type LessFunc[T any] func(a, b T) bool

// PriorityQueue is a binary min-heap ordered by a caller-supplied LessFunc.
//
// Equal-priority elements leave the queue in the order they were pushed,
// which keeps every consumer deterministic.
type PriorityQueue[T any] struct {
	h pqHeap[T]
}

// NewPriorityQueue returns an empty queue ordered by less.
// Panics if less is nil.
func NewPriorityQueue[T any](less LessFunc[T]) *PriorityQueue[T] {
	if less == nil {
		panic("frontier: NewPriorityQueue(nil)")
	}

	return &PriorityQueue[T]{h: pqHeap[T]{less: less}}
}

// Push inserts x. Complexity: O(log n).
func (pq *PriorityQueue[T]) Push(x T) {
	heap.Push(&pq.h, pqItem[T]{value: x, seq: pq.h.nextSeq})
	pq.h.nextSeq++
}

// Pop removes and returns the minimum element. Complexity: O(log n).
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.h.items) == 0 {
		var zero T
		return zero, false
	}

	return heap.Pop(&pq.h).(pqItem[T]).value, true
}

// Peek returns the minimum element without removing it. Complexity: O(1).
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.h.items) == 0 {
		var zero T
		return zero, false
	}

	return pq.h.items[0].value, true
}

// Len returns the number of queued elements, stale ones included.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h.items) }

// Empty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) Empty() bool { return len(pq.h.items) == 0 }

// pqItem pairs a value with its insertion sequence number.
type pqItem[T any] struct {
	value T
	seq   uint64
}

// pqHeap implements heap.Interface over pqItem, ordered by less then seq.
type pqHeap[T any] struct {
	items   []pqItem[T]
	less    LessFunc[T]
	nextSeq uint64
}

// Len returns the number of items in the heap.
func (h pqHeap[T]) Len() int { return len(h.items) }

// Less orders by the user comparator, falling back to insertion order.
func (h pqHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (h pqHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; called by heap.Push.
func (h *pqHeap[T]) Push(x any) { h.items = append(h.items, x.(pqItem[T])) }

// Pop removes the last element; called by heap.Pop.
func (h *pqHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = pqItem[T]{}
	h.items = old[:n-1]

	return item
}
