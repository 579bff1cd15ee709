package frontier

// Stack is a LIFO container backed by a slice.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places x on top of the stack.
func (s *Stack[T]) Push(x T) { s.items = append(s.items, x) }

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	x := s.items[n-1]
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]

	return x, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
