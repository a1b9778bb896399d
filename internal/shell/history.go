package shell

import "errors"

// History is a fixed capacity ring of recent entries. Recording into a full
// ring evicts the oldest entry.
type History[T any] struct {
	data     []T
	size     int
	head     int
	capacity int
}

// NewHistory creates a History holding at most capacity entries.
func NewHistory[T any](capacity int) *History[T] {
	if capacity <= 0 {
		panic("capacity must be greater than 0")
	}
	return &History[T]{
		data:     make([]T, capacity),
		capacity: capacity,
	}
}

// Record appends value, dropping the oldest entry when full.
func (h *History[T]) Record(value T) {
	if h.size == h.capacity {
		h.head = (h.head + 1) % h.capacity
		h.size--
	}
	h.data[(h.head+h.size)%h.capacity] = value
	h.size++
}

// Last returns the most recent entry.
func (h *History[T]) Last() (T, error) {
	if h.size == 0 {
		var zeroValue T
		return zeroValue, errors.New("history is empty")
	}
	return h.data[(h.head+h.size-1)%h.capacity], nil
}

// Entries returns the entries oldest first.
func (h *History[T]) Entries() []T {
	entries := make([]T, 0, h.size)
	for i := 0; i < h.size; i++ {
		entries = append(entries, h.data[(h.head+i)%h.capacity])
	}
	return entries
}

// Size returns the number of entries.
func (h *History[T]) Size() int {
	return h.size
}
