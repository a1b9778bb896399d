package datastructures

type (
	// DoublyLinkedList represents a doubly linked list.
	DoublyLinkedList[T comparable] struct {
		head *doublyNode[T]
	}

	// doublyNode represents an element in the doubly linked list.
	// prev is a back-reference only; the chain is held through next.
	doublyNode[T comparable] struct {
		value T
		prev  *doublyNode[T]
		next  *doublyNode[T]
	}
)

// NewDoublyLinkedList creates a new list.
func NewDoublyLinkedList[T comparable]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// IsEmpty reports whether the list has no nodes.
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Append adds a value to the tail of the list.
func (l *DoublyLinkedList[T]) Append(value T) {
	n := &doublyNode[T]{value: value}
	if l.head == nil {
		l.head = n
		return
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	n.prev = tail
	tail.next = n
}

// Prepend adds a value to the head of the list.
func (l *DoublyLinkedList[T]) Prepend(value T) {
	n := &doublyNode[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
}

// Delete removes the first node holding value.
func (l *DoublyLinkedList[T]) Delete(value T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	for current := l.head; current != nil; current = current.next {
		if current.value == value {
			l.unlink(current)
			return nil
		}
	}
	return notFound(value)
}

// Search reports whether some node holds value.
func (l *DoublyLinkedList[T]) Search(value T) bool {
	for current := l.head; current != nil; current = current.next {
		if current.value == value {
			return true
		}
	}
	return false
}

// Show renders the list head to tail, e.g. "10 <-> 20 <-> nil".
func (l *DoublyLinkedList[T]) Show() string {
	return render(l.Values(), " <-> ", "nil")
}

func (l *DoublyLinkedList[T]) String() string {
	return l.Show()
}

// Reverse swaps next and prev on every node and moves head to the former tail.
func (l *DoublyLinkedList[T]) Reverse() {
	var last *doublyNode[T]
	current := l.head
	for current != nil {
		next := current.next
		current.next, current.prev = current.prev, next
		last = current
		current = next
	}
	if last != nil {
		l.head = last
	}
}

// Length counts the nodes.
func (l *DoublyLinkedList[T]) Length() int {
	count := 0
	for current := l.head; current != nil; current = current.next {
		count++
	}
	return count
}

// InsertAt inserts value so that it ends up at index position.
func (l *DoublyLinkedList[T]) InsertAt(position int, value T) error {
	if position < 0 {
		return invalidPosition(position)
	}
	if position == 0 {
		l.Prepend(value)
		return nil
	}
	prev := l.nodeAt(position - 1)
	if prev == nil {
		return outOfRange(position)
	}
	n := &doublyNode[T]{value: value, prev: prev, next: prev.next}
	if prev.next != nil {
		prev.next.prev = n
	}
	prev.next = n
	return nil
}

// DeleteAt removes the node at index position.
func (l *DoublyLinkedList[T]) DeleteAt(position int) error {
	if position < 0 {
		return invalidPosition(position)
	}
	if l.head == nil {
		return ErrEmptyList
	}
	target := l.nodeAt(position)
	if target == nil {
		return outOfRange(position)
	}
	l.unlink(target)
	return nil
}

// FindMiddle returns the value at index (n-1)/2 using slow and fast pointers.
func (l *DoublyLinkedList[T]) FindMiddle() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	slow, fast := l.head, l.head
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.value, nil
}

// GetNth returns the value at index n.
func (l *DoublyLinkedList[T]) GetNth(n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, invalidPosition(n)
	}
	node := l.nodeAt(n)
	if node == nil {
		return zero, outOfRange(n)
	}
	return node.value, nil
}

// Values returns the values head to tail.
func (l *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.value)
	}
	return values
}

// Backward returns the values tail to head by following prev links.
func (l *DoublyLinkedList[T]) Backward() []T {
	values := make([]T, 0)
	if l.head == nil {
		return values
	}
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	for current := tail; current != nil; current = current.prev {
		values = append(values, current.value)
	}
	return values
}

// Clear removes all elements from the list.
func (l *DoublyLinkedList[T]) Clear() {
	for l.head != nil {
		next := l.head.next
		l.head.next, l.head.prev = nil, nil
		l.head = next
	}
}

// unlink removes n from the chain, fixing both neighbors.
func (l *DoublyLinkedList[T]) unlink(n *doublyNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
}

func (l *DoublyLinkedList[T]) nodeAt(index int) *doublyNode[T] {
	current := l.head
	for i := 0; i < index && current != nil; i++ {
		current = current.next
	}
	return current
}
