package datastructures

type (
	// SinglyLinkedList is a chain of nodes linked in the forward direction only.
	SinglyLinkedList[T comparable] struct {
		head *singlyNode[T]
	}

	singlyNode[T comparable] struct {
		value T
		next  *singlyNode[T]
	}
)

// NewSinglyLinkedList creates an empty singly linked list.
func NewSinglyLinkedList[T comparable]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

// IsEmpty reports whether the list has no nodes.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Append adds a value at the tail of the list.
func (l *SinglyLinkedList[T]) Append(value T) {
	n := &singlyNode[T]{value: value}
	if l.head == nil {
		l.head = n
		return
	}
	current := l.head
	for current.next != nil {
		current = current.next
	}
	current.next = n
}

// Prepend adds a value at the head of the list.
func (l *SinglyLinkedList[T]) Prepend(value T) {
	l.head = &singlyNode[T]{value: value, next: l.head}
}

// Delete removes the first node holding value.
func (l *SinglyLinkedList[T]) Delete(value T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	var prev *singlyNode[T]
	for current := l.head; current != nil; current = current.next {
		if current.value == value {
			if prev == nil {
				l.head = current.next
			} else {
				prev.next = current.next
			}
			return nil
		}
		prev = current
	}
	return notFound(value)
}

// Search reports whether some node holds value.
func (l *SinglyLinkedList[T]) Search(value T) bool {
	for current := l.head; current != nil; current = current.next {
		if current.value == value {
			return true
		}
	}
	return false
}

// Show renders the list head to tail, e.g. "10 -> 20 -> nil".
func (l *SinglyLinkedList[T]) Show() string {
	return render(l.Values(), " -> ", "nil")
}

func (l *SinglyLinkedList[T]) String() string {
	return l.Show()
}

// Reverse reverses the links in place.
func (l *SinglyLinkedList[T]) Reverse() {
	var prev *singlyNode[T]
	current := l.head
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	l.head = prev
}

// Length counts the nodes.
func (l *SinglyLinkedList[T]) Length() int {
	count := 0
	for current := l.head; current != nil; current = current.next {
		count++
	}
	return count
}

// InsertAt inserts value so that it ends up at index position.
func (l *SinglyLinkedList[T]) InsertAt(position int, value T) error {
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
	prev.next = &singlyNode[T]{value: value, next: prev.next}
	return nil
}

// DeleteAt removes the node at index position.
func (l *SinglyLinkedList[T]) DeleteAt(position int) error {
	if position < 0 {
		return invalidPosition(position)
	}
	if l.head == nil {
		return ErrEmptyList
	}
	if position == 0 {
		l.head = l.head.next
		return nil
	}
	prev := l.nodeAt(position - 1)
	if prev == nil || prev.next == nil {
		return outOfRange(position)
	}
	prev.next = prev.next.next
	return nil
}

// FindMiddle returns the value at index (n-1)/2 using slow and fast pointers.
func (l *SinglyLinkedList[T]) FindMiddle() (T, error) {
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
func (l *SinglyLinkedList[T]) GetNth(n int) (T, error) {
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
func (l *SinglyLinkedList[T]) Values() []T {
	values := make([]T, 0)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.value)
	}
	return values
}

// Clear drops every node.
func (l *SinglyLinkedList[T]) Clear() {
	for l.head != nil {
		next := l.head.next
		l.head.next = nil
		l.head = next
	}
}

// nodeAt walks index steps from head, returning nil past the tail.
func (l *SinglyLinkedList[T]) nodeAt(index int) *singlyNode[T] {
	current := l.head
	for i := 0; i < index && current != nil; i++ {
		current = current.next
	}
	return current
}
