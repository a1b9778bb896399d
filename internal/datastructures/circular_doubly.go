package datastructures

// CircularDoublyLinkedList is a doubly linked ring; head.prev is the tail.
type CircularDoublyLinkedList[T comparable] struct {
	head *doublyNode[T]
}

func NewCircularDoublyLinkedList[T comparable]() *CircularDoublyLinkedList[T] {
	return &CircularDoublyLinkedList[T]{}
}

func (l *CircularDoublyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *CircularDoublyLinkedList[T]) Append(value T) {
	n := &doublyNode[T]{value: value}
	if l.head == nil {
		n.next, n.prev = n, n
		l.head = n
		return
	}
	l.linkBefore(n, l.head)
}

func (l *CircularDoublyLinkedList[T]) Prepend(value T) {
	l.Append(value)
	l.head = l.head.prev
}

func (l *CircularDoublyLinkedList[T]) Delete(value T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	current := l.head
	for {
		if current.value == value {
			l.unlink(current)
			return nil
		}
		current = current.next
		if current == l.head {
			return notFound(value)
		}
	}
}

func (l *CircularDoublyLinkedList[T]) Search(value T) bool {
	for _, v := range l.Values() {
		if v == value {
			return true
		}
	}
	return false
}

// Show renders one lap, e.g. "10 <-> 20 <-> (head)".
func (l *CircularDoublyLinkedList[T]) Show() string {
	return render(l.Values(), " <-> ", "(head)")
}

func (l *CircularDoublyLinkedList[T]) String() string {
	return l.Show()
}

// Reverse swaps next and prev on every node of one lap, then moves head to the former tail.
func (l *CircularDoublyLinkedList[T]) Reverse() {
	if l.head == nil {
		return
	}
	tail := l.head.prev
	current := l.head
	for {
		next := current.next
		current.next, current.prev = current.prev, next
		current = next
		if current == l.head {
			break
		}
	}
	l.head = tail
}

func (l *CircularDoublyLinkedList[T]) Length() int {
	if l.head == nil {
		return 0
	}
	count := 1
	for current := l.head.next; current != l.head; current = current.next {
		count++
	}
	return count
}

func (l *CircularDoublyLinkedList[T]) InsertAt(position int, value T) error {
	if position < 0 {
		return invalidPosition(position)
	}
	if position == 0 {
		l.Prepend(value)
		return nil
	}
	n := l.Length()
	if position > n {
		return outOfRange(position)
	}
	if position == n {
		l.Append(value)
		return nil
	}
	l.linkBefore(&doublyNode[T]{value: value}, l.nodeAt(position))
	return nil
}

func (l *CircularDoublyLinkedList[T]) DeleteAt(position int) error {
	if position < 0 {
		return invalidPosition(position)
	}
	if l.head == nil {
		return ErrEmptyList
	}
	if position >= l.Length() {
		return outOfRange(position)
	}
	l.unlink(l.nodeAt(position))
	return nil
}

func (l *CircularDoublyLinkedList[T]) FindMiddle() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	slow, fast := l.head, l.head
	for fast.next != l.head && fast.next.next != l.head {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.value, nil
}

func (l *CircularDoublyLinkedList[T]) GetNth(n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, invalidPosition(n)
	}
	if n >= l.Length() {
		return zero, outOfRange(n)
	}
	return l.nodeAt(n).value, nil
}

func (l *CircularDoublyLinkedList[T]) Values() []T {
	values := make([]T, 0)
	if l.head == nil {
		return values
	}
	current := l.head
	for {
		values = append(values, current.value)
		current = current.next
		if current == l.head {
			return values
		}
	}
}

// Backward returns one lap tail to head following prev links.
func (l *CircularDoublyLinkedList[T]) Backward() []T {
	values := make([]T, 0)
	if l.head == nil {
		return values
	}
	current := l.head.prev
	for {
		values = append(values, current.value)
		if current == l.head {
			return values
		}
		current = current.prev
	}
}

func (l *CircularDoublyLinkedList[T]) Clear() {
	if l.head == nil {
		return
	}
	l.head.prev.next = nil
	for current := l.head; current != nil; {
		next := current.next
		current.next, current.prev = nil, nil
		current = next
	}
	l.head = nil
}

// linkBefore places n immediately before at.
func (l *CircularDoublyLinkedList[T]) linkBefore(n, at *doublyNode[T]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}

func (l *CircularDoublyLinkedList[T]) unlink(n *doublyNode[T]) {
	if n.next == n {
		l.head = nil
	} else {
		n.prev.next = n.next
		n.next.prev = n.prev
		if n == l.head {
			l.head = n.next
		}
	}
	n.prev, n.next = nil, nil
}

// nodeAt expects 0 <= index < Length().
func (l *CircularDoublyLinkedList[T]) nodeAt(index int) *doublyNode[T] {
	current := l.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}
