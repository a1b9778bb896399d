package datastructures

// CircularSinglyLinkedList is a singly linked ring. Only the tail is stored:
// tail.next is the head, so both ends are reachable in O(1).
type CircularSinglyLinkedList[T comparable] struct {
	tail *singlyNode[T]
}

func NewCircularSinglyLinkedList[T comparable]() *CircularSinglyLinkedList[T] {
	return &CircularSinglyLinkedList[T]{}
}

func (l *CircularSinglyLinkedList[T]) IsEmpty() bool {
	return l.tail == nil
}

func (l *CircularSinglyLinkedList[T]) Append(value T) {
	l.Prepend(value)
	l.tail = l.tail.next
}

func (l *CircularSinglyLinkedList[T]) Prepend(value T) {
	n := &singlyNode[T]{value: value}
	if l.tail == nil {
		n.next = n
		l.tail = n
		return
	}
	n.next = l.tail.next
	l.tail.next = n
}

// Delete removes the first node holding value, walking one lap at most.
func (l *CircularSinglyLinkedList[T]) Delete(value T) error {
	if l.tail == nil {
		return ErrEmptyList
	}
	prev := l.tail
	for i, n := 0, l.Length(); i < n; i++ {
		current := prev.next
		if current.value == value {
			l.unlinkAfter(prev)
			return nil
		}
		prev = current
	}
	return notFound(value)
}

func (l *CircularSinglyLinkedList[T]) Search(value T) bool {
	for _, v := range l.Values() {
		if v == value {
			return true
		}
	}
	return false
}

// Show renders one lap, e.g. "10 -> 20 -> (head)".
func (l *CircularSinglyLinkedList[T]) Show() string {
	return render(l.Values(), " -> ", "(head)")
}

func (l *CircularSinglyLinkedList[T]) String() string {
	return l.Show()
}

// Reverse flips every link; the old head becomes the tail.
func (l *CircularSinglyLinkedList[T]) Reverse() {
	if l.tail == nil || l.tail.next == l.tail {
		return
	}
	oldHead := l.tail.next
	prev := l.tail
	current := oldHead
	for {
		next := current.next
		current.next = prev
		prev = current
		current = next
		if current == oldHead {
			break
		}
	}
	l.tail = oldHead
}

func (l *CircularSinglyLinkedList[T]) Length() int {
	if l.tail == nil {
		return 0
	}
	count := 1
	for current := l.tail.next; current != l.tail; current = current.next {
		count++
	}
	return count
}

func (l *CircularSinglyLinkedList[T]) InsertAt(position int, value T) error {
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
	prev := l.nodeAt(position - 1)
	prev.next = &singlyNode[T]{value: value, next: prev.next}
	return nil
}

func (l *CircularSinglyLinkedList[T]) DeleteAt(position int) error {
	if position < 0 {
		return invalidPosition(position)
	}
	if l.tail == nil {
		return ErrEmptyList
	}
	if position >= l.Length() {
		return outOfRange(position)
	}
	prev := l.tail
	if position > 0 {
		prev = l.nodeAt(position - 1)
	}
	l.unlinkAfter(prev)
	return nil
}

// FindMiddle stops fast when one or two steps would bring it back to head.
func (l *CircularSinglyLinkedList[T]) FindMiddle() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	head := l.tail.next
	slow, fast := head, head
	for fast.next != head && fast.next.next != head {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.value, nil
}

func (l *CircularSinglyLinkedList[T]) GetNth(n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, invalidPosition(n)
	}
	if n >= l.Length() {
		return zero, outOfRange(n)
	}
	return l.nodeAt(n).value, nil
}

func (l *CircularSinglyLinkedList[T]) Values() []T {
	values := make([]T, 0)
	if l.tail == nil {
		return values
	}
	current := l.tail.next
	for {
		values = append(values, current.value)
		if current == l.tail {
			return values
		}
		current = current.next
	}
}

// Clear breaks the ring and drops every node.
func (l *CircularSinglyLinkedList[T]) Clear() {
	if l.tail == nil {
		return
	}
	current := l.tail.next
	l.tail.next = nil
	for current != nil {
		next := current.next
		current.next = nil
		current = next
	}
	l.tail = nil
}

// unlinkAfter removes prev.next from the ring.
func (l *CircularSinglyLinkedList[T]) unlinkAfter(prev *singlyNode[T]) {
	target := prev.next
	if target == prev {
		l.tail = nil
		target.next = nil
		return
	}
	prev.next = target.next
	if target == l.tail {
		l.tail = prev
	}
	target.next = nil
}

// nodeAt expects 0 <= index < Length().
func (l *CircularSinglyLinkedList[T]) nodeAt(index int) *singlyNode[T] {
	current := l.tail.next
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}
