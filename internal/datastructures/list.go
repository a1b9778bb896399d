package datastructures

import (
	"fmt"
	"strings"
)

// List is the operation set shared by every linked list variant.
type List[T comparable] interface {
	IsEmpty() bool
	Append(value T)
	Prepend(value T)
	Delete(value T) error
	Search(value T) bool
	Show() string
	Reverse()
	Length() int
	InsertAt(position int, value T) error
	DeleteAt(position int) error
	FindMiddle() (T, error)
	GetNth(n int) (T, error)
	Values() []T
	Clear()
}

// Kind names a linked list variant.
type Kind string

const (
	Singly         Kind = "singly"
	Doubly         Kind = "doubly"
	CircularSingly Kind = "circular-singly"
	CircularDoubly Kind = "circular-doubly"
)

// Kinds lists every supported variant.
var Kinds = []Kind{Singly, Doubly, CircularSingly, CircularDoubly}

// ParseKind maps a user supplied name onto a Kind.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, k := range Kinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown list kind %q", name)
}

// NewList creates an empty list of the given kind.
func NewList[T comparable](kind Kind) (List[T], error) {
	switch kind {
	case Singly:
		return NewSinglyLinkedList[T](), nil
	case Doubly:
		return NewDoublyLinkedList[T](), nil
	case CircularSingly:
		return NewCircularSinglyLinkedList[T](), nil
	case CircularDoubly:
		return NewCircularDoublyLinkedList[T](), nil
	default:
		return nil, fmt.Errorf("unknown list kind %q", kind)
	}
}

const emptyMessage = "list is empty"

// render joins values with sep and closes the line with terminator.
func render[T any](values []T, sep, terminator string) string {
	if len(values) == 0 {
		return emptyMessage
	}
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%v%s", v, sep)
	}
	b.WriteString(terminator)
	return b.String()
}
