package sequence

import "iter"

type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list. The zero value is an empty list ready
// to use. It is not safe for concurrent mutation.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewLinkedList returns a list holding elems in order.
func NewLinkedList[T comparable](elems ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, e := range elems {
		l.Add(e)
	}
	return l
}

// Add appends element to the end of the list.
func (l *LinkedList[T]) Add(element T) {
	n := &node[T]{value: element}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Remove deletes the first element equal to element and reports whether one
// was found.
func (l *LinkedList[T]) Remove(element T) bool {
	var prev *node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value != element {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if n == l.tail {
			l.tail = prev
		}
		l.size--
		return true
	}
	return false
}

// Get walks to index and returns its element, or a *BoundsError.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if err := Check(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n.value, nil
}

// Size returns the number of elements.
func (l *LinkedList[T]) Size() int {
	return l.size
}

// All iterates the elements from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
