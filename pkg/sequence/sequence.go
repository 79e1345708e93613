// Package sequence defines the read-only ordered container used by the joiner
// together with two implementations: a slice adapter and a singly linked list.
package sequence

import (
	"errors"
	"fmt"
)

// ErrBoundsViolation is matched by every error returned for an index outside
// the valid range of a sequence.
var ErrBoundsViolation = errors.New("index out of bounds")

// Sequence is an ordered, indexable, read-only collection.
type Sequence[T any] interface {
	// Size returns the number of elements.
	Size() int
	// Get returns the element at a zero-based index.
	Get(index int) (T, error)
}

// BoundsError reports an access outside [0, Size).
type BoundsError struct {
	Index int
	Size  int
}

func (e *BoundsError) Error() string {
	if e.Size < 0 {
		return fmt.Sprintf("invalid sequence size %d", e.Size)
	}
	return fmt.Sprintf("index %d out of bounds for sequence of size %d", e.Index, e.Size)
}

// Is makes errors.Is(err, ErrBoundsViolation) true for a BoundsError.
func (e *BoundsError) Is(target error) bool {
	return target == ErrBoundsViolation
}

// Check returns a *BoundsError if index is not in [0, size).
func Check(index, size int) error {
	if index < 0 || index >= size {
		return &BoundsError{Index: index, Size: size}
	}
	return nil
}

// CheckSize returns a *BoundsError if size is negative.
func CheckSize(size int) error {
	if size < 0 {
		return &BoundsError{Index: size, Size: size}
	}
	return nil
}

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

// Of returns a Slice over the given elements.
func Of[T any](elems ...T) Slice[T] {
	return Slice[T](elems)
}

// Size returns the number of elements.
func (s Slice[T]) Size() int {
	return len(s)
}

// Get returns the element at index or a *BoundsError.
func (s Slice[T]) Get(index int) (T, error) {
	if err := Check(index, len(s)); err != nil {
		var zero T
		return zero, err
	}
	return s[index], nil
}
