// Package sequence provides a bounded, ordered container with an explicit
// split between live elements and allocated capacity.
//
// Storage is allocated once at construction. Operations that would need
// more room than the capacity fail with ErrCapacityExceeded instead of
// growing the buffer.
package sequence

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// DefaultSeparator is used by String to join elements.
const DefaultSeparator = " "

// Sequence is a fixed-capacity container of ordered elements.
// The zero value is an empty sequence with zero capacity.
type Sequence[T any] struct {
	buf []T
	n   int
}

// New creates an empty sequence with the given capacity.
func New[T any](capacity int) (*Sequence[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Sequence[T]{buf: make([]T, capacity)}, nil
}

// FromValues creates a sequence with the given capacity holding values as its live elements.
func FromValues[T any](capacity int, values ...T) (*Sequence[T], error) {
	s, err := New[T](capacity)
	if err != nil {
		return nil, err
	}

	if len(values) > capacity {
		return nil, fmt.Errorf("%w: %d values do not fit in %d slots", ErrCapacityExceeded, len(values), capacity)
	}

	s.n = copy(s.buf, values)

	return s, nil
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int {
	return s.n
}

// Cap returns the total number of slots.
func (s *Sequence[T]) Cap() int {
	return len(s.buf)
}

// Spare returns the number of unused trailing slots.
func (s *Sequence[T]) Spare() int {
	return len(s.buf) - s.n
}

// At returns the live element at index i.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, fmt.Errorf("%w: %d is outside [0, %d)", ErrInvalidPosition, i, s.n)
	}

	return s.buf[i], nil
}

// Insert places value at position, shifting the following elements right.
// The sequence is unchanged when an error is returned.
func (s *Sequence[T]) Insert(position int, value T) error {
	if err := InsertAt(s.buf, s.n, position, value); err != nil {
		return err
	}

	s.n++

	return nil
}

// Values returns a copy of the live elements.
func (s *Sequence[T]) Values() []T {
	values := make([]T, s.n)
	copy(values, s.buf[:s.n])

	return values
}

// Clone returns an independent copy with the same capacity.
func (s *Sequence[T]) Clone() *Sequence[T] {
	buf := make([]T, len(s.buf))
	copy(buf, s.buf)

	return &Sequence[T]{buf: buf, n: s.n}
}

// Format joins the live elements with sep.
func (s *Sequence[T]) Format(sep string) string {
	return strings.Join(lo.Map(s.buf[:s.n], func(v T, _ int) string {
		return fmt.Sprint(v)
	}), sep)
}

// String implements fmt.Stringer.
func (s *Sequence[T]) String() string {
	return s.Format(DefaultSeparator)
}
