package sequence

import "fmt"

// InsertAt writes value into buf at position, shifting the live elements
// from position onward one slot to the right.
//
// len(buf) is the capacity and live is the number of meaningful leading
// elements. At least one spare slot must exist (live < len(buf)) and
// position must satisfy 0 <= position <= live. buf is left untouched when
// any of these conditions does not hold.
func InsertAt[T any](buf []T, live, position int, value T) error {
	if live < 0 || live > len(buf) {
		return fmt.Errorf("%w: %d live elements in %d slots", ErrInvalidLength, live, len(buf))
	}

	if live == len(buf) {
		return fmt.Errorf("%w: all %d slots are in use", ErrCapacityExceeded, len(buf))
	}

	if position < 0 || position > live {
		return fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidPosition, position, live)
	}

	// Descending, so every element is read before its slot is overwritten.
	for i := live; i > position; i-- {
		buf[i] = buf[i-1]
	}

	buf[position] = value

	return nil
}
