package sequence

import "errors"

var (
	// ErrInvalidPosition is returned when a position lies outside the valid range.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrCapacityExceeded is returned when there is no spare slot for a new element.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidCapacity is returned when a negative capacity is requested.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrInvalidLength is returned when the live count does not fit the buffer.
	ErrInvalidLength = errors.New("invalid length")
)
