// Package insert provides use cases for shift-and-insert on bounded sequences.
package insert

import (
	"context"
	"fmt"

	"github.com/mpyw/slotbuf/internal/sequence"
)

// Input holds input for the insert use case.
type Input struct {
	Values []int
	// Capacity is the total number of slots. Zero means len(Values)+1.
	Capacity int
	Position int
	Value    int
}

// Output holds the result of the insert use case.
type Output struct {
	Capacity int
	Position int
	Value    int
	Before   []int
	After    []int
}

// UseCase executes insert operations.
type UseCase struct{}

// Execute runs the insert use case.
func (u *UseCase) Execute(_ context.Context, input Input) (*Output, error) {
	capacity := effectiveCapacity(input)

	seq, err := sequence.FromValues(capacity, input.Values...)
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence: %w", err)
	}

	before := seq.Values()

	if err := seq.Insert(input.Position, input.Value); err != nil {
		return nil, fmt.Errorf("failed to insert value: %w", err)
	}

	return &Output{
		Capacity: capacity,
		Position: input.Position,
		Value:    input.Value,
		Before:   before,
		After:    seq.Values(),
	}, nil
}

func effectiveCapacity(input Input) int {
	if input.Capacity == 0 {
		return len(input.Values) + 1
	}

	return input.Capacity
}
