package insert

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/mpyw/slotbuf/internal/parallel"
	"github.com/mpyw/slotbuf/internal/sequence"
)

// PositionResult holds the outcome of inserting at a single position.
type PositionResult struct {
	Position int
	After    []int
	Err      error
}

// Positions inserts input.Value at every valid position of input.Values.
// Input.Position is ignored. Results are ordered by position.
func (u *UseCase) Positions(ctx context.Context, input Input) ([]PositionResult, error) {
	capacity := effectiveCapacity(input)

	base, err := sequence.FromValues(capacity, input.Values...)
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence: %w", err)
	}

	if base.Spare() == 0 {
		return nil, fmt.Errorf("failed to insert value: %w: all %d slots are in use", sequence.ErrCapacityExceeded, capacity)
	}

	positions := lo.Range(base.Len() + 1)

	results := parallel.ExecuteSlice(ctx, positions, func(_ context.Context, _ int, position int) ([]int, error) {
		seq := base.Clone()
		if err := seq.Insert(position, input.Value); err != nil {
			return nil, err
		}

		return seq.Values(), nil
	})

	return lo.Map(results, func(r parallel.Result[[]int], i int) PositionResult {
		return PositionResult{
			Position: positions[i],
			After:    r.Value,
			Err:      r.Err,
		}
	}), nil
}
