package insert_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/slotbuf/internal/sequence"
	"github.com/mpyw/slotbuf/internal/usecase/insert"
)

func TestUseCase_Execute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   insert.Input
		want    *insert.Output
		wantErr error
	}{
		{
			name: "middle of five",
			input: insert.Input{
				Values:   []int{10, 20, 30, 40, 50},
				Capacity: 6,
				Position: 2,
				Value:    25,
			},
			want: &insert.Output{
				Capacity: 6,
				Position: 2,
				Value:    25,
				Before:   []int{10, 20, 30, 40, 50},
				After:    []int{10, 20, 25, 30, 40, 50},
			},
		},
		{
			name: "zero capacity defaults to one spare slot",
			input: insert.Input{
				Values:   []int{1, 2},
				Position: 0,
				Value:    0,
			},
			want: &insert.Output{
				Capacity: 3,
				Position: 0,
				Value:    0,
				Before:   []int{1, 2},
				After:    []int{0, 1, 2},
			},
		},
		{
			name: "append to end",
			input: insert.Input{
				Values:   []int{1, 2},
				Capacity: 10,
				Position: 2,
				Value:    3,
			},
			want: &insert.Output{
				Capacity: 10,
				Position: 2,
				Value:    3,
				Before:   []int{1, 2},
				After:    []int{1, 2, 3},
			},
		},
		{
			name: "negative position",
			input: insert.Input{
				Values:   []int{10, 20, 30, 40, 50},
				Capacity: 6,
				Position: -1,
				Value:    25,
			},
			wantErr: sequence.ErrInvalidPosition,
		},
		{
			name: "position past live count",
			input: insert.Input{
				Values:   []int{10, 20, 30, 40, 50},
				Capacity: 6,
				Position: 6,
				Value:    25,
			},
			wantErr: sequence.ErrInvalidPosition,
		},
		{
			name: "no spare slot",
			input: insert.Input{
				Values:   []int{10, 20, 30},
				Capacity: 3,
				Position: 1,
				Value:    25,
			},
			wantErr: sequence.ErrCapacityExceeded,
		},
		{
			name: "values exceed capacity",
			input: insert.Input{
				Values:   []int{10, 20, 30},
				Capacity: 2,
			},
			wantErr: sequence.ErrCapacityExceeded,
		},
		{
			name: "negative capacity",
			input: insert.Input{
				Values:   []int{10},
				Capacity: -1,
			},
			wantErr: sequence.ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &insert.UseCase{}

			got, err := uc.Execute(t.Context(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUseCase_Execute_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	values := []int{10, 20, 30, 40, 50}
	uc := &insert.UseCase{}

	_, err := uc.Execute(t.Context(), insert.Input{Values: values, Capacity: 6, Position: 0, Value: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, values)
}

func TestUseCase_Execute_Composes(t *testing.T) {
	t.Parallel()

	uc := &insert.UseCase{}

	first, err := uc.Execute(t.Context(), insert.Input{Values: []int{10, 20, 30}, Position: 1, Value: 15})
	require.NoError(t, err)

	second, err := uc.Execute(t.Context(), insert.Input{Values: first.After, Position: 3, Value: 25})
	require.NoError(t, err)

	assert.Equal(t, []int{10, 15, 20, 25, 30}, second.After)
	assert.Len(t, second.After, len(first.After)+1)
}

func TestUseCase_Positions(t *testing.T) {
	t.Parallel()

	t.Run("every position", func(t *testing.T) {
		t.Parallel()

		uc := &insert.UseCase{}

		results, err := uc.Positions(t.Context(), insert.Input{
			Values:   []int{10, 20, 30},
			Position: 99, // ignored
			Value:    0,
		})
		require.NoError(t, err)
		require.Len(t, results, 4)

		want := [][]int{
			{0, 10, 20, 30},
			{10, 0, 20, 30},
			{10, 20, 0, 30},
			{10, 20, 30, 0},
		}
		for i, r := range results {
			require.NoError(t, r.Err)
			assert.Equal(t, i, r.Position)
			assert.Equal(t, want[i], r.After)
		}
	})

	t.Run("empty values", func(t *testing.T) {
		t.Parallel()

		uc := &insert.UseCase{}

		results, err := uc.Positions(t.Context(), insert.Input{Value: 7})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, []int{7}, results[0].After)
	})

	t.Run("no spare slot", func(t *testing.T) {
		t.Parallel()

		uc := &insert.UseCase{}

		_, err := uc.Positions(t.Context(), insert.Input{Values: []int{1, 2}, Capacity: 2, Value: 7})
		require.ErrorIs(t, err, sequence.ErrCapacityExceeded)
	})

	t.Run("negative capacity", func(t *testing.T) {
		t.Parallel()

		uc := &insert.UseCase{}

		_, err := uc.Positions(t.Context(), insert.Input{Values: []int{1}, Capacity: -2, Value: 7})
		require.ErrorIs(t, err, sequence.ErrInvalidCapacity)
	})

	t.Run("cancelled context is reported per position", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		uc := &insert.UseCase{}

		results, err := uc.Positions(ctx, insert.Input{Values: []int{1, 2}, Value: 7})
		require.NoError(t, err)
		require.Len(t, results, 3)
		for _, r := range results {
			require.ErrorIs(t, r.Err, context.Canceled)
		}
	})
}
