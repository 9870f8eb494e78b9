// Package parallel provides utilities for parallel execution of operations.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default concurrency limit for parallel operations.
const DefaultLimit = 10

// Result holds the result of a parallel operation.
type Result[T any] struct {
	Value T
	Err   error
}

// ExecuteSlice runs fn for each item concurrently.
// Results are returned in the same order as items.
// Individual errors are captured in Result.Err rather than failing the entire operation.
func ExecuteSlice[T any, R any](
	ctx context.Context,
	items []T,
	fn func(ctx context.Context, index int, item T) (R, error),
) []Result[R] {
	return ExecuteSliceWithLimit(ctx, items, DefaultLimit, fn)
}

// ExecuteSliceWithLimit is like ExecuteSlice but with a custom concurrency limit.
// A limit below 1 means no limit.
func ExecuteSliceWithLimit[T any, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, index int, item T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			// Each goroutine owns results[i], so no locking is needed.
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			value, err := fn(gctx, i, item)
			results[i] = Result[R]{Value: value, Err: err}

			return nil // Don't fail the group on individual errors
		})
	}

	_ = g.Wait()

	return results
}
