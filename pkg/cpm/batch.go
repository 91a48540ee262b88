package cpm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ComputeAll schedules every input concurrently, running at most limit
// computations at once (limit <= 0 means no limit). Results are returned in
// input order. The first failure cancels the remaining work and is returned
// wrapped with the index of the failing input.
//
// Each input gets its own [Plan]; nothing is shared between computations.
func ComputeAll(ctx context.Context, inputs []Input, limit int) ([]*Result, error) {
	results := make([]*Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Compute(in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
