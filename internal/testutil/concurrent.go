package testutil

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrently runs fn n times in parallel and returns the first error.
// The context passed to fn is canceled as soon as one call fails.
func Concurrently(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
