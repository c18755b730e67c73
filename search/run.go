package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/grid"
)

// RunAll runs each strategy on g from start and returns the results in the
// order given. An empty strategies slice means AllStrategies.
//
// limit bounds how many searches run at once: limit <= 0 runs all of them
// concurrently, limit == 1 runs them one after another. Every run shares the
// read-only grid and owns its frontier, so hooks passed in opts are the only
// shared state and must be safe for concurrent use when limit != 1.
//
// The first error cancels the remaining runs and is returned alongside the
// results collected so far (nil entries for runs that did not finish).
func RunAll(ctx context.Context, g *grid.Grid, start grid.Position, strategies []Strategy, limit int, opts ...Option) ([]*Result, error) {
	if len(strategies) == 0 {
		strategies = AllStrategies
	}
	results := make([]*Result, len(strategies))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, s := range strategies {
		i, s := i, s // per-iteration copies for the goroutine below (pre-Go 1.22 loop semantics)
		runOpts := append(append(make([]Option, 0, len(opts)+1), opts...), WithContext(egCtx))
		eg.Go(func() error {
			res, err := Search(g, start, s, runOpts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	return results, eg.Wait()
}
