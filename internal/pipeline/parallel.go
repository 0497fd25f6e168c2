package pipeline

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// MinimumOverParallel computes the same value as MinimumOver, evaluating
// ids in at most workers concurrent chunks. workers <= 1 runs inline.
// It returns the context error if ctx ends before every chunk ran.
func (p *Pipeline) MinimumOverParallel(ctx context.Context, ids []uint64, workers int) (uint64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyInput
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if workers <= 1 || len(ids) == 1 {
		return p.minimum(ids), nil
	}

	chunks := partition(ids, workers)
	partial := make([]uint64, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			partial[i] = p.minimum(chunk)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return slices.Min(partial), nil
}

// partition splits ids into at most n contiguous, non-empty chunks.
func partition(ids []uint64, n int) [][]uint64 {
	size := (len(ids) + n - 1) / n
	chunks := make([][]uint64, 0, n)

	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}

	return chunks
}
