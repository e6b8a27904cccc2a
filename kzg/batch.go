package kzg

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aalps-labs/fde/algebra"
)

// BatchCommit commits to several polynomials concurrently. The
// polynomials share no mutable state, so commitment work is fanned
// out across goroutines; this is purely a throughput optimization over
// calling Commit in a loop and never changes the result.
func BatchCommit(ctx context.Context, p *Powers, polys []algebra.Polynomial) ([]algebra.G1Affine, error) {
	out := make([]algebra.G1Affine, len(polys))
	g, _ := errgroup.WithContext(ctx)
	for i, poly := range polys {
		i, poly := i, poly
		g.Go(func() error {
			commitment, err := Commit(p, poly)
			if err != nil {
				return err
			}
			out[i] = commitment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
