// SPDX-License-Identifier: MIT

package secret

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ReconstructAll runs Reconstruct over every input with at most
// WithWorkers(n) reconstructions in flight (DefaultWorkers otherwise).
//
// Behavior highlights:
//   - results[i] belongs to inputs[i].
//   - The first failure cancels the shared context; inputs not yet started
//     are skipped and the first error is returned, annotated with its index.
//   - Each job owns its intermediate data; nothing is shared between jobs.
//
// Errors:
//   - Anything Reconstruct returns, wrapped as "input <i>: ...".
//   - ctx.Err() when ctx is cancelled before all inputs ran.
func ReconstructAll(ctx context.Context, inputs []Input, opts ...Option) ([]*Result, error) {
	o := gatherOptions(opts...)
	results := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Reconstruct(inputs[i], opts...)
			if err != nil {
				o.logger.Debug("reconstruction failed", zap.Int("input", i), zap.Error(err))
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
