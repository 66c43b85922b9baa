package hkstack

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-seis/rftn"
	"github.com/cwbudde/algo-seis/stats/bivar"
)

// Uncertainty holds the bootstrap estimate of the optimum's sampling
// variability (Efron & Tibshirani, 1980).
type Uncertainty struct {
	SigmaDepth float64 // sample std of the bootstrap H* distribution, km
	SigmaKappa float64 // sample std of the bootstrap kappa* distribution
	Corr       float64 // Pearson correlation between the two distributions
}

// Bootstrap runs Config.Replications independent trials, each stacking a
// resample of the trace set drawn with replacement, and summarizes the
// spread of the resulting optima.
//
// Trials run on a worker pool of Config.Workers goroutines (all CPUs when 0),
// each writing its optimum into a pre-sized slot at its trial index. Any
// failing trial aborts the whole bootstrap; dropping failed trials would
// understate the spread. Cancelling ctx abandons outstanding trials.
//
// Trial i resamples with an RNG seeded Config.Seed+i, so a fixed Seed makes
// the whole bootstrap reproducible regardless of scheduling.
func (s *Stacker) Bootstrap(ctx context.Context, ts rftn.TraceSet) (Uncertainty, error) {
	if ts.Len() == 0 {
		return Uncertainty{}, rftn.ErrNoTraces
	}

	reps := s.cfg.Replications
	if reps < 2 {
		return Uncertainty{}, ErrInvalidReplications
	}

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	depths := make([]float64, reps)
	kappas := make([]float64, reps)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < reps; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rng := rand.New(rand.NewSource(seed + int64(i)))

			_, opt, err := s.Stack(ts.Resample(rng))
			if err != nil {
				return fmt.Errorf("bootstrap trial %d: %w", i, err)
			}

			depths[i] = opt.Depth
			kappas[i] = opt.Kappa

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Uncertainty{}, err
	}

	sum, err := bivar.Summarize(depths, kappas)
	if err != nil {
		return Uncertainty{}, err
	}

	return Uncertainty{
		SigmaDepth: sum.SigmaX,
		SigmaKappa: sum.SigmaY,
		Corr:       sum.Corr,
	}, nil
}
