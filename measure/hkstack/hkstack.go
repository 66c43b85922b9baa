package hkstack

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-seis/dsp/analytic"
	"github.com/cwbudde/algo-seis/dsp/interp"
	"github.com/cwbudde/algo-seis/rftn"
)

// Errors returned by the stacking engine.
var (
	ErrInvalidVp           = errors.New("hkstack: vp must be positive")
	ErrInvalidIncrement    = errors.New("hkstack: grid increment must be positive")
	ErrInvalidRange        = errors.New("hkstack: grid range must be positive and increasing")
	ErrInvalidReplications = errors.New("hkstack: bootstrap needs at least two replications")
	ErrEmptyGrid           = errors.New("hkstack: grid has no cells")
	ErrRayParamCritical    = errors.New("hkstack: ray parameter beyond critical slowness for grid")
	ErrTimeWindow          = errors.New("hkstack: predicted arrival outside trace window")
	ErrFlatSurface         = errors.New("hkstack: stack maximum is not positive")
)

// Grid holds the depth and kappa axes of the search mesh. Both sequences are
// strictly increasing and generated from half-open [min, max) ranges with
// ceil((max-min)/inc) steps.
type Grid struct {
	Depths []float64 // km
	Kappas []float64 // Vp/Vs
}

// NewGrid builds the search grid for a configuration. The grid is a pure
// function of the configuration.
func NewGrid(cfg Config) (Grid, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return Grid{}, err
	}

	depths := halfOpenRange(cfg.DepthMin, cfg.DepthMax, cfg.DepthInc)
	kappas := halfOpenRange(cfg.KappaMin, cfg.KappaMax, cfg.KappaInc)

	if len(depths) == 0 || len(kappas) == 0 {
		return Grid{}, ErrEmptyGrid
	}

	return Grid{Depths: depths, Kappas: kappas}, nil
}

func halfOpenRange(start, end, inc float64) []float64 {
	n := int(math.Ceil((end - start) / inc))
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*inc
	}

	return out
}

// Surface is the stacked match score over the grid mesh, indexed
// Values[kappa index][depth index]. After stacking, values lie in [0, 100]
// with the maximum at exactly 100.
type Surface struct {
	Grid   Grid
	Values [][]float64
}

// Optimum is the best-fit crustal model located on the stack surface.
type Optimum struct {
	Depth float64 // H*, km
	Kappa float64 // kappa*, Vp/Vs
	Vs    float64 // derived average crustal S velocity, vp/kappa*
}

// Stacker evaluates H-kappa stacks for one configuration.
type Stacker struct {
	cfg  Config
	grid Grid
}

// NewStacker validates the configuration and builds the search grid.
func NewStacker(cfg Config) (*Stacker, error) {
	cfg = normalizeConfig(cfg)

	grid, err := NewGrid(cfg)
	if err != nil {
		return nil, err
	}

	return &Stacker{cfg: cfg, grid: grid}, nil
}

// Config returns the normalized configuration in effect.
func (s *Stacker) Config() Config { return s.cfg }

// Grid returns the search grid.
func (s *Stacker) Grid() Grid { return s.grid }

// Stack accumulates the Zhu & Kanamori stack of all traces over the grid and
// locates its maximum.
//
// For each trace the three converted-phase travel times (Ps, PpPs, PpSs) are
// predicted per grid cell and the receiver-function amplitude at each time is
// read by linear interpolation. Amplitudes are combined as
// w1*Ps + w2*PpPs - w3*PpSs; with phase-weighted stacking enabled, the
// combination is further scaled by the coherence factor
// |w1*ph1 + w2*ph2 - w3*ph3| / N built from unit instantaneous-phase phasors.
//
// The optimum is the cell with the largest pre-normalization score; when
// several cells tie, the first in row-major (kappa, depth) scan order wins.
// The returned surface is clipped at 0 and rescaled so its maximum is 100.
//
// A trace whose ray parameter exceeds the critical slowness anywhere on the
// kappa axis is rejected with an error rather than contributing NaN cells,
// and a predicted arrival outside a trace's sample window aborts the run.
func (s *Stacker) Stack(ts rftn.TraceSet) (Surface, Optimum, error) {
	n := ts.Len()
	if n == 0 {
		return Surface{}, Optimum{}, rftn.ErrNoTraces
	}

	nk := len(s.grid.Kappas)
	nd := len(s.grid.Depths)

	backing := make([]float64, nk*nd)
	acc := make([][]float64, nk)
	for ki := range acc {
		acc[ki] = backing[ki*nd : (ki+1)*nd]
	}

	pwsNorm := 1 / float64(n)

	for i := 0; i < n; i++ {
		tr := ts.At(i)
		if err := s.stackTrace(acc, tr, pwsNorm); err != nil {
			return Surface{}, Optimum{}, fmt.Errorf("trace %d (%s): %w", i, tr.Label(), err)
		}
	}

	// Locate the pre-clip maximum; first cell in row-major (kappa, depth)
	// order wins ties.
	maxVal := math.Inf(-1)
	maxKi, maxDi := 0, 0

	for ki := 0; ki < nk; ki++ {
		for di := 0; di < nd; di++ {
			if acc[ki][di] > maxVal {
				maxVal = acc[ki][di]
				maxKi, maxDi = ki, di
			}
		}
	}

	if maxVal <= 0 {
		return Surface{}, Optimum{}, ErrFlatSurface
	}

	scale := 100 / maxVal
	for idx, v := range backing {
		if v < 0 {
			backing[idx] = 0
			continue
		}

		backing[idx] = v * scale
	}

	// maxVal*(100/maxVal) can round away from 100; the invariant is exact.
	acc[maxKi][maxDi] = 100

	opt := Optimum{
		Depth: s.grid.Depths[maxDi],
		Kappa: s.grid.Kappas[maxKi],
		Vs:    s.cfg.Vp / s.grid.Kappas[maxKi],
	}

	return Surface{Grid: s.grid, Values: acc}, opt, nil
}

// stackTrace adds one trace's contribution to the accumulator.
func (s *Stacker) stackTrace(acc [][]float64, tr rftn.Trace, pwsNorm float64) error {
	if err := tr.Validate(); err != nil {
		return err
	}

	etaP, err := verticalSlowness(s.cfg.Vp, tr.RayParam)
	if err != nil {
		return err
	}

	var phasors []complex128
	if s.cfg.PWS {
		phasors, err = analytic.Phasors(tr.Data)
		if err != nil {
			return err
		}
	}

	w1 := s.cfg.W1
	w2 := s.cfg.W2
	w3 := s.cfg.W3

	for ki, kappa := range s.grid.Kappas {
		vs := s.cfg.Vp / kappa

		etaS, err := verticalSlowness(vs, tr.RayParam)
		if err != nil {
			return fmt.Errorf("%w at kappa=%.4g", err, kappa)
		}

		row := acc[ki]

		for di, h := range s.grid.Depths {
			tPs := h * (etaS - etaP)
			tPpPs := h * (etaS + etaP)
			tPpSs := h * 2 * etaS

			rf1, err := sampleAt(tr, tPs)
			if err != nil {
				return fmt.Errorf("Ps at depth=%.4g kappa=%.4g: %w", h, kappa, err)
			}

			rf2, err := sampleAt(tr, tPpPs)
			if err != nil {
				return fmt.Errorf("PpPs at depth=%.4g kappa=%.4g: %w", h, kappa, err)
			}

			rf3, err := sampleAt(tr, tPpSs)
			if err != nil {
				return fmt.Errorf("PpSs at depth=%.4g kappa=%.4g: %w", h, kappa, err)
			}

			sum := w1*rf1 + w2*rf2 - w3*rf3

			if s.cfg.PWS {
				ph1 := phasorAt(tr, phasors, tPs)
				ph2 := phasorAt(tr, phasors, tPpPs)
				ph3 := phasorAt(tr, phasors, tPpSs)

				coherence := cmplx.Abs(complex(w1, 0)*ph1 + complex(w2, 0)*ph2 - complex(w3, 0)*ph3)
				sum *= coherence * pwsNorm
			}

			row[di] += sum
		}
	}

	return nil
}

// verticalSlowness computes eta = sqrt(1/v^2 - p^2), the vertical slowness of
// a wave with horizontal slowness p in a layer of velocity v. Turning-ray
// geometry (negative radicand) is an error, not a NaN.
func verticalSlowness(v, p float64) (float64, error) {
	r := 1/(v*v) - p*p
	if r < 0 {
		return 0, fmt.Errorf("%w: p=%.4g s/km, v=%.4g km/s", ErrRayParamCritical, p, v)
	}

	return math.Sqrt(r), nil
}

// sampleAt reads the trace amplitude at time t by linear interpolation
// between the two neighboring samples.
func sampleAt(tr rftn.Trace, t float64) (float64, error) {
	idx, frac := interp.FracIndex(t, tr.Begin, tr.Delta)
	if idx < 0 || idx >= len(tr.Data)-1 {
		return 0, fmt.Errorf("%w: t=%.3fs, window [%.3fs, %.3fs]",
			ErrTimeWindow, t, tr.Begin, tr.End())
	}

	return interp.Linear2(tr.Data[idx], tr.Data[idx+1], frac), nil
}

// phasorAt interpolates the unit phasor at time t. Bounds were already
// checked by the amplitude read at the same time.
func phasorAt(tr rftn.Trace, phasors []complex128, t float64) complex128 {
	idx, frac := interp.FracIndex(t, tr.Begin, tr.Delta)

	return interp.Linear2Cmplx(phasors[idx], phasors[idx+1], frac)
}
