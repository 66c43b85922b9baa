package hkstack

import (
	"github.com/cwbudde/algo-seis/dsp/interp"
	"github.com/cwbudde/algo-seis/rftn"
)

// PhaseArrivals holds the predicted arrival times of the three converted
// phases for one trace and one crustal model, in seconds after the direct P.
type PhaseArrivals struct {
	Ps   float64
	PpPs float64
	PpSs float64
}

// Moveout predicts the Ps, PpPs, and PpSs arrival times of a trace for a
// crustal model (depth km, kappa Vp/Vs, vp km/s). Rendering collaborators use
// this to mark phase arrivals on receiver-function displays.
func Moveout(tr rftn.Trace, depth, kappa, vp float64) (PhaseArrivals, error) {
	if vp <= 0 {
		return PhaseArrivals{}, ErrInvalidVp
	}

	if kappa <= 0 {
		return PhaseArrivals{}, ErrInvalidRange
	}

	if err := tr.Validate(); err != nil {
		return PhaseArrivals{}, err
	}

	etaP, err := verticalSlowness(vp, tr.RayParam)
	if err != nil {
		return PhaseArrivals{}, err
	}

	etaS, err := verticalSlowness(vp/kappa, tr.RayParam)
	if err != nil {
		return PhaseArrivals{}, err
	}

	return PhaseArrivals{
		Ps:   depth * (etaS - etaP),
		PpPs: depth * (etaS + etaP),
		PpSs: depth * 2 * etaS,
	}, nil
}

// Samples converts the arrival times to sample indices on a trace's grid,
// truncated toward the sample at or below each arrival.
func (a PhaseArrivals) Samples(begin, delta float64) (ps, ppPs, ppSs int) {
	ps, _ = interp.FracIndex(a.Ps, begin, delta)
	ppPs, _ = interp.FracIndex(a.PpPs, begin, delta)
	ppSs, _ = interp.FracIndex(a.PpSs, begin, delta)

	return ps, ppPs, ppSs
}
