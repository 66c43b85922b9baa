package testutil

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seis/rftn"
)

// SyntheticRF builds a noiseless synthetic receiver function for a known
// crustal model: unit spikes at the predicted Ps and PpPs arrival times and a
// negative unit spike at PpSs, zero elsewhere.
//
// Spikes land on the exact fractional sample position: the amplitude is split
// between the two neighboring samples so that linear interpolation at the
// predicted time recovers the spike peak location exactly.
func SyntheticRF(id string, depth, kappa, vp, p, begin, delta float64, n int) rftn.Trace {
	etaP := math.Sqrt(1/(vp*vp) - p*p)
	vs := vp / kappa
	etaS := math.Sqrt(1/(vs*vs) - p*p)

	tr := rftn.Trace{
		ID:       id,
		Data:     make([]float64, n),
		Begin:    begin,
		Delta:    delta,
		RayParam: p,
	}

	addSpike(tr, depth*(etaS-etaP), 1)
	addSpike(tr, depth*(etaS+etaP), 1)
	addSpike(tr, depth*2*etaS, -1)

	return tr
}

// addSpike deposits amp at time t, split linearly across the two neighboring
// samples. Panics when t falls outside the trace window: a synthetic model
// that does not fit its window is a broken test, not a data condition.
func addSpike(tr rftn.Trace, t, amp float64) {
	pos := (t - tr.Begin) / tr.Delta
	idx := int(math.Floor(pos))
	frac := pos - math.Floor(pos)

	if idx < 0 || idx >= len(tr.Data)-1 {
		panic(fmt.Sprintf("testutil: spike at t=%.3fs outside window [%.3fs, %.3fs]",
			t, tr.Begin, tr.End()))
	}

	tr.Data[idx] += amp * (1 - frac)
	tr.Data[idx+1] += amp * frac
}

// SyntheticSet builds n synthetic receiver functions for one crustal model
// with ray parameters spread over the usual teleseismic range.
func SyntheticSet(station string, count int, depth, kappa, vp float64) (rftn.TraceSet, error) {
	traces := make([]rftn.Trace, count)

	for i := range traces {
		// p from 0.04 to 0.08 s/km, the teleseismic P slowness band.
		p := 0.04 + 0.04*float64(i)/float64(max(count-1, 1))
		traces[i] = SyntheticRF(fmt.Sprintf("%s.ev%02d", station, i),
			depth, kappa, vp, p, -5.0, 0.1, 450)
	}

	return rftn.NewTraceSet(station, traces)
}
