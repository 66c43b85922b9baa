package rftn

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Errors returned by trace and trace-set validation.
var (
	ErrNoTraces        = errors.New("rftn: trace set is empty")
	ErrShortTrace      = errors.New("rftn: trace needs at least two samples")
	ErrInvalidDelta    = errors.New("rftn: sample interval must be positive")
	ErrInvalidBegin    = errors.New("rftn: begin time is not finite")
	ErrInvalidRayParam = errors.New("rftn: ray parameter missing or not finite")
)

// Trace is one receiver-function waveform for a single station, event, and
// component. Samples are uniformly spaced by Delta; Begin is the time of the
// first sample relative to the direct P arrival.
type Trace struct {
	ID       string    // station/event identifier, used in error reporting
	Data     []float64 // amplitude samples
	Begin    float64   // time of first sample (s)
	Delta    float64   // sample interval (s)
	RayParam float64   // horizontal slowness p (s/km)
}

// Validate checks the trace metadata required for stacking.
func (tr Trace) Validate() error {
	if len(tr.Data) < 2 {
		return fmt.Errorf("%w: got %d", ErrShortTrace, len(tr.Data))
	}

	if tr.Delta <= 0 || math.IsNaN(tr.Delta) || math.IsInf(tr.Delta, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDelta, tr.Delta)
	}

	if math.IsNaN(tr.Begin) || math.IsInf(tr.Begin, 0) {
		return ErrInvalidBegin
	}

	if tr.RayParam < 0 || math.IsNaN(tr.RayParam) || math.IsInf(tr.RayParam, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRayParam, tr.RayParam)
	}

	return nil
}

// End returns the time of the last sample relative to the direct P arrival.
func (tr Trace) End() float64 {
	if len(tr.Data) == 0 {
		return tr.Begin
	}

	return tr.Begin + float64(len(tr.Data)-1)*tr.Delta
}

// Label returns the trace ID, or a positional fallback for unnamed traces.
func (tr Trace) Label() string {
	if tr.ID != "" {
		return tr.ID
	}

	return "unnamed trace"
}

// TraceSet is an ordered, non-empty collection of receiver functions for one
// station. It does not change after construction.
type TraceSet struct {
	station string
	traces  []Trace
}

// NewTraceSet validates every trace and builds an immutable set. The input
// slice is copied, so later mutation of it does not affect the set.
func NewTraceSet(station string, traces []Trace) (TraceSet, error) {
	if len(traces) == 0 {
		return TraceSet{}, ErrNoTraces
	}

	for i, tr := range traces {
		if err := tr.Validate(); err != nil {
			return TraceSet{}, fmt.Errorf("trace %d (%s): %w", i, tr.Label(), err)
		}
	}

	copied := make([]Trace, len(traces))
	copy(copied, traces)

	return TraceSet{station: station, traces: copied}, nil
}

// Station returns the station name the set belongs to.
func (ts TraceSet) Station() string { return ts.station }

// Len returns the number of traces in the set.
func (ts TraceSet) Len() int { return len(ts.traces) }

// At returns the trace at index i.
func (ts TraceSet) At(i int) Trace { return ts.traces[i] }

// Resample draws len(ts) traces uniformly at random with replacement,
// the classic nonparametric bootstrap resample of Efron & Tibshirani.
func (ts TraceSet) Resample(rng *rand.Rand) TraceSet {
	n := len(ts.traces)
	drawn := make([]Trace, n)

	for i := range drawn {
		drawn[i] = ts.traces[rng.Intn(n)]
	}

	return TraceSet{station: ts.station, traces: drawn}
}
