package rftn

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func validTrace(id string) Trace {
	return Trace{
		ID:       id,
		Data:     make([]float64, 100),
		Begin:    -2,
		Delta:    0.1,
		RayParam: 0.06,
	}
}

func TestTraceValidate(t *testing.T) {
	if err := validTrace("ok").Validate(); err != nil {
		t.Fatalf("valid trace rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Trace)
		wantErr error
	}{
		{"no samples", func(tr *Trace) { tr.Data = nil }, ErrShortTrace},
		{"one sample", func(tr *Trace) { tr.Data = []float64{1} }, ErrShortTrace},
		{"zero delta", func(tr *Trace) { tr.Delta = 0 }, ErrInvalidDelta},
		{"negative delta", func(tr *Trace) { tr.Delta = -0.1 }, ErrInvalidDelta},
		{"nan delta", func(tr *Trace) { tr.Delta = math.NaN() }, ErrInvalidDelta},
		{"nan begin", func(tr *Trace) { tr.Begin = math.NaN() }, ErrInvalidBegin},
		{"negative ray param", func(tr *Trace) { tr.RayParam = -12345 }, ErrInvalidRayParam},
		{"nan ray param", func(tr *Trace) { tr.RayParam = math.NaN() }, ErrInvalidRayParam},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTrace("bad")
			tc.mutate(&tr)

			if err := tr.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTraceEnd(t *testing.T) {
	tr := validTrace("end")

	want := -2 + 99*0.1
	if math.Abs(tr.End()-want) > 1e-12 {
		t.Fatalf("End() = %v, want %v", tr.End(), want)
	}
}

func TestNewTraceSetEmpty(t *testing.T) {
	if _, err := NewTraceSet("XX", nil); !errors.Is(err, ErrNoTraces) {
		t.Fatalf("err = %v, want ErrNoTraces", err)
	}
}

func TestNewTraceSetRejectsInvalidMember(t *testing.T) {
	bad := validTrace("XX.ev01")
	bad.Delta = 0

	_, err := NewTraceSet("XX", []Trace{validTrace("XX.ev00"), bad})
	if !errors.Is(err, ErrInvalidDelta) {
		t.Fatalf("err = %v, want ErrInvalidDelta", err)
	}

	// The error names the offending trace.
	if !strings.Contains(err.Error(), "XX.ev01") {
		t.Fatalf("error does not identify the trace: %v", err)
	}
}

func TestNewTraceSetCopiesSlice(t *testing.T) {
	traces := []Trace{validTrace("a"), validTrace("b")}

	ts, err := NewTraceSet("XX", traces)
	if err != nil {
		t.Fatalf("NewTraceSet: %v", err)
	}

	traces[0] = validTrace("mutated")

	if ts.At(0).ID != "a" {
		t.Fatalf("set observed input slice mutation: %q", ts.At(0).ID)
	}

	if ts.Station() != "XX" || ts.Len() != 2 {
		t.Fatalf("unexpected set: station %q len %d", ts.Station(), ts.Len())
	}
}

func TestResampleSizeAndMembership(t *testing.T) {
	traces := []Trace{validTrace("a"), validTrace("b"), validTrace("c")}

	ts, err := NewTraceSet("XX", traces)
	if err != nil {
		t.Fatalf("NewTraceSet: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	sub := ts.Resample(rng)

	if sub.Len() != ts.Len() {
		t.Fatalf("resample length = %d, want %d", sub.Len(), ts.Len())
	}

	known := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < sub.Len(); i++ {
		if !known[sub.At(i).ID] {
			t.Fatalf("resample drew unknown trace %q", sub.At(i).ID)
		}
	}

	if sub.Station() != "XX" {
		t.Fatalf("resample lost station: %q", sub.Station())
	}
}

func TestResampleDeterministicForSeed(t *testing.T) {
	traces := []Trace{validTrace("a"), validTrace("b"), validTrace("c"), validTrace("d")}

	ts, err := NewTraceSet("XX", traces)
	if err != nil {
		t.Fatalf("NewTraceSet: %v", err)
	}

	first := ts.Resample(rand.New(rand.NewSource(7)))
	second := ts.Resample(rand.New(rand.NewSource(7)))

	for i := 0; i < first.Len(); i++ {
		if first.At(i).ID != second.At(i).ID {
			t.Fatalf("draw %d differs: %q vs %q", i, first.At(i).ID, second.At(i).ID)
		}
	}
}
