package analytic

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// binCosine returns cos(2*pi*k*n/N), which lies exactly on an FFT bin for
// power-of-two N, so the analytic signal is exp(i*2*pi*k*n/N).
func binCosine(n, k int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Cos(2 * math.Pi * float64(k) * float64(i) / float64(n))
	}
	return out
}

func TestSignalHilbertOfCosineIsSine(t *testing.T) {
	const n, k = 256, 8

	z, err := Signal(binCosine(n, k))
	if err != nil {
		t.Fatalf("Signal: %v", err)
	}
	if len(z) != n {
		t.Fatalf("len = %d, want %d", len(z), n)
	}

	for i, v := range z {
		phase := 2 * math.Pi * float64(k) * float64(i) / float64(n)
		want := complex(math.Cos(phase), math.Sin(phase))
		if cmplx.Abs(v-want) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, v, want)
		}
	}
}

func TestEnvelopeOfBinCosineIsUnity(t *testing.T) {
	env, err := Envelope(binCosine(512, 5))
	if err != nil {
		t.Fatalf("Envelope: %v", err)
	}

	for i, v := range env {
		if math.Abs(v-1) > 1e-9 {
			t.Fatalf("sample %d: envelope %v, want 1", i, v)
		}
	}
}

func TestPhaseOfBinCosine(t *testing.T) {
	const n, k = 256, 4

	phase, err := Phase(binCosine(n, k))
	if err != nil {
		t.Fatalf("Phase: %v", err)
	}

	for i, got := range phase {
		want := math.Atan2(
			math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n)),
			math.Cos(2*math.Pi*float64(k)*float64(i)/float64(n)),
		)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d: phase %v, want %v", i, got, want)
		}
	}
}

func TestPhasorsUnitMagnitude(t *testing.T) {
	x := make([]float64, 128)
	for i := range x {
		x[i] = math.Sin(0.1*float64(i)) + 0.3*math.Cos(0.37*float64(i))
	}

	ph, err := Phasors(x)
	if err != nil {
		t.Fatalf("Phasors: %v", err)
	}

	for i, v := range ph {
		if math.Abs(cmplx.Abs(v)-1) > 1e-12 {
			t.Fatalf("sample %d: |phasor| = %v, want 1", i, cmplx.Abs(v))
		}
	}
}

func TestPhasorsZeroSignal(t *testing.T) {
	ph, err := Phasors(make([]float64, 64))
	if err != nil {
		t.Fatalf("Phasors: %v", err)
	}

	for i, v := range ph {
		if v != 1 {
			t.Fatalf("sample %d: phasor %v, want 1", i, v)
		}
	}
}

func TestSignalEmptyInput(t *testing.T) {
	if _, err := Signal(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}
