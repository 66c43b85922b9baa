package analytic

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when the input signal has no samples.
var ErrEmptyInput = errors.New("analytic: input signal is empty")

// Signal computes the discrete analytic signal of x using the frequency-domain
// Hilbert transform: the negative-frequency half of the spectrum is zeroed and
// the positive-frequency half doubled, so the imaginary part of the result is
// the Hilbert transform of x.
//
// The FFT is computed on the next power-of-two length with zero padding and
// the result truncated back to len(x). Padding introduces small edge effects
// near the ends of non-power-of-two inputs.
func Signal(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analytic: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)

	err = plan.Forward(freq, padded)
	if err != nil {
		return nil, fmt.Errorf("analytic: forward FFT failed: %w", err)
	}

	// One-sided spectrum: keep DC and Nyquist, double positive frequencies,
	// drop negative frequencies.
	half := fftSize / 2
	for i := 1; i < half; i++ {
		freq[i] *= 2
	}
	for i := half + 1; i < fftSize; i++ {
		freq[i] = 0
	}

	out := make([]complex128, fftSize)

	err = plan.Inverse(out, freq)
	if err != nil {
		return nil, fmt.Errorf("analytic: inverse FFT failed: %w", err)
	}

	return out[:n], nil
}

// Envelope returns the instantaneous amplitude |analytic(x)| of the signal.
func Envelope(x []float64) ([]float64, error) {
	z, err := Signal(x)
	if err != nil {
		return nil, err
	}

	return envelope(z), nil
}

// Phase returns the instantaneous phase of the signal in radians, the angle
// of the analytic signal in (-pi, pi].
func Phase(x []float64) ([]float64, error) {
	z, err := Signal(x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = math.Atan2(imag(v), real(v))
	}

	return out, nil
}

// Phasors returns unit-magnitude instantaneous-phase phasors e^(i*phi[n]).
// Samples where the analytic signal vanishes get phase 0, i.e. phasor 1.
func Phasors(x []float64) ([]complex128, error) {
	z, err := Signal(x)
	if err != nil {
		return nil, err
	}

	mag := envelope(z)
	out := make([]complex128, len(z))

	for i, v := range z {
		if mag[i] == 0 {
			out[i] = 1
			continue
		}

		out[i] = complex(real(v)/mag[i], imag(v)/mag[i])
	}

	return out, nil
}

// envelope computes |z| per sample using the SIMD magnitude kernel.
func envelope(z []complex128) []float64 {
	n := len(z)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, v := range z {
		re[i] = real(v)
		im[i] = imag(v)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
