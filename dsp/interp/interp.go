package interp

import "math"

// Linear2 computes 2-point linear interpolation between x0 and x1.
// frac is the fractional position in [0,1].
func Linear2(x0, x1, frac float64) float64 {
	return x0 + frac*(x1-x0)
}

// Linear2Cmplx computes 2-point linear interpolation between complex samples,
// interpolating real and imaginary parts independently.
func Linear2Cmplx(x0, x1 complex128, frac float64) complex128 {
	return x0 + complex(frac, 0)*(x1-x0)
}

// FracIndex converts a time t on a uniform sample grid starting at begin with
// spacing delta into the integer sample index at or below t and the fractional
// remainder in [0,1). delta must be positive.
func FracIndex(t, begin, delta float64) (idx int, frac float64) {
	pos := (t - begin) / delta
	floor := math.Floor(pos)

	return int(floor), pos - floor
}
