package bivar

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Errors returned by bivariate statistics functions.
var (
	ErrLengthMismatch = errors.New("bivar: series have different lengths")
	ErrTooFew         = errors.New("bivar: need at least two observations")
)

// Summary holds sample statistics of two paired series.
type Summary struct {
	MeanX  float64
	MeanY  float64
	SigmaX float64 // sample standard deviation (n-1 divisor)
	SigmaY float64
	Corr   float64 // Pearson correlation coefficient
}

// Summarize computes means, sample standard deviations, and the Pearson
// correlation of two paired series. When either series has zero variance the
// correlation is reported as 0 rather than NaN.
func Summarize(x, y []float64) (Summary, error) {
	if len(x) != len(y) {
		return Summary{}, ErrLengthMismatch
	}

	if len(x) < 2 {
		return Summary{}, ErrTooFew
	}

	s := Summary{
		MeanX:  stat.Mean(x, nil),
		MeanY:  stat.Mean(y, nil),
		SigmaX: stat.StdDev(x, nil),
		SigmaY: stat.StdDev(y, nil),
	}

	if s.SigmaX > 0 && s.SigmaY > 0 {
		s.Corr = stat.Correlation(x, y, nil)
	}

	return s, nil
}

// Point is one vertex of an ellipse polyline.
type Point struct {
	X float64
	Y float64
}

// ConfidenceEllipse returns n points tracing the tilted confidence ellipse of
// a bivariate normal with standard deviations (sx, sy), correlation corr, and
// center (cx, cy). The polyline is closed: the point after the last is the
// first again.
//
// The tilt angle is 0.5*atan(2*corr*sx*sy / (sx^2 - sy^2)). When sx == sy the
// denominator vanishes; the tilt is then 0 for uncorrelated data and +-pi/4
// following the sign of the correlation otherwise, instead of propagating NaN.
func ConfidenceEllipse(cx, cy, sx, sy, corr float64, n int) []Point {
	if n <= 0 {
		return nil
	}

	num := 2 * corr * sx * sy
	den := sx*sx - sy*sy

	var tilt float64
	switch {
	case den != 0:
		tilt = 0.5 * math.Atan(num/den)
	case num != 0:
		tilt = math.Copysign(math.Pi/4, num)
	}

	sin, cos := math.Sincos(tilt)

	// Squared semi-diameters along the tilted axes.
	common := sx * sx * sy * sy * (1 - corr*corr)
	d1 := sy*sy*cos*cos - num*sin*cos + sx*sx*sin*sin
	d2 := sy*sy*sin*sin + num*sin*cos + sx*sx*cos*cos

	var a, b float64
	if d1 > 0 {
		a = math.Sqrt(common / d1)
	}
	if d2 > 0 {
		b = math.Sqrt(common / d2)
	}

	pts := make([]Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		xp := a * math.Cos(t)
		yp := b * math.Sin(t)
		pts[i] = Point{
			X: cx + xp*cos - yp*sin,
			Y: cy + yp*cos + xp*sin,
		}
	}

	return pts
}
